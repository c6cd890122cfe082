package repositories

import (
	"github.com/volatiletech/null/v8"
	"panchayat.backend/internal/domain/entities"
)

func dateToNull(d *entities.Date) null.Time {
	if d == nil || d.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(d.Time)
}

func nullToDate(t null.Time) *entities.Date {
	if !t.Valid {
		return nil
	}
	d := entities.NewDate(t.Time)
	return &d
}
