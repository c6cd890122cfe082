package repositories

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	domainerrors "panchayat.backend/internal/domain/errors"
)

const pqUniqueViolation = "23505"

// isDuplicateKey reports whether err is a uniqueness violation, whether or not
// the dialector translated it.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// translateWriteError maps storage failures on insert or update to domain errors.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return domainerrors.ErrAlreadyExists
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domainerrors.ErrNotFound
	}
	return err
}

// translateReadError maps a missing row to ErrNotFound.
func translateReadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	return err
}

// requireAffected converts a zero-row update or delete into ErrNotFound.
func requireAffected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
