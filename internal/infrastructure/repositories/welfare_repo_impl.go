package repositories

import (
	"context"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// WelfareSchemeRepository implements welfare scheme data operations
type WelfareSchemeRepository struct {
	db *gorm.DB
}

// NewWelfareSchemeRepository creates a new welfare scheme repository
func NewWelfareSchemeRepository(db *gorm.DB) *WelfareSchemeRepository {
	return &WelfareSchemeRepository{db: db}
}

func (r *WelfareSchemeRepository) Create(ctx context.Context, scheme *entities.WelfareScheme) error {
	m := &models.WelfareScheme{
		AgencyID:            scheme.AgencyID,
		Name:                scheme.Name,
		Description:         scheme.Description,
		ApplicationDeadline: scheme.ApplicationDeadline,
	}
	if err := GetDB(ctx, r.db).Omit("Agency").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	scheme.ID = m.ID
	scheme.CreatedAt = m.CreatedAt
	return nil
}

func (r *WelfareSchemeRepository) GetByID(ctx context.Context, id uint) (*entities.WelfareScheme, error) {
	var m models.WelfareScheme
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toSchemeEntity(&m), nil
}

func (r *WelfareSchemeRepository) List(ctx context.Context) ([]*entities.WelfareScheme, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *WelfareSchemeRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*entities.WelfareScheme, error) {
	return r.find(GetDB(ctx, r.db).Where("agency_id = ?", agencyID))
}

func (r *WelfareSchemeRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.WelfareScheme{}, "id = ?", id))
}

func (r *WelfareSchemeRepository) DeleteByAgency(ctx context.Context, agencyID uint) error {
	return GetDB(ctx, r.db).Where("agency_id = ?", agencyID).Delete(&models.WelfareScheme{}).Error
}

func (r *WelfareSchemeRepository) find(q *gorm.DB) ([]*entities.WelfareScheme, error) {
	var rows []models.WelfareScheme
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.WelfareScheme, 0, len(rows))
	for i := range rows {
		out = append(out, toSchemeEntity(&rows[i]))
	}
	return out, nil
}

func toSchemeEntity(m *models.WelfareScheme) *entities.WelfareScheme {
	return &entities.WelfareScheme{
		ID:                  m.ID,
		AgencyID:            m.AgencyID,
		Name:                m.Name,
		Description:         m.Description,
		ApplicationDeadline: m.ApplicationDeadline,
		CreatedAt:           m.CreatedAt,
	}
}

// WelfareEnrolRepository implements welfare enrolment data operations
type WelfareEnrolRepository struct {
	db *gorm.DB
}

// NewWelfareEnrolRepository creates a new welfare enrolment repository
func NewWelfareEnrolRepository(db *gorm.DB) *WelfareEnrolRepository {
	return &WelfareEnrolRepository{db: db}
}

// Create inserts an enrolment. A second enrolment of the same citizen in the
// same scheme yields ErrAlreadyExists.
func (r *WelfareEnrolRepository) Create(ctx context.Context, enrol *entities.WelfareEnrol) error {
	if enrol.Status == "" {
		enrol.Status = entities.EnrolStatusPending
	}
	m := &models.WelfareEnrol{
		CitizenID: enrol.CitizenID,
		SchemeID:  enrol.SchemeID,
		Status:    string(enrol.Status),
	}
	if err := GetDB(ctx, r.db).Omit("Citizen", "Scheme").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	enrol.ID = m.ID
	enrol.CreatedAt = m.CreatedAt
	enrol.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *WelfareEnrolRepository) GetByID(ctx context.Context, id uint) (*entities.WelfareEnrol, error) {
	var m models.WelfareEnrol
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toEnrolEntity(&m), nil
}

func (r *WelfareEnrolRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.WelfareEnrol, error) {
	return r.find(GetDB(ctx, r.db).Where("citizen_id = ?", citizenID))
}

func (r *WelfareEnrolRepository) List(ctx context.Context, filter entities.EnrolFilter) ([]*entities.WelfareEnrol, error) {
	q := GetDB(ctx, r.db)
	if filter.SchemeID != 0 {
		q = q.Where("scheme_id = ?", filter.SchemeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	return r.find(q)
}

func (r *WelfareEnrolRepository) CountByScheme(ctx context.Context, schemeID uint) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.WelfareEnrol{}).Where("scheme_id = ?", schemeID).Count(&n).Error
	return n, err
}

func (r *WelfareEnrolRepository) UpdateStatus(ctx context.Context, id uint, status entities.EnrolStatus) error {
	result := GetDB(ctx, r.db).Model(&models.WelfareEnrol{}).Where("id = ?", id).Update("status", string(status))
	return requireAffected(result)
}

func (r *WelfareEnrolRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.WelfareEnrol{}, "id = ?", id))
}

func (r *WelfareEnrolRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	return GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Delete(&models.WelfareEnrol{}).Error
}

// DeleteByAgency removes every enrolment in any scheme the agency authored.
func (r *WelfareEnrolRepository) DeleteByAgency(ctx context.Context, agencyID uint) error {
	db := GetDB(ctx, r.db)
	schemes := db.Model(&models.WelfareScheme{}).Select("id").Where("agency_id = ?", agencyID)
	return db.Where("scheme_id IN (?)", schemes).Delete(&models.WelfareEnrol{}).Error
}

func (r *WelfareEnrolRepository) find(q *gorm.DB) ([]*entities.WelfareEnrol, error) {
	var rows []models.WelfareEnrol
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.WelfareEnrol, 0, len(rows))
	for i := range rows {
		out = append(out, toEnrolEntity(&rows[i]))
	}
	return out, nil
}

func toEnrolEntity(m *models.WelfareEnrol) *entities.WelfareEnrol {
	return &entities.WelfareEnrol{
		ID:        m.ID,
		CitizenID: m.CitizenID,
		SchemeID:  m.SchemeID,
		Status:    entities.EnrolStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
