package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// IssueRepository implements issue data operations
type IssueRepository struct {
	db *gorm.DB
}

// NewIssueRepository creates a new issue repository
func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Create(ctx context.Context, issue *entities.Issue) error {
	if issue.Status == "" {
		issue.Status = entities.IssueStatusPending
	}
	m := &models.Issue{
		CitizenID:   issue.CitizenID,
		Description: issue.Description,
		Status:      string(issue.Status),
	}
	if err := GetDB(ctx, r.db).Omit("Citizen").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	issue.ID = m.ID
	issue.CreatedAt = m.CreatedAt
	issue.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id uint) (*entities.Issue, error) {
	var m models.Issue
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toIssueEntity(&m), nil
}

func (r *IssueRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Issue, error) {
	var rows []models.Issue
	if err := GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toIssueEntities(rows), nil
}

func (r *IssueRepository) List(ctx context.Context, filter entities.IssueFilter, limit, offset int) ([]*entities.Issue, int, error) {
	query := GetDB(ctx, r.db).Model(&models.Issue{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Issue
	q := query.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toIssueEntities(rows), int(total), nil
}

// UpdateStatus sets the status and stamps updated_at with at.
func (r *IssueRepository) UpdateStatus(ctx context.Context, id uint, status entities.IssueStatus, at time.Time) error {
	result := GetDB(ctx, r.db).Model(&models.Issue{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"status": string(status), "updated_at": at})
	return requireAffected(result)
}

func (r *IssueRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.Issue{}, "id = ?", id))
}

func (r *IssueRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	return GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Delete(&models.Issue{}).Error
}

func toIssueEntities(rows []models.Issue) []*entities.Issue {
	out := make([]*entities.Issue, 0, len(rows))
	for i := range rows {
		out = append(out, toIssueEntity(&rows[i]))
	}
	return out
}

func toIssueEntity(m *models.Issue) *entities.Issue {
	return &entities.Issue{
		ID:          m.ID,
		CitizenID:   m.CitizenID,
		Description: m.Description,
		Status:      entities.IssueStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
