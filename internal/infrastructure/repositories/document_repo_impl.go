package repositories

import (
	"context"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// DocumentRepository implements document data operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	m := &models.Document{
		CitizenID: doc.CitizenID,
		Type:      doc.Type,
		PDFData:   doc.PDFData,
	}
	if err := GetDB(ctx, r.db).Omit("Citizen").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	doc.ID = m.ID
	doc.CreatedAt = m.CreatedAt
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*entities.Document, error) {
	var m models.Document
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toDocumentEntity(&m), nil
}

func (r *DocumentRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Document, error) {
	var rows []models.Document
	if err := GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Document, 0, len(rows))
	for i := range rows {
		out = append(out, toDocumentEntity(&rows[i]))
	}
	return out, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.Document{}, "id = ?", id))
}

func (r *DocumentRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	return GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Delete(&models.Document{}).Error
}

func toDocumentEntity(m *models.Document) *entities.Document {
	return &entities.Document{
		ID:        m.ID,
		CitizenID: m.CitizenID,
		Type:      m.Type,
		PDFData:   m.PDFData,
		CreatedAt: m.CreatedAt,
	}
}
