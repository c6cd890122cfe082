package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// AssetRepository implements asset data operations
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts the asset and, when present, its agricultural land detail.
func (r *AssetRepository) Create(ctx context.Context, asset *entities.Asset) error {
	m := &models.Asset{
		CitizenID: asset.CitizenID,
		Type:      asset.Type,
		Valuation: asset.Valuation,
	}
	if asset.AgriculturalLand != nil {
		m.AgriculturalLand = toLandModel(asset.AgriculturalLand)
	}
	if err := GetDB(ctx, r.db).Omit("Citizen").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	asset.ID = m.ID
	if asset.AgriculturalLand != nil {
		asset.AgriculturalLand.ID = m.AgriculturalLand.ID
		asset.AgriculturalLand.AssetID = m.ID
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*entities.Asset, error) {
	var m models.Asset
	if err := GetDB(ctx, r.db).Preload("AgriculturalLand").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toAssetEntity(&m), nil
}

func (r *AssetRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Asset, error) {
	var rows []models.Asset
	if err := GetDB(ctx, r.db).Preload("AgriculturalLand").
		Where("citizen_id = ?", citizenID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Asset, 0, len(rows))
	for i := range rows {
		out = append(out, toAssetEntity(&rows[i]))
	}
	return out, nil
}

// Update writes type and valuation and reconciles the land detail row: a nil
// detail removes any existing row, a non-nil detail is upserted.
func (r *AssetRepository) Update(ctx context.Context, asset *entities.Asset) error {
	db := GetDB(ctx, r.db)
	result := db.Model(&models.Asset{}).Where("id = ?", asset.ID).
		Updates(map[string]interface{}{"type": asset.Type, "valuation": asset.Valuation})
	if err := requireAffected(result); err != nil {
		return err
	}

	if asset.AgriculturalLand == nil {
		return db.Where("asset_id = ?", asset.ID).Delete(&models.AgriculturalLand{}).Error
	}

	land := toLandModel(asset.AgriculturalLand)
	land.AssetID = asset.ID

	var existing models.AgriculturalLand
	err := db.Where("asset_id = ?", asset.ID).First(&existing).Error
	switch {
	case err == nil:
		land.ID = existing.ID
		if err := db.Save(land).Error; err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(land).Error; err != nil {
			return translateWriteError(err)
		}
	default:
		return err
	}
	asset.AgriculturalLand.ID = land.ID
	asset.AgriculturalLand.AssetID = asset.ID
	return nil
}

// Delete removes the asset together with its land detail.
func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("asset_id = ?", id).Delete(&models.AgriculturalLand{}).Error; err != nil {
		return err
	}
	return requireAffected(db.Delete(&models.Asset{}, "id = ?", id))
}

func (r *AssetRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	db := GetDB(ctx, r.db)
	owned := db.Model(&models.Asset{}).Select("id").Where("citizen_id = ?", citizenID)
	if err := db.Where("asset_id IN (?)", owned).Delete(&models.AgriculturalLand{}).Error; err != nil {
		return err
	}
	return db.Where("citizen_id = ?", citizenID).Delete(&models.Asset{}).Error
}

func toLandModel(l *entities.AgriculturalLand) *models.AgriculturalLand {
	return &models.AgriculturalLand{
		ID:             l.ID,
		AssetID:        l.AssetID,
		Year:           l.Year,
		Season:         l.Season,
		CropType:       l.CropType,
		AreaCultivated: l.AreaCultivated,
		Yield:          l.Yield,
	}
}

func toAssetEntity(m *models.Asset) *entities.Asset {
	a := &entities.Asset{
		ID:        m.ID,
		CitizenID: m.CitizenID,
		Type:      m.Type,
		Valuation: m.Valuation,
	}
	if m.AgriculturalLand != nil {
		a.AgriculturalLand = &entities.AgriculturalLand{
			ID:             m.AgriculturalLand.ID,
			AssetID:        m.AgriculturalLand.AssetID,
			Year:           m.AgriculturalLand.Year,
			Season:         m.AgriculturalLand.Season,
			CropType:       m.AgriculturalLand.CropType,
			AreaCultivated: m.AgriculturalLand.AreaCultivated,
			Yield:          m.AgriculturalLand.Yield,
		}
	}
	return a
}
