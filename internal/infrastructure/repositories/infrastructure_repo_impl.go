package repositories

import (
	"context"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// InfrastructureRepository implements infrastructure project data operations
type InfrastructureRepository struct {
	db *gorm.DB
}

// NewInfrastructureRepository creates a new infrastructure repository
func NewInfrastructureRepository(db *gorm.DB) *InfrastructureRepository {
	return &InfrastructureRepository{db: db}
}

func (r *InfrastructureRepository) Create(ctx context.Context, infra *entities.Infrastructure) error {
	m := &models.Infrastructure{
		AgencyID:    infra.AgencyID,
		Description: infra.Description,
		Location:    infra.Location,
		Funding:     infra.Funding,
		ActualCost:  infra.ActualCost,
	}
	if err := GetDB(ctx, r.db).Omit("Agency").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	infra.ID = m.ID
	return nil
}

func (r *InfrastructureRepository) GetByID(ctx context.Context, id uint) (*entities.Infrastructure, error) {
	var m models.Infrastructure
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toInfrastructureEntity(&m), nil
}

func (r *InfrastructureRepository) List(ctx context.Context) ([]*entities.Infrastructure, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *InfrastructureRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*entities.Infrastructure, error) {
	return r.find(GetDB(ctx, r.db).Where("agency_id = ?", agencyID))
}

func (r *InfrastructureRepository) UpdateActualCost(ctx context.Context, id uint, cost float64) error {
	result := GetDB(ctx, r.db).Model(&models.Infrastructure{}).Where("id = ?", id).Update("actual_cost", cost)
	return requireAffected(result)
}

func (r *InfrastructureRepository) DeleteByAgency(ctx context.Context, agencyID uint) error {
	return GetDB(ctx, r.db).Where("agency_id = ?", agencyID).Delete(&models.Infrastructure{}).Error
}

func (r *InfrastructureRepository) find(q *gorm.DB) ([]*entities.Infrastructure, error) {
	var rows []models.Infrastructure
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Infrastructure, 0, len(rows))
	for i := range rows {
		out = append(out, toInfrastructureEntity(&rows[i]))
	}
	return out, nil
}

func toInfrastructureEntity(m *models.Infrastructure) *entities.Infrastructure {
	return &entities.Infrastructure{
		ID:          m.ID,
		AgencyID:    m.AgencyID,
		Description: m.Description,
		Location:    m.Location,
		Funding:     m.Funding,
		ActualCost:  m.ActualCost,
	}
}

// EnvironmentalDataRepository implements yearly environmental data operations
type EnvironmentalDataRepository struct {
	db *gorm.DB
}

// NewEnvironmentalDataRepository creates a new environmental data repository
func NewEnvironmentalDataRepository(db *gorm.DB) *EnvironmentalDataRepository {
	return &EnvironmentalDataRepository{db: db}
}

// Create inserts the row for a year. An existing year yields ErrAlreadyExists.
func (r *EnvironmentalDataRepository) Create(ctx context.Context, data *entities.EnvironmentalData) error {
	return translateWriteError(GetDB(ctx, r.db).Create(toEnvironmentModel(data)).Error)
}

func (r *EnvironmentalDataRepository) GetByYear(ctx context.Context, year int) (*entities.EnvironmentalData, error) {
	var m models.EnvironmentalData
	if err := GetDB(ctx, r.db).Where("year = ?", year).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toEnvironmentEntity(&m), nil
}

func (r *EnvironmentalDataRepository) List(ctx context.Context) ([]*entities.EnvironmentalData, error) {
	var rows []models.EnvironmentalData
	if err := GetDB(ctx, r.db).Order("year DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.EnvironmentalData, 0, len(rows))
	for i := range rows {
		out = append(out, toEnvironmentEntity(&rows[i]))
	}
	return out, nil
}

func (r *EnvironmentalDataRepository) Update(ctx context.Context, data *entities.EnvironmentalData) error {
	result := GetDB(ctx, r.db).Model(&models.EnvironmentalData{}).Where("year = ?", data.Year).
		Updates(map[string]interface{}{
			"aqi":           data.AQI,
			"forest_cover":  data.ForestCover,
			"odf":           data.ODF,
			"afforestation": data.Afforestation,
			"precipitation": data.Precipitation,
			"water_quality": data.WaterQuality,
		})
	return requireAffected(result)
}

func (r *EnvironmentalDataRepository) Delete(ctx context.Context, year int) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.EnvironmentalData{}, "year = ?", year))
}

func toEnvironmentModel(e *entities.EnvironmentalData) *models.EnvironmentalData {
	return &models.EnvironmentalData{
		Year:          e.Year,
		AQI:           e.AQI,
		ForestCover:   e.ForestCover,
		ODF:           e.ODF,
		Afforestation: e.Afforestation,
		Precipitation: e.Precipitation,
		WaterQuality:  e.WaterQuality,
	}
}

func toEnvironmentEntity(m *models.EnvironmentalData) *entities.EnvironmentalData {
	return &entities.EnvironmentalData{
		Year:          m.Year,
		AQI:           m.AQI,
		ForestCover:   m.ForestCover,
		ODF:           m.ODF,
		Afforestation: m.Afforestation,
		Precipitation: m.Precipitation,
		WaterQuality:  m.WaterQuality,
	}
}
