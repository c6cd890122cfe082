package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// FinancialDataRepository implements financial data operations
type FinancialDataRepository struct {
	db *gorm.DB
}

// NewFinancialDataRepository creates a new financial data repository
func NewFinancialDataRepository(db *gorm.DB) *FinancialDataRepository {
	return &FinancialDataRepository{db: db}
}

// Create inserts a row and stamps last_updated. A second row for the same
// citizen and year yields ErrAlreadyExists.
func (r *FinancialDataRepository) Create(ctx context.Context, data *entities.FinancialData) error {
	data.LastUpdated = time.Now()
	m := toFinancialModel(data)
	if err := GetDB(ctx, r.db).Omit("Citizen").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	data.ID = m.ID
	return nil
}

func (r *FinancialDataRepository) GetByID(ctx context.Context, id uint) (*entities.FinancialData, error) {
	var m models.FinancialData
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toFinancialEntity(&m), nil
}

func (r *FinancialDataRepository) GetByCitizenYear(ctx context.Context, citizenID uint, year int) (*entities.FinancialData, error) {
	var m models.FinancialData
	if err := GetDB(ctx, r.db).Where("citizen_id = ? AND year = ?", citizenID, year).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toFinancialEntity(&m), nil
}

func (r *FinancialDataRepository) ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.FinancialData, error) {
	var rows []models.FinancialData
	if err := GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Order("year DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.FinancialData, 0, len(rows))
	for i := range rows {
		out = append(out, toFinancialEntity(&rows[i]))
	}
	return out, nil
}

// Update rewrites every financial field and stamps last_updated. Moving the
// row onto a year the citizen already has yields ErrAlreadyExists.
func (r *FinancialDataRepository) Update(ctx context.Context, data *entities.FinancialData) error {
	data.LastUpdated = time.Now()
	result := GetDB(ctx, r.db).Model(&models.FinancialData{}).Where("id = ?", data.ID).
		Updates(map[string]interface{}{
			"year":           data.Year,
			"annual_income":  data.AnnualIncome,
			"income_source":  data.IncomeSource,
			"tax_paid":       data.TaxPaid,
			"tax_liability":  data.TaxLiability,
			"debt_liability": data.DebtLiability,
			"credit_score":   data.CreditScore,
			"last_updated":   data.LastUpdated,
		})
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	return requireAffected(result)
}

func (r *FinancialDataRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.FinancialData{}, "id = ?", id))
}

func (r *FinancialDataRepository) DeleteByCitizen(ctx context.Context, citizenID uint) error {
	return GetDB(ctx, r.db).Where("citizen_id = ?", citizenID).Delete(&models.FinancialData{}).Error
}

func toFinancialModel(e *entities.FinancialData) *models.FinancialData {
	return &models.FinancialData{
		ID:            e.ID,
		CitizenID:     e.CitizenID,
		Year:          e.Year,
		AnnualIncome:  e.AnnualIncome,
		IncomeSource:  e.IncomeSource,
		TaxPaid:       e.TaxPaid,
		TaxLiability:  e.TaxLiability,
		DebtLiability: e.DebtLiability,
		CreditScore:   e.CreditScore,
		LastUpdated:   e.LastUpdated,
	}
}

func toFinancialEntity(m *models.FinancialData) *entities.FinancialData {
	return &entities.FinancialData{
		ID:            m.ID,
		CitizenID:     m.CitizenID,
		Year:          m.Year,
		AnnualIncome:  m.AnnualIncome,
		IncomeSource:  m.IncomeSource,
		TaxPaid:       m.TaxPaid,
		TaxLiability:  m.TaxLiability,
		DebtLiability: m.DebtLiability,
		CreditScore:   m.CreditScore,
		LastUpdated:   m.LastUpdated,
	}
}
