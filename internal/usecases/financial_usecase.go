package usecases

import (
	"context"
	"errors"
	"fmt"

	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
)

// FinancialUsecase handles yearly citizen financial records
type FinancialUsecase struct {
	financialRepo repositories.FinancialDataRepository
	profileRepo   repositories.ProfileRepository
}

// NewFinancialUsecase creates a new financial usecase
func NewFinancialUsecase(financialRepo repositories.FinancialDataRepository, profileRepo repositories.ProfileRepository) *FinancialUsecase {
	return &FinancialUsecase{financialRepo: financialRepo, profileRepo: profileRepo}
}

// ListMine returns the actor's own financial records.
func (u *FinancialUsecase) ListMine(ctx context.Context, actor access.Actor) ([]*entities.FinancialData, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.FinancialData, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.financialRepo.ListByCitizen(ctx, actor.ProfileID)
}

// ListForCitizen returns the financial records of the citizen named username.
func (u *FinancialUsecase) ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*entities.FinancialData, error) {
	citizen, err := resolveCitizen(ctx, u.profileRepo, username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.FinancialData, citizen.ID)); err != nil {
		return nil, err
	}
	return u.financialRepo.ListByCitizen(ctx, citizen.ID)
}

// Create stores a year of financial data. A second row for the same year is a conflict.
func (u *FinancialUsecase) Create(ctx context.Context, actor access.Actor, input *entities.CreateFinancialDataInput) (*entities.FinancialData, error) {
	citizen, err := resolveCitizen(ctx, u.profileRepo, input.Username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Create, access.OwnedByCitizen(access.FinancialData, citizen.ID)); err != nil {
		return nil, err
	}
	if err := validateFinancialInput(&input.FinancialDataInput); err != nil {
		return nil, err
	}

	data := &entities.FinancialData{CitizenID: citizen.ID}
	applyFinancialInput(data, &input.FinancialDataInput)
	if err := u.financialRepo.Create(ctx, data); err != nil {
		return nil, duplicateYear(err, input.Year)
	}
	return data, nil
}

// Update rewrites a financial record. Moving it onto a year that already has
// a row is a conflict.
func (u *FinancialUsecase) Update(ctx context.Context, actor access.Actor, id uint, input *entities.FinancialDataInput) (*entities.FinancialData, error) {
	data, err := u.financialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "financial data not found")
	}
	if err := access.Authorize(actor, access.Update, access.OwnedByCitizen(access.FinancialData, data.CitizenID)); err != nil {
		return nil, err
	}
	if err := validateFinancialInput(input); err != nil {
		return nil, err
	}

	if input.Year != data.Year {
		existing, err := u.financialRepo.GetByCitizenYear(ctx, data.CitizenID, input.Year)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, duplicateYear(domainerrors.ErrAlreadyExists, input.Year)
		}
	}

	applyFinancialInput(data, input)
	if err := u.financialRepo.Update(ctx, data); err != nil {
		return nil, notFoundAs(duplicateYear(err, input.Year), "financial data not found")
	}
	return data, nil
}

// Delete removes a financial record.
func (u *FinancialUsecase) Delete(ctx context.Context, actor access.Actor, id uint) error {
	data, err := u.financialRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "financial data not found")
	}
	if err := access.Authorize(actor, access.Delete, access.OwnedByCitizen(access.FinancialData, data.CitizenID)); err != nil {
		return err
	}
	return notFoundAs(u.financialRepo.Delete(ctx, id), "financial data not found")
}

func validateFinancialInput(input *entities.FinancialDataInput) error {
	switch {
	case input.Year <= 1900:
		return domainerrors.BadRequest("year must be after 1900")
	case input.AnnualIncome < 0, input.TaxPaid < 0, input.TaxLiability < 0, input.DebtLiability < 0:
		return domainerrors.BadRequest("amounts must not be negative")
	}
	return nil
}

func applyFinancialInput(data *entities.FinancialData, input *entities.FinancialDataInput) {
	data.Year = input.Year
	data.AnnualIncome = input.AnnualIncome
	data.IncomeSource = input.IncomeSource
	data.TaxPaid = input.TaxPaid
	data.TaxLiability = input.TaxLiability
	data.DebtLiability = input.DebtLiability
	data.CreditScore = input.CreditScore
	data.LastUpdated = timeNow().UTC()
}

func duplicateYear(err error, year int) error {
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return domainerrors.Conflict(fmt.Sprintf("financial data for year %d already exists", year))
	}
	return err
}
