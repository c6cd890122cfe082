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

// EnvironmentUsecase handles the village's yearly environmental statistics
type EnvironmentUsecase struct {
	envRepo repositories.EnvironmentalDataRepository
}

// NewEnvironmentUsecase creates a new environment usecase
func NewEnvironmentUsecase(envRepo repositories.EnvironmentalDataRepository) *EnvironmentUsecase {
	return &EnvironmentUsecase{envRepo: envRepo}
}

func (u *EnvironmentUsecase) List(ctx context.Context, actor access.Actor) ([]*entities.EnvironmentalData, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.EnvironmentalData)); err != nil {
		return nil, err
	}
	return u.envRepo.List(ctx)
}

func (u *EnvironmentUsecase) Get(ctx context.Context, actor access.Actor, year int) (*entities.EnvironmentalData, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.EnvironmentalData)); err != nil {
		return nil, err
	}
	data, err := u.envRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, notFoundAs(err, fmt.Sprintf("no environmental data for year %d", year))
	}
	return data, nil
}

// Create stores a new year. Each year has at most one row.
func (u *EnvironmentUsecase) Create(ctx context.Context, actor access.Actor, input *entities.EnvironmentalDataInput) (*entities.EnvironmentalData, error) {
	if err := access.Authorize(actor, access.Create, access.On(access.EnvironmentalData)); err != nil {
		return nil, err
	}
	if input.Year <= 0 {
		return nil, domainerrors.BadRequest("Year is required")
	}

	data := environmentFromInput(input.Year, input)
	if err := u.envRepo.Create(ctx, data); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict(fmt.Sprintf("environmental data for year %d already exists", input.Year))
		}
		return nil, err
	}
	return data, nil
}

// Update replaces the metrics of year. The year itself never changes.
func (u *EnvironmentUsecase) Update(ctx context.Context, actor access.Actor, year int, input *entities.EnvironmentalDataInput) (*entities.EnvironmentalData, error) {
	if err := access.Authorize(actor, access.Update, access.On(access.EnvironmentalData)); err != nil {
		return nil, err
	}
	data := environmentFromInput(year, input)
	if err := u.envRepo.Update(ctx, data); err != nil {
		return nil, notFoundAs(err, fmt.Sprintf("no environmental data for year %d", year))
	}
	return data, nil
}

func (u *EnvironmentUsecase) Delete(ctx context.Context, actor access.Actor, year int) error {
	if err := access.Authorize(actor, access.Delete, access.On(access.EnvironmentalData)); err != nil {
		return err
	}
	return notFoundAs(u.envRepo.Delete(ctx, year), fmt.Sprintf("no environmental data for year %d", year))
}

func environmentFromInput(year int, input *entities.EnvironmentalDataInput) *entities.EnvironmentalData {
	return &entities.EnvironmentalData{
		Year:          year,
		AQI:           input.AQI,
		ForestCover:   input.ForestCover,
		ODF:           input.ODF,
		Afforestation: input.Afforestation,
		Precipitation: input.Precipitation,
		WaterQuality:  input.WaterQuality,
	}
}
