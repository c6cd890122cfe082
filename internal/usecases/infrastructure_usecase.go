package usecases

import (
	"context"
	"fmt"
	"strings"

	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
)

// InfrastructureUsecase handles public works projects
type InfrastructureUsecase struct {
	uow          repositories.UnitOfWork
	infraRepo    repositories.InfrastructureRepository
	profileRepo  repositories.ProfileRepository
	activityRepo repositories.ActivityLogRepository
}

// NewInfrastructureUsecase creates a new infrastructure usecase
func NewInfrastructureUsecase(
	uow repositories.UnitOfWork,
	infraRepo repositories.InfrastructureRepository,
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityLogRepository,
) *InfrastructureUsecase {
	return &InfrastructureUsecase{
		uow:          uow,
		infraRepo:    infraRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
	}
}

// ListAll returns every project.
func (u *InfrastructureUsecase) ListAll(ctx context.Context, actor access.Actor) ([]*entities.Infrastructure, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.Infrastructure)); err != nil {
		return nil, err
	}
	return u.infraRepo.List(ctx)
}

// ListOwn returns the projects authored by the acting agency.
func (u *InfrastructureUsecase) ListOwn(ctx context.Context, actor access.Actor) ([]*entities.Infrastructure, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByAgency(access.Infrastructure, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.infraRepo.ListByAgency(ctx, actor.ProfileID)
}

// Create records a project for the acting agency with no spend yet.
func (u *InfrastructureUsecase) Create(ctx context.Context, actor access.Actor, input *entities.CreateInfrastructureInput) (*entities.Infrastructure, error) {
	if err := access.Authorize(actor, access.Create, access.OwnedByAgency(access.Infrastructure, actor.ProfileID)); err != nil {
		return nil, err
	}
	if input.Funding < 0 {
		return nil, domainerrors.BadRequest("Funding must not be negative")
	}
	if strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.Location) == "" {
		return nil, domainerrors.BadRequest("Description and Location are required")
	}

	infra := &entities.Infrastructure{
		AgencyID:    actor.ProfileID,
		Description: input.Description,
		Location:    input.Location,
		Funding:     input.Funding,
	}
	if err := u.infraRepo.Create(ctx, infra); err != nil {
		return nil, err
	}
	return infra, nil
}

// UpdateCost records the actual spend on a project.
func (u *InfrastructureUsecase) UpdateCost(ctx context.Context, actor access.Actor, id uint, input *entities.UpdateCostInput) (*entities.Infrastructure, error) {
	if input.ActualCost == nil {
		return nil, domainerrors.BadRequest("Actual_cost is required")
	}
	cost := *input.ActualCost
	if cost < 0 {
		return nil, domainerrors.BadRequest("Actual_cost must not be negative")
	}

	infra, err := u.infraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "infrastructure not found")
	}
	if err := access.Authorize(actor, access.UpdateCost, access.OwnedByAgency(access.Infrastructure, infra.AgencyID)); err != nil {
		return nil, err
	}
	agency, err := u.profileRepo.GetAgencyByID(ctx, infra.AgencyID)
	if err != nil {
		return nil, err
	}

	previous := infra.ActualCost
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.infraRepo.UpdateActualCost(txCtx, id, cost); err != nil {
			return err
		}
		return recordActivity(txCtx, u.activityRepo, actor.Username, agency.Username, entities.ActionUpdateCost,
			fmt.Sprintf("infrastructure %d: %.2f", id, previous), fmt.Sprintf("infrastructure %d: %.2f", id, cost))
	})
	if err != nil {
		return nil, notFoundAs(err, "infrastructure not found")
	}
	infra.ActualCost = cost
	return infra, nil
}
