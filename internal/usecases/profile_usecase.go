package usecases

import (
	"context"
	"encoding/json"

	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
)

// ProfileUsecase lets citizens read and edit their own profile
type ProfileUsecase struct {
	uow          repositories.UnitOfWork
	profileRepo  repositories.ProfileRepository
	activityRepo repositories.ActivityLogRepository
	identities   IdentityCache
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	uow repositories.UnitOfWork,
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityLogRepository,
	identities IdentityCache,
) *ProfileUsecase {
	return &ProfileUsecase{
		uow:          uow,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		identities:   cacheOrNoop(identities),
	}
}

// GetCitizenProfile returns the actor's citizen profile.
func (u *ProfileUsecase) GetCitizenProfile(ctx context.Context, actor access.Actor) (*entities.Citizen, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.CitizenProfile, actor.ProfileID)); err != nil {
		return nil, err
	}
	citizen, err := u.profileRepo.GetCitizenByID(ctx, actor.ProfileID)
	if err != nil {
		return nil, notFoundAs(err, "citizen profile not found")
	}
	return citizen, nil
}

// UpdateCitizenProfile applies the non-nil fields of input. Username and date
// of birth never change.
func (u *ProfileUsecase) UpdateCitizenProfile(ctx context.Context, actor access.Actor, input *entities.CitizenProfileUpdate) (*entities.Citizen, error) {
	if err := access.Authorize(actor, access.Update, access.OwnedByCitizen(access.CitizenProfile, actor.ProfileID)); err != nil {
		return nil, err
	}
	if input == nil || input.Empty() {
		return nil, domainerrors.BadRequest("no profile fields to update")
	}

	citizen, err := u.profileRepo.GetCitizenByID(ctx, actor.ProfileID)
	if err != nil {
		return nil, notFoundAs(err, "citizen profile not found")
	}

	oldValues := map[string]interface{}{}
	newValues := map[string]interface{}{}
	setString := func(field string, dst *string, src *string) {
		if src == nil || *src == *dst {
			return
		}
		oldValues[field] = *dst
		newValues[field] = *src
		*dst = *src
	}
	setString("gender", &citizen.Gender, input.Gender)
	setString("address", &citizen.Address, input.Address)
	setString("educational_qualification", &citizen.EducationalQualification, input.EducationalQualification)
	setString("occupation", &citizen.Occupation, input.Occupation)

	if input.DateOfDeath != nil {
		if !input.DateOfDeath.IsZero() && citizen.DateOfBirth.After(*input.DateOfDeath) {
			return nil, domainerrors.BadRequest("Date_of_death is before Date_of_birth")
		}
		oldValues["date_of_death"] = citizen.DateOfDeath
		if input.DateOfDeath.IsZero() {
			citizen.DateOfDeath = nil
		} else {
			d := *input.DateOfDeath
			citizen.DateOfDeath = &d
		}
		newValues["date_of_death"] = citizen.DateOfDeath
	}

	if len(newValues) == 0 {
		return citizen, nil
	}

	oldJSON, _ := json.Marshal(oldValues)
	newJSON, _ := json.Marshal(newValues)
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.UpdateCitizen(txCtx, citizen); err != nil {
			return err
		}
		return recordActivity(txCtx, u.activityRepo, actor.Username, citizen.Username, entities.ActionUpdateProfile, string(oldJSON), string(newJSON))
	})
	if err != nil {
		return nil, err
	}

	u.identities.Delete(citizen.Username)
	return citizen, nil
}
