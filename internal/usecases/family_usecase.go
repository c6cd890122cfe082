package usecases

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
	"panchayat.backend/pkg/logger"
)

// FamilyUsecase handles families and their memberships
type FamilyUsecase struct {
	uow         repositories.UnitOfWork
	familyRepo  repositories.FamilyRepository
	profileRepo repositories.ProfileRepository
}

// NewFamilyUsecase creates a new family usecase
func NewFamilyUsecase(uow repositories.UnitOfWork, familyRepo repositories.FamilyRepository, profileRepo repositories.ProfileRepository) *FamilyUsecase {
	return &FamilyUsecase{uow: uow, familyRepo: familyRepo, profileRepo: profileRepo}
}

// ListMine returns every family the actor belongs to, with members.
func (u *FamilyUsecase) ListMine(ctx context.Context, actor access.Actor) ([]*entities.Family, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Family, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.familyRepo.ListForMember(ctx, actor.ProfileID)
}

// ListHeadedBy returns the families headed by the citizen named username.
func (u *FamilyUsecase) ListHeadedBy(ctx context.Context, actor access.Actor, username string) ([]*entities.Family, error) {
	head, err := resolveCitizen(ctx, u.profileRepo, username)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Family, head.ID)); err != nil {
		return nil, err
	}
	return u.familyRepo.ListHeadedBy(ctx, head.ID)
}

// Create starts a family headed by an existing citizen. The head becomes its
// first member.
func (u *FamilyUsecase) Create(ctx context.Context, actor access.Actor, input *entities.CreateFamilyInput) (*entities.Family, error) {
	head, err := resolveCitizen(ctx, u.profileRepo, input.HeadUsername)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, access.Create, access.OwnedByCitizen(access.Family, head.ID)); err != nil {
		return nil, err
	}

	family := &entities.Family{HeadCitizenID: head.ID, HeadUsername: head.Username}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.familyRepo.Create(txCtx, family)
	})
	if err != nil {
		return nil, err
	}
	return family, nil
}

// AddMember adds a citizen to a family. Adding someone who already belongs
// returns the existing membership with created=false.
func (u *FamilyUsecase) AddMember(ctx context.Context, actor access.Actor, familyID uint, input *entities.AddFamilyMemberInput) (member *entities.FamilyMember, created bool, err error) {
	family, err := u.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return nil, false, notFoundAs(err, "family not found")
	}
	if err := access.Authorize(actor, access.Update, access.OwnedByCitizen(access.Family, family.HeadCitizenID)); err != nil {
		return nil, false, err
	}

	citizen, err := resolveCitizen(ctx, u.profileRepo, input.Username)
	if err != nil {
		return nil, false, err
	}

	relationship := strings.TrimSpace(input.Relationship)
	if relationship == "" {
		relationship = entities.RelationshipMember
	}
	if strings.EqualFold(relationship, entities.RelationshipSelf) && citizen.ID != family.HeadCitizenID {
		return nil, false, domainerrors.BadRequest("only the family head can have relationship Self")
	}

	member = &entities.FamilyMember{
		FamilyID:        family.ID,
		HeadCitizenID:   family.HeadCitizenID,
		MemberCitizenID: citizen.ID,
		Username:        citizen.Username,
		Relationship:    relationship,
	}
	err = u.familyRepo.AddMember(ctx, member)
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		existing, getErr := u.familyRepo.GetMember(ctx, family.ID, citizen.ID)
		if getErr != nil {
			return nil, false, getErr
		}
		logger.Debug(ctx, "Family member already present", zap.Uint("family_id", family.ID), zap.String("username", citizen.Username))
		return existing, false, nil
	}
	if err != nil {
		return nil, false, notFoundAs(err, "family not found")
	}
	return member, true, nil
}

// RemoveMember takes a citizen out of a family. The head cannot be removed.
func (u *FamilyUsecase) RemoveMember(ctx context.Context, actor access.Actor, familyID uint, username string) error {
	family, err := u.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return notFoundAs(err, "family not found")
	}
	if err := access.Authorize(actor, access.Update, access.OwnedByCitizen(access.Family, family.HeadCitizenID)); err != nil {
		return err
	}
	citizen, err := resolveCitizen(ctx, u.profileRepo, username)
	if err != nil {
		return err
	}
	if citizen.ID == family.HeadCitizenID {
		return domainerrors.Conflict("cannot remove the family head; delete the family instead")
	}
	return notFoundAs(u.familyRepo.RemoveMember(ctx, family.ID, citizen.ID), "citizen is not a member of this family")
}

// Delete removes a family and all of its memberships.
func (u *FamilyUsecase) Delete(ctx context.Context, actor access.Actor, familyID uint) error {
	family, err := u.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return notFoundAs(err, "family not found")
	}
	if err := access.Authorize(actor, access.Delete, access.OwnedByCitizen(access.Family, family.HeadCitizenID)); err != nil {
		return err
	}
	return notFoundAs(u.familyRepo.Delete(ctx, family.ID), "family not found")
}
