package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
	"panchayat.backend/pkg/logger"
	"panchayat.backend/pkg/metrics"
	"panchayat.backend/pkg/utils"
)

const notifyTimeout = 30 * time.Second

// AccountNotifier tells a user their account changed state.
type AccountNotifier interface {
	SendAccountVerified(ctx context.Context, user *entities.User) error
}

// OwnedRecordRepositories groups the stores that hold profile owned records.
// DeleteUser clears them before removing the profile.
type OwnedRecordRepositories struct {
	Assets         repositories.AssetRepository
	Families       repositories.FamilyRepository
	Issues         repositories.IssueRepository
	Documents      repositories.DocumentRepository
	Financial      repositories.FinancialDataRepository
	Enrolments     repositories.WelfareEnrolRepository
	Schemes        repositories.WelfareSchemeRepository
	Infrastructure repositories.InfrastructureRepository
}

// UserPage is one page of an admin user listing.
type UserPage struct {
	Items []*entities.User
	Meta  utils.PaginationMeta
}

// ActivityPage is one page of a user's audit trail.
type ActivityPage struct {
	Items []*entities.ActivityLog
	Meta  utils.PaginationMeta
}

// AdminUsecase handles user approval and removal
type AdminUsecase struct {
	uow          repositories.UnitOfWork
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	activityRepo repositories.ActivityLogRepository
	owned        OwnedRecordRepositories
	notifier     AccountNotifier
	identities   IdentityCache
	metrics      *metrics.Metrics
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityLogRepository,
	owned OwnedRecordRepositories,
	notifier AccountNotifier,
	identities IdentityCache,
	m *metrics.Metrics,
) *AdminUsecase {
	return &AdminUsecase{
		uow:          uow,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		owned:        owned,
		notifier:     notifier,
		identities:   cacheOrNoop(identities),
		metrics:      m,
	}
}

// ListUsers returns a page of users, optionally filtered by verification state and role.
func (u *AdminUsecase) ListUsers(ctx context.Context, actor access.Actor, filter entities.UserFilter, page, limit int) (*UserPage, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.User)); err != nil {
		return nil, err
	}
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unknown user type %q", filter.Role))
	}

	params := utils.GetPaginationParams(page, limit)
	users, total, err := u.userRepo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, err
	}
	return &UserPage{Items: users, Meta: utils.CalculateMeta(int64(total), params.Page, params.Limit)}, nil
}

// VerifyUser approves a pending account and notifies its owner in the background.
func (u *AdminUsecase) VerifyUser(ctx context.Context, actor access.Actor, username string) (*entities.User, error) {
	if err := access.Authorize(actor, access.Verify, access.On(access.User)); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	if user.IsVerified {
		return nil, domainerrors.BadRequest("User already verified")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.SetVerified(txCtx, username, true); err != nil {
			return err
		}
		return recordActivity(txCtx, u.activityRepo, actor.Username, username, entities.ActionVerifyUser, "is_verified=false", "is_verified=true")
	})
	if err != nil {
		return nil, err
	}

	user.IsVerified = true
	u.identities.Delete(username)
	u.metrics.IncrementVerified()
	logger.Info(ctx, "User verified", zap.String("username", username), zap.String("by", actor.Username))

	u.notifyVerified(ctx, user)
	return user, nil
}

func (u *AdminUsecase) notifyVerified(ctx context.Context, user *entities.User) {
	if u.notifier == nil {
		return
	}
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	go func() {
		defer cancel()
		if err := u.notifier.SendAccountVerified(notifyCtx, user); err != nil {
			logger.Warn(notifyCtx, "Verification notification failed", zap.String("username", user.Username), zap.Error(err))
		}
	}()
}

// DeleteUser removes a user, its profile and everything the profile owns in
// one transaction.
func (u *AdminUsecase) DeleteUser(ctx context.Context, actor access.Actor, username string) error {
	if err := access.Authorize(actor, access.Delete, access.On(access.User)); err != nil {
		return err
	}
	if actor.Username == username {
		return domainerrors.Forbidden("admins cannot delete their own account")
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return notFoundAs(err, "User not found")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.deleteOwnedRecords(txCtx, user); err != nil {
			return err
		}
		if err := u.profileRepo.DeleteProfile(txCtx, user.Role, username); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		if err := u.userRepo.Delete(txCtx, username); err != nil {
			return err
		}
		return recordActivity(txCtx, u.activityRepo, actor.Username, username, entities.ActionDeleteUser, string(user.Role), "")
	})
	if err != nil {
		return err
	}

	u.identities.Delete(username)
	u.metrics.IncrementDeleted()
	logger.Info(ctx, "User deleted", zap.String("username", username), zap.String("role", string(user.Role)), zap.String("by", actor.Username))
	return nil
}

func (u *AdminUsecase) deleteOwnedRecords(ctx context.Context, user *entities.User) error {
	switch user.Role {
	case entities.RoleCitizen:
		citizen, err := u.profileRepo.GetCitizenByUsername(ctx, user.Username)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		steps := []func(context.Context, uint) error{
			u.owned.Enrolments.DeleteByCitizen,
			u.owned.Financial.DeleteByCitizen,
			u.owned.Documents.DeleteByCitizen,
			u.owned.Issues.DeleteByCitizen,
			u.owned.Assets.DeleteByCitizen,
			u.owned.Families.DeleteForCitizen,
		}
		for _, step := range steps {
			if err := step(ctx, citizen.ID); err != nil {
				return err
			}
		}
	case entities.RoleGovernmentAgency:
		agency, err := u.profileRepo.GetAgencyByUsername(ctx, user.Username)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		steps := []func(context.Context, uint) error{
			u.owned.Enrolments.DeleteByAgency,
			u.owned.Schemes.DeleteByAgency,
			u.owned.Infrastructure.DeleteByAgency,
		}
		for _, step := range steps {
			if err := step(ctx, agency.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListActivity returns the audit entries that mention username.
func (u *AdminUsecase) ListActivity(ctx context.Context, actor access.Actor, username string, page, limit int) (*ActivityPage, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.ActivityLog)); err != nil {
		return nil, err
	}
	params := utils.GetPaginationParams(page, limit)
	entries, total, err := u.activityRepo.ListByUser(ctx, username, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, err
	}
	return &ActivityPage{Items: entries, Meta: utils.CalculateMeta(int64(total), params.Page, params.Limit)}, nil
}
