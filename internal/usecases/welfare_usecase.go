package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
	"panchayat.backend/pkg/logger"
)

// WelfareUsecase handles welfare schemes and citizen enrolments
type WelfareUsecase struct {
	uow          repositories.UnitOfWork
	schemeRepo   repositories.WelfareSchemeRepository
	enrolRepo    repositories.WelfareEnrolRepository
	profileRepo  repositories.ProfileRepository
	activityRepo repositories.ActivityLogRepository
}

// NewWelfareUsecase creates a new welfare usecase
func NewWelfareUsecase(
	uow repositories.UnitOfWork,
	schemeRepo repositories.WelfareSchemeRepository,
	enrolRepo repositories.WelfareEnrolRepository,
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityLogRepository,
) *WelfareUsecase {
	return &WelfareUsecase{
		uow:          uow,
		schemeRepo:   schemeRepo,
		enrolRepo:    enrolRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
	}
}

// ListSchemes returns every scheme.
func (u *WelfareUsecase) ListSchemes(ctx context.Context, actor access.Actor) ([]*entities.WelfareScheme, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.WelfareScheme)); err != nil {
		return nil, err
	}
	return u.schemeRepo.List(ctx)
}

// ListOwnSchemes returns the schemes authored by the acting agency.
func (u *WelfareUsecase) ListOwnSchemes(ctx context.Context, actor access.Actor) ([]*entities.WelfareScheme, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByAgency(access.WelfareScheme, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.schemeRepo.ListByAgency(ctx, actor.ProfileID)
}

// CreateScheme publishes a scheme owned by the acting agency.
func (u *WelfareUsecase) CreateScheme(ctx context.Context, actor access.Actor, input *entities.CreateSchemeInput) (*entities.WelfareScheme, error) {
	if err := access.Authorize(actor, access.Create, access.OwnedByAgency(access.WelfareScheme, actor.ProfileID)); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("Scheme_name is required")
	}

	scheme := &entities.WelfareScheme{
		AgencyID:    actor.ProfileID,
		Name:        name,
		Description: input.Description,
	}
	if input.ApplicationDeadline != nil && !input.ApplicationDeadline.IsZero() {
		scheme.ApplicationDeadline = null.TimeFrom(input.ApplicationDeadline.Time)
	}
	if err := u.schemeRepo.Create(ctx, scheme); err != nil {
		return nil, err
	}
	logger.Info(ctx, "Welfare scheme created", zap.Uint("scheme_id", scheme.ID), zap.String("agency", actor.Username))
	return scheme, nil
}

// DeleteScheme removes one of the acting agency's schemes. Schemes of other
// agencies read as missing, and a scheme with enrolments cannot be deleted.
func (u *WelfareUsecase) DeleteScheme(ctx context.Context, actor access.Actor, id uint) error {
	if err := access.Authorize(actor, access.Delete, access.OwnedByAgency(access.WelfareScheme, actor.ProfileID)); err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		scheme, err := u.schemeRepo.GetByID(u.uow.WithLock(txCtx), id)
		if err != nil {
			return notFoundAs(err, "welfare scheme not found")
		}
		if !access.Can(actor, access.Delete, access.OwnedByAgency(access.WelfareScheme, scheme.AgencyID)) {
			return domainerrors.NotFound("welfare scheme not found")
		}

		enrolled, err := u.enrolRepo.CountByScheme(txCtx, id)
		if err != nil {
			return err
		}
		if enrolled > 0 {
			return domainerrors.Conflict("cannot delete scheme with active enrollments")
		}
		return notFoundAs(u.schemeRepo.Delete(txCtx, id), "welfare scheme not found")
	})
}

// ListMyEnrolments returns the actor's own enrolments.
func (u *WelfareUsecase) ListMyEnrolments(ctx context.Context, actor access.Actor) ([]*entities.WelfareEnrol, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.WelfareEnrol, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.enrolRepo.ListByCitizen(ctx, actor.ProfileID)
}

// Enrol applies the actor to a scheme whose deadline has not passed.
func (u *WelfareUsecase) Enrol(ctx context.Context, actor access.Actor, input *entities.EnrolInput) (*entities.WelfareEnrol, error) {
	if err := access.Authorize(actor, access.Create, access.OwnedByCitizen(access.WelfareEnrol, actor.ProfileID)); err != nil {
		return nil, err
	}

	scheme, err := u.schemeRepo.GetByID(ctx, input.SchemeID)
	if err != nil {
		return nil, notFoundAs(err, "welfare scheme not found")
	}
	if scheme.DeadlinePassed(timeNow()) {
		return nil, domainerrors.DeadlinePassed(fmt.Sprintf("application deadline for '%s' has passed", scheme.Name))
	}

	enrol := &entities.WelfareEnrol{
		CitizenID: actor.ProfileID,
		SchemeID:  scheme.ID,
		Status:    entities.EnrolStatusPending,
	}
	if err := u.enrolRepo.Create(ctx, enrol); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("already enrolled in this scheme")
		}
		return nil, notFoundAs(err, "welfare scheme not found")
	}
	return enrol, nil
}

// Withdraw deletes one of the actor's enrolments, whatever its status.
func (u *WelfareUsecase) Withdraw(ctx context.Context, actor access.Actor, id uint) error {
	enrol, err := u.enrolRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "enrolment not found")
	}
	if err := access.Authorize(actor, access.Delete, access.OwnedByCitizen(access.WelfareEnrol, enrol.CitizenID)); err != nil {
		return err
	}
	return notFoundAs(u.enrolRepo.Delete(ctx, id), "enrolment not found")
}

// ListEnrolments returns all enrolments matching filter.
func (u *WelfareUsecase) ListEnrolments(ctx context.Context, actor access.Actor, filter entities.EnrolFilter) ([]*entities.WelfareEnrol, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.WelfareEnrol)); err != nil {
		return nil, err
	}
	switch filter.Status {
	case "", entities.EnrolStatusPending, entities.EnrolStatusApproved, entities.EnrolStatusRejected:
	default:
		return nil, domainerrors.BadRequest(fmt.Sprintf("unknown enrolment status %q", filter.Status))
	}
	return u.enrolRepo.List(ctx, filter)
}

// DecideEnrolment approves or rejects an enrolment. Approval persists the
// status and rejection deletes the row; removed reports the latter.
func (u *WelfareUsecase) DecideEnrolment(ctx context.Context, actor access.Actor, id uint, input *entities.DecideEnrolInput) (enrol *entities.WelfareEnrol, removed bool, err error) {
	status := entities.EnrolStatus(strings.ToUpper(strings.TrimSpace(string(input.Status))))
	if status != entities.EnrolStatusApproved && status != entities.EnrolStatusRejected {
		return nil, false, domainerrors.BadRequest("status must be APPROVED or REJECTED")
	}

	enrol, err = u.enrolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, notFoundAs(err, "enrolment not found")
	}
	if err := access.Authorize(actor, access.Decide, access.OwnedByCitizen(access.WelfareEnrol, enrol.CitizenID)); err != nil {
		return nil, false, err
	}
	citizen, err := u.profileRepo.GetCitizenByID(ctx, enrol.CitizenID)
	if err != nil {
		return nil, false, err
	}

	previous := enrol.Status
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		if status == entities.EnrolStatusRejected {
			err = u.enrolRepo.Delete(txCtx, id)
		} else {
			err = u.enrolRepo.UpdateStatus(txCtx, id, status)
		}
		if err != nil {
			return err
		}
		return recordActivity(txCtx, u.activityRepo, actor.Username, citizen.Username, entities.ActionDecideEnrolment,
			fmt.Sprintf("enrolment %d: %s", id, previous), fmt.Sprintf("enrolment %d: %s", id, status))
	})
	if err != nil {
		return nil, false, notFoundAs(err, "enrolment not found")
	}

	enrol.Status = status
	enrol.UpdatedAt = timeNow().UTC()
	return enrol, status == entities.EnrolStatusRejected, nil
}
