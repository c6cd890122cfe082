package usecases

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/domain/repositories"
	"panchayat.backend/pkg/logger"
	"panchayat.backend/pkg/utils"
)

// IssuePage is one page of the employee issue listing.
type IssuePage struct {
	Items []*entities.Issue
	Meta  utils.PaginationMeta
}

// IssueUsecase handles citizen grievances
type IssueUsecase struct {
	uow          repositories.UnitOfWork
	issueRepo    repositories.IssueRepository
	profileRepo  repositories.ProfileRepository
	activityRepo repositories.ActivityLogRepository
}

// NewIssueUsecase creates a new issue usecase
func NewIssueUsecase(
	uow repositories.UnitOfWork,
	issueRepo repositories.IssueRepository,
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityLogRepository,
) *IssueUsecase {
	return &IssueUsecase{
		uow:          uow,
		issueRepo:    issueRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
	}
}

// ListMine returns the actor's own issues.
func (u *IssueUsecase) ListMine(ctx context.Context, actor access.Actor) ([]*entities.Issue, error) {
	if err := access.Authorize(actor, access.Read, access.OwnedByCitizen(access.Issue, actor.ProfileID)); err != nil {
		return nil, err
	}
	return u.issueRepo.ListByCitizen(ctx, actor.ProfileID)
}

// Create raises a new PENDING issue owned by the actor.
func (u *IssueUsecase) Create(ctx context.Context, actor access.Actor, input *entities.CreateIssueInput) (*entities.Issue, error) {
	if err := access.Authorize(actor, access.Create, access.OwnedByCitizen(access.Issue, actor.ProfileID)); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerrors.BadRequest("description is required")
	}

	issue := &entities.Issue{
		CitizenID:   actor.ProfileID,
		Description: description,
		Status:      entities.IssueStatusPending,
	}
	if err := u.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// Delete withdraws one of the actor's issues while it is still PENDING.
func (u *IssueUsecase) Delete(ctx context.Context, actor access.Actor, id uint) error {
	issue, err := u.issueRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "issue not found")
	}
	if err := access.Authorize(actor, access.Delete, access.OwnedByCitizen(access.Issue, issue.CitizenID)); err != nil {
		return err
	}
	if issue.Status != entities.IssueStatusPending {
		return domainerrors.Forbidden(fmt.Sprintf("issue is %s; only PENDING issues can be deleted", issue.Status))
	}
	return notFoundAs(u.issueRepo.Delete(ctx, id), "issue not found")
}

// List returns a page of all issues, optionally narrowed by status.
func (u *IssueUsecase) List(ctx context.Context, actor access.Actor, filter entities.IssueFilter, page, limit int) (*IssuePage, error) {
	if err := access.Authorize(actor, access.Read, access.On(access.Issue)); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unknown issue status %q", filter.Status))
	}
	params := utils.GetPaginationParams(page, limit)
	issues, total, err := u.issueRepo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, err
	}
	return &IssuePage{Items: issues, Meta: utils.CalculateMeta(int64(total), params.Page, params.Limit)}, nil
}

// UpdateStatus moves an issue to a new status and stamps updated_at.
func (u *IssueUsecase) UpdateStatus(ctx context.Context, actor access.Actor, id uint, input *entities.UpdateIssueStatusInput) (*entities.Issue, error) {
	status := entities.IssueStatus(strings.ToUpper(strings.TrimSpace(string(input.Status))))
	if !status.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unknown issue status %q", input.Status))
	}

	issue, err := u.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "issue not found")
	}
	if err := access.Authorize(actor, access.UpdateStatus, access.OwnedByCitizen(access.Issue, issue.CitizenID)); err != nil {
		return nil, err
	}

	owner, err := u.profileRepo.GetCitizenByID(ctx, issue.CitizenID)
	if err != nil {
		return nil, err
	}

	previous := issue.Status
	now := timeNow().UTC()
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.issueRepo.UpdateStatus(txCtx, id, status, now); err != nil {
			return err
		}
		return recordActivity(txCtx, u.activityRepo, actor.Username, owner.Username, entities.ActionUpdateIssueStatus,
			fmt.Sprintf("issue %d: %s", id, previous), fmt.Sprintf("issue %d: %s", id, status))
	})
	if err != nil {
		return nil, notFoundAs(err, "issue not found")
	}

	issue.Status = status
	issue.UpdatedAt = now
	logger.Info(ctx, "Issue status updated", zap.Uint("issue_id", id), zap.String("from", string(previous)), zap.String("to", string(status)))
	return issue, nil
}
