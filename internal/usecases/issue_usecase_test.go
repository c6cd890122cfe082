package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/usecases"
)

type issueFixture struct {
	uow      *MockUnitOfWork
	issues   *MockIssueRepository
	profiles *MockProfileRepository
	activity *MockActivityLogRepository
	uc       *usecases.IssueUsecase
}

func newIssueUsecaseForTest() *issueFixture {
	f := &issueFixture{
		uow:      new(MockUnitOfWork),
		issues:   new(MockIssueRepository),
		profiles: new(MockProfileRepository),
		activity: new(MockActivityLogRepository),
	}
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.uc = usecases.NewIssueUsecase(f.uow, f.issues, f.profiles, f.activity)
	return f
}

func TestIssueUsecase_CitizenFlow(t *testing.T) {
	ctx := context.Background()
	f := newIssueUsecaseForTest()

	f.issues.On("Create", ctx, mock.MatchedBy(func(i *entities.Issue) bool {
		return i.CitizenID == 1 && i.Status == entities.IssueStatusPending && i.Description == "pothole"
	})).Return(nil).Once()
	issue, err := f.uc.Create(ctx, citizenAlice, &entities.CreateIssueInput{Description: "  pothole "})
	require.NoError(t, err)
	assert.Equal(t, entities.IssueStatusPending, issue.Status)

	_, err = f.uc.Create(ctx, citizenAlice, &entities.CreateIssueInput{Description: "   "})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = f.uc.Create(ctx, employeeRavi, &entities.CreateIssueInput{Description: "pothole"})
	requireStatus(t, err, http.StatusForbidden)

	f.issues.On("ListByCitizen", ctx, uint(1)).Return([]*entities.Issue{issue}, nil).Once()
	mine, err := f.uc.ListMine(ctx, citizenAlice)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestIssueUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("pending issue", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		f.issues.On("GetByID", ctx, uint(4)).Return(&entities.Issue{ID: 4, CitizenID: 1, Status: entities.IssueStatusPending}, nil).Once()
		f.issues.On("Delete", ctx, uint(4)).Return(nil).Once()
		require.NoError(t, f.uc.Delete(ctx, citizenAlice, 4))
	})

	t.Run("in progress issue is locked", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		f.issues.On("GetByID", ctx, uint(4)).Return(&entities.Issue{ID: 4, CitizenID: 1, Status: entities.IssueStatusInProgress}, nil).Once()
		requireStatus(t, f.uc.Delete(ctx, citizenAlice, 4), http.StatusForbidden)
		f.issues.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("someone else's issue", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		f.issues.On("GetByID", ctx, uint(4)).Return(&entities.Issue{ID: 4, CitizenID: 1, Status: entities.IssueStatusPending}, nil).Once()
		requireStatus(t, f.uc.Delete(ctx, citizenBob, 4), http.StatusForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		f.issues.On("GetByID", ctx, uint(4)).Return(nil, domainerrors.ErrNotFound).Once()
		requireStatus(t, f.uc.Delete(ctx, citizenAlice, 4), http.StatusNotFound)
	})
}

func TestIssueUsecase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps updated_at and audits", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		f.issues.On("GetByID", ctx, uint(4)).Return(&entities.Issue{ID: 4, CitizenID: 1, Status: entities.IssueStatusPending}, nil).Once()
		f.profiles.On("GetCitizenByID", ctx, uint(1)).Return(&entities.Citizen{ID: 1, Username: "alice"}, nil).Once()
		f.issues.On("UpdateStatus", ctx, uint(4), entities.IssueStatusInProgress, mock.AnythingOfType("time.Time")).Return(nil).Once()
		f.activity.On("Create", ctx, mock.MatchedBy(func(e *entities.ActivityLog) bool {
			return e.AffectedUser == "alice" && e.Actor == "ravi" && e.NewValue == "issue 4: IN_PROGRESS"
		})).Return(nil).Once()

		issue, err := f.uc.UpdateStatus(ctx, employeeRavi, 4, &entities.UpdateIssueStatusInput{Status: "in_progress"})
		require.NoError(t, err)
		assert.Equal(t, entities.IssueStatusInProgress, issue.Status)
		assert.WithinDuration(t, time.Now(), issue.UpdatedAt, time.Minute)
		f.activity.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		_, err := f.uc.UpdateStatus(ctx, employeeRavi, 4, &entities.UpdateIssueStatusInput{Status: "DONE"})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("citizens cannot change status", func(t *testing.T) {
		f := newIssueUsecaseForTest()
		f.issues.On("GetByID", ctx, uint(4)).Return(&entities.Issue{ID: 4, CitizenID: 1}, nil).Once()
		_, err := f.uc.UpdateStatus(ctx, citizenAlice, 4, &entities.UpdateIssueStatusInput{Status: entities.IssueStatusResolved})
		requireStatus(t, err, http.StatusForbidden)
	})
}

func TestIssueUsecase_List(t *testing.T) {
	ctx := context.Background()
	f := newIssueUsecaseForTest()
	filter := entities.IssueFilter{Status: entities.IssueStatusPending}
	f.issues.On("List", ctx, filter, 10, 10).Return([]*entities.Issue{{ID: 1}}, 11, nil).Once()

	page, err := f.uc.List(ctx, employeeRavi, filter, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Meta.TotalPages)

	_, err = f.uc.List(ctx, employeeRavi, entities.IssueFilter{Status: "LOST"}, 1, 10)
	requireStatus(t, err, http.StatusBadRequest)

	_, err = f.uc.List(ctx, citizenAlice, entities.IssueFilter{}, 1, 10)
	requireStatus(t, err, http.StatusForbidden)
}
