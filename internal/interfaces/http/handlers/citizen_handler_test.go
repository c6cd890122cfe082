package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
)

type listStub[T any] struct {
	items []*T
	err   error
	actor access.Actor
	user  string
}

func (s *listStub[T]) ListMine(_ context.Context, actor access.Actor) ([]*T, error) {
	s.actor = actor
	return s.items, s.err
}

func (s *listStub[T]) ListForCitizen(_ context.Context, actor access.Actor, username string) ([]*T, error) {
	s.actor, s.user = actor, username
	return s.items, s.err
}

type profileStub struct {
	citizen *entities.Citizen
	update  *entities.CitizenProfileUpdate
	err     error
}

func (s *profileStub) GetCitizenProfile(context.Context, access.Actor) (*entities.Citizen, error) {
	return s.citizen, s.err
}

func (s *profileStub) UpdateCitizenProfile(_ context.Context, _ access.Actor, input *entities.CitizenProfileUpdate) (*entities.Citizen, error) {
	s.update = input
	if s.err != nil {
		return nil, s.err
	}
	if input.Occupation != nil {
		s.citizen.Occupation = *input.Occupation
	}
	return s.citizen, nil
}

type citizenIssueStub struct {
	listStub[entities.Issue]
	create func(input *entities.CreateIssueInput) (*entities.Issue, error)
	delete func(id uint) error
}

func (s *citizenIssueStub) Create(_ context.Context, _ access.Actor, input *entities.CreateIssueInput) (*entities.Issue, error) {
	return s.create(input)
}

func (s *citizenIssueStub) Delete(_ context.Context, _ access.Actor, id uint) error {
	return s.delete(id)
}

type citizenWelfareStub struct {
	schemes    []*entities.WelfareScheme
	enrolments []*entities.WelfareEnrol
	enrol      func(input *entities.EnrolInput) (*entities.WelfareEnrol, error)
	withdraw   func(id uint) error
}

func (s *citizenWelfareStub) ListSchemes(context.Context, access.Actor) ([]*entities.WelfareScheme, error) {
	return s.schemes, nil
}

func (s *citizenWelfareStub) ListMyEnrolments(context.Context, access.Actor) ([]*entities.WelfareEnrol, error) {
	return s.enrolments, nil
}

func (s *citizenWelfareStub) Enrol(_ context.Context, _ access.Actor, input *entities.EnrolInput) (*entities.WelfareEnrol, error) {
	return s.enrol(input)
}

func (s *citizenWelfareStub) Withdraw(_ context.Context, _ access.Actor, id uint) error {
	return s.withdraw(id)
}

type infrastructureStub struct {
	all        []*entities.Infrastructure
	own        []*entities.Infrastructure
	create     func(input *entities.CreateInfrastructureInput) (*entities.Infrastructure, error)
	updateCost func(id uint, input *entities.UpdateCostInput) (*entities.Infrastructure, error)
}

func (s *infrastructureStub) ListAll(context.Context, access.Actor) ([]*entities.Infrastructure, error) {
	return s.all, nil
}

func (s *infrastructureStub) ListOwn(context.Context, access.Actor) ([]*entities.Infrastructure, error) {
	return s.own, nil
}

func (s *infrastructureStub) Create(_ context.Context, _ access.Actor, input *entities.CreateInfrastructureInput) (*entities.Infrastructure, error) {
	return s.create(input)
}

func (s *infrastructureStub) UpdateCost(_ context.Context, _ access.Actor, id uint, input *entities.UpdateCostInput) (*entities.Infrastructure, error) {
	return s.updateCost(id, input)
}

func TestCitizenHandler_Profile(t *testing.T) {
	profiles := &profileStub{citizen: &entities.Citizen{ID: 1, Username: "alice", Occupation: "Farmer"}}
	h := NewCitizenHandler(CitizenDeps{Profiles: profiles})
	r := newRouter(citizenActor)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)

	w := doJSON(r, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Farmer", decodeBody(t, w)["occupation"])

	w = doJSON(r, http.MethodPut, "/profile", `{"Occupation":"Tailor"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, profiles.update.Occupation)
	assert.Nil(t, profiles.update.Gender)
	assert.Equal(t, "Tailor", decodeBody(t, w)["occupation"])

	w = doJSON(r, http.MethodPut, "/profile", `{"Date_of_death":"yesterday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	profiles.err = domainerrors.NotFound("Citizen profile not found")
	w = doJSON(r, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCitizenHandler_OwnListings(t *testing.T) {
	assets := &listStub[entities.Asset]{items: []*entities.Asset{{ID: 1, Type: "house"}}}
	families := &listStub[entities.Family]{items: []*entities.Family{}}
	documents := &listStub[entities.Document]{err: errors.New("db gone")}
	financial := &listStub[entities.FinancialData]{items: []*entities.FinancialData{{Year: 2023}, {Year: 2024}}}
	h := NewCitizenHandler(CitizenDeps{Assets: assets, Families: families, Documents: documents, Financial: financial})
	r := newRouter(citizenActor)
	r.GET("/assets", h.ListAssets)
	r.GET("/family", h.ListFamilies)
	r.GET("/documents", h.ListDocuments)
	r.GET("/financial-data", h.ListFinancialData)

	w := doJSON(r, http.MethodGet, "/assets", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["assets"], 1)
	assert.Equal(t, citizenActor, assets.actor)

	w = doJSON(r, http.MethodGet, "/family", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["families"])

	w = doJSON(r, http.MethodGet, "/financial-data", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["financial_data"], 2)

	w = doJSON(r, http.MethodGet, "/documents", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db gone")
}

func TestCitizenHandler_Issues(t *testing.T) {
	issues := &citizenIssueStub{
		listStub: listStub[entities.Issue]{items: []*entities.Issue{{ID: 3, Status: entities.IssueStatusPending}}},
		create: func(input *entities.CreateIssueInput) (*entities.Issue, error) {
			return &entities.Issue{ID: 4, Description: input.Description, Status: entities.IssueStatusPending}, nil
		},
		delete: func(id uint) error {
			if id == 5 {
				return domainerrors.Forbidden("only pending issues can be deleted")
			}
			return nil
		},
	}
	h := NewCitizenHandler(CitizenDeps{Issues: issues})
	r := newRouter(citizenActor)
	r.GET("/issues", h.ListIssues)
	r.POST("/issues", h.CreateIssue)
	r.DELETE("/issues/:id", h.DeleteIssue)

	w := doJSON(r, http.MethodGet, "/issues", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["issues"], 1)

	w = doJSON(r, http.MethodPost, "/issues", `{"description":"Broken street light"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	issue := decodeBody(t, w)["issue"].(map[string]interface{})
	assert.Equal(t, "Broken street light", issue["description"])
	assert.Equal(t, "PENDING", issue["status"])

	w = doJSON(r, http.MethodPost, "/issues", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/issues/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Issue deleted successfully", decodeBody(t, w)["message"])

	w = doJSON(r, http.MethodDelete, "/issues/5", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, "/issues/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")

	w = doJSON(r, http.MethodDelete, "/issues/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCitizenHandler_Welfare(t *testing.T) {
	welfare := &citizenWelfareStub{
		schemes:    []*entities.WelfareScheme{{ID: 1, Name: "Drought Relief"}},
		enrolments: []*entities.WelfareEnrol{},
		enrol: func(input *entities.EnrolInput) (*entities.WelfareEnrol, error) {
			if input.SchemeID == 2 {
				return nil, domainerrors.DeadlinePassed("application deadline has passed")
			}
			return &entities.WelfareEnrol{ID: 10, SchemeID: input.SchemeID, Status: entities.EnrolStatusPending}, nil
		},
		withdraw: func(id uint) error {
			if id != 10 {
				return domainerrors.NotFound("Enrollment not found")
			}
			return nil
		},
	}
	infra := &infrastructureStub{all: []*entities.Infrastructure{{ID: 9, Description: "Check dam"}}}
	h := NewCitizenHandler(CitizenDeps{Welfare: welfare, Infrastructure: infra})
	r := newRouter(citizenActor)
	r.GET("/welfare-scheme", h.ListSchemes)
	r.GET("/welfare-enrol", h.ListEnrolments)
	r.POST("/welfare-enrol", h.Enrol)
	r.DELETE("/welfare-enrol/:id", h.Withdraw)
	r.GET("/infrastructure", h.ListInfrastructure)

	w := doJSON(r, http.MethodGet, "/welfare-scheme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["schemes"], 1)

	w = doJSON(r, http.MethodGet, "/welfare-enrol", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w), "enrolments")

	w = doJSON(r, http.MethodPost, "/welfare-enrol", `{"Scheme_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "PENDING", decodeBody(t, w)["enrolment"].(map[string]interface{})["status"])

	w = doJSON(r, http.MethodPost, "/welfare-enrol", `{"Scheme_id":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "deadline")

	w = doJSON(r, http.MethodPost, "/welfare-enrol", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/welfare-enrol/10", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/welfare-enrol/11", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/infrastructure", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["infrastructure"], 1)
}
