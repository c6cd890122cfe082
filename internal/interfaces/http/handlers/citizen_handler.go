package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/interfaces/http/response"
)

type citizenProfileService interface {
	GetCitizenProfile(ctx context.Context, actor access.Actor) (*entities.Citizen, error)
	UpdateCitizenProfile(ctx context.Context, actor access.Actor, input *entities.CitizenProfileUpdate) (*entities.Citizen, error)
}

type citizenIssueService interface {
	ListMine(ctx context.Context, actor access.Actor) ([]*entities.Issue, error)
	Create(ctx context.Context, actor access.Actor, input *entities.CreateIssueInput) (*entities.Issue, error)
	Delete(ctx context.Context, actor access.Actor, id uint) error
}

type citizenWelfareService interface {
	ListSchemes(ctx context.Context, actor access.Actor) ([]*entities.WelfareScheme, error)
	ListMyEnrolments(ctx context.Context, actor access.Actor) ([]*entities.WelfareEnrol, error)
	Enrol(ctx context.Context, actor access.Actor, input *entities.EnrolInput) (*entities.WelfareEnrol, error)
	Withdraw(ctx context.Context, actor access.Actor, id uint) error
}

type infrastructureLister interface {
	ListAll(ctx context.Context, actor access.Actor) ([]*entities.Infrastructure, error)
}

// CitizenDeps groups the services behind the citizen endpoints.
type CitizenDeps struct {
	Profiles       citizenProfileService
	Assets         ownLister[entities.Asset]
	Families       ownLister[entities.Family]
	Issues         citizenIssueService
	Documents      ownLister[entities.Document]
	Financial      ownLister[entities.FinancialData]
	Welfare        citizenWelfareService
	Infrastructure infrastructureLister
}

// CitizenHandler serves the citizen self-service endpoints
type CitizenHandler struct {
	deps CitizenDeps
}

// NewCitizenHandler creates a new citizen handler
func NewCitizenHandler(deps CitizenDeps) *CitizenHandler {
	return &CitizenHandler{deps: deps}
}

// GetProfile GET /api/v1/citizen/profile
func (h *CitizenHandler) GetProfile(c *gin.Context) {
	citizen, err := h.deps.Profiles.GetCitizenProfile(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, citizen)
}

// UpdateProfile PUT /api/v1/citizen/profile
func (h *CitizenHandler) UpdateProfile(c *gin.Context) {
	var input entities.CitizenProfileUpdate
	if !bindJSON(c, &input) {
		return
	}
	citizen, err := h.deps.Profiles.UpdateCitizenProfile(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, citizen)
}

// ListAssets GET /api/v1/citizen/assets
func (h *CitizenHandler) ListAssets(c *gin.Context) {
	listOwn[entities.Asset](c, h.deps.Assets, "assets")
}

// ListFamilies GET /api/v1/citizen/family
func (h *CitizenHandler) ListFamilies(c *gin.Context) {
	listOwn[entities.Family](c, h.deps.Families, "families")
}

// ListDocuments GET /api/v1/citizen/documents
func (h *CitizenHandler) ListDocuments(c *gin.Context) {
	listOwn[entities.Document](c, h.deps.Documents, "documents")
}

// ListFinancialData GET /api/v1/citizen/financial-data
func (h *CitizenHandler) ListFinancialData(c *gin.Context) {
	listOwn[entities.FinancialData](c, h.deps.Financial, "financial_data")
}

// ListIssues GET /api/v1/citizen/issues
func (h *CitizenHandler) ListIssues(c *gin.Context) {
	listOwn[entities.Issue](c, h.deps.Issues, "issues")
}

// CreateIssue POST /api/v1/citizen/issues
func (h *CitizenHandler) CreateIssue(c *gin.Context) {
	var input entities.CreateIssueInput
	if !bindJSON(c, &input) {
		return
	}
	issue, err := h.deps.Issues.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Issue created successfully",
		"issue":   issue,
	})
}

// DeleteIssue DELETE /api/v1/citizen/issues/:id
func (h *CitizenHandler) DeleteIssue(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.deps.Issues.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Issue deleted successfully")
}

// ListSchemes GET /api/v1/citizen/welfare-scheme
func (h *CitizenHandler) ListSchemes(c *gin.Context) {
	schemes, err := h.deps.Welfare.ListSchemes(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schemes": schemes})
}

// ListEnrolments GET /api/v1/citizen/welfare-enrol
func (h *CitizenHandler) ListEnrolments(c *gin.Context) {
	enrolments, err := h.deps.Welfare.ListMyEnrolments(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrolments": enrolments})
}

// Enrol POST /api/v1/citizen/welfare-enrol
func (h *CitizenHandler) Enrol(c *gin.Context) {
	var input entities.EnrolInput
	if !bindJSON(c, &input) {
		return
	}
	enrol, err := h.deps.Welfare.Enrol(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message":   "Enrolled successfully",
		"enrolment": enrol,
	})
}

// Withdraw DELETE /api/v1/citizen/welfare-enrol/:id
func (h *CitizenHandler) Withdraw(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.deps.Welfare.Withdraw(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Enrollment withdrawn successfully")
}

// ListInfrastructure GET /api/v1/citizen/infrastructure
func (h *CitizenHandler) ListInfrastructure(c *gin.Context) {
	projects, err := h.deps.Infrastructure.ListAll(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"infrastructure": projects})
}
