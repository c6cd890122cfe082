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

type agencySchemeService interface {
	ListOwnSchemes(ctx context.Context, actor access.Actor) ([]*entities.WelfareScheme, error)
	CreateScheme(ctx context.Context, actor access.Actor, input *entities.CreateSchemeInput) (*entities.WelfareScheme, error)
	DeleteScheme(ctx context.Context, actor access.Actor, id uint) error
}

type agencyInfrastructureService interface {
	ListOwn(ctx context.Context, actor access.Actor) ([]*entities.Infrastructure, error)
	Create(ctx context.Context, actor access.Actor, input *entities.CreateInfrastructureInput) (*entities.Infrastructure, error)
}

// AgencyHandler serves government agency endpoints
type AgencyHandler struct {
	schemes        agencySchemeService
	infrastructure agencyInfrastructureService
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(schemes agencySchemeService, infrastructure agencyInfrastructureService) *AgencyHandler {
	return &AgencyHandler{schemes: schemes, infrastructure: infrastructure}
}

// ListSchemes GET /api/v1/government-agency/welfare-scheme
func (h *AgencyHandler) ListSchemes(c *gin.Context) {
	schemes, err := h.schemes.ListOwnSchemes(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schemes": schemes})
}

// CreateScheme POST /api/v1/government-agency/welfare-scheme
func (h *AgencyHandler) CreateScheme(c *gin.Context) {
	var input entities.CreateSchemeInput
	if !bindJSON(c, &input) {
		return
	}
	scheme, err := h.schemes.CreateScheme(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Welfare scheme created successfully",
		"scheme":  scheme,
	})
}

// DeleteScheme DELETE /api/v1/government-agency/welfare-scheme/:id
func (h *AgencyHandler) DeleteScheme(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.schemes.DeleteScheme(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Welfare scheme deleted successfully")
}

// ListInfrastructure GET /api/v1/government-agency/infrastructure
func (h *AgencyHandler) ListInfrastructure(c *gin.Context) {
	projects, err := h.infrastructure.ListOwn(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"infrastructure": projects})
}

// CreateInfrastructure POST /api/v1/government-agency/infrastructure
func (h *AgencyHandler) CreateInfrastructure(c *gin.Context) {
	var input entities.CreateInfrastructureInput
	if !bindJSON(c, &input) {
		return
	}
	project, err := h.infrastructure.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message":        "Infrastructure project created successfully",
		"infrastructure": project,
	})
}
