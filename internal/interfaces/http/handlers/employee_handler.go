package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/interfaces/http/response"
	"panchayat.backend/internal/usecases"
)

type employeeAssetService interface {
	ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*entities.Asset, error)
	Create(ctx context.Context, actor access.Actor, input *entities.CreateAssetInput) (*entities.Asset, error)
	Update(ctx context.Context, actor access.Actor, id uint, input *entities.UpdateAssetInput) (*entities.Asset, error)
	Delete(ctx context.Context, actor access.Actor, id uint) error
}

type employeeFamilyService interface {
	ListHeadedBy(ctx context.Context, actor access.Actor, username string) ([]*entities.Family, error)
	Create(ctx context.Context, actor access.Actor, input *entities.CreateFamilyInput) (*entities.Family, error)
	AddMember(ctx context.Context, actor access.Actor, familyID uint, input *entities.AddFamilyMemberInput) (*entities.FamilyMember, bool, error)
	RemoveMember(ctx context.Context, actor access.Actor, familyID uint, username string) error
	Delete(ctx context.Context, actor access.Actor, familyID uint) error
}

type employeeIssueService interface {
	List(ctx context.Context, actor access.Actor, filter entities.IssueFilter, page, limit int) (*usecases.IssuePage, error)
	UpdateStatus(ctx context.Context, actor access.Actor, id uint, input *entities.UpdateIssueStatusInput) (*entities.Issue, error)
}

type employeeDocumentService interface {
	ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*entities.Document, error)
	Upload(ctx context.Context, actor access.Actor, input *entities.UploadDocumentInput) (*entities.Document, error)
	Delete(ctx context.Context, actor access.Actor, id uint) error
}

type employeeFinancialService interface {
	ListForCitizen(ctx context.Context, actor access.Actor, username string) ([]*entities.FinancialData, error)
	Create(ctx context.Context, actor access.Actor, input *entities.CreateFinancialDataInput) (*entities.FinancialData, error)
	Update(ctx context.Context, actor access.Actor, id uint, input *entities.FinancialDataInput) (*entities.FinancialData, error)
	Delete(ctx context.Context, actor access.Actor, id uint) error
}

type employeeEnrolmentService interface {
	ListEnrolments(ctx context.Context, actor access.Actor, filter entities.EnrolFilter) ([]*entities.WelfareEnrol, error)
	DecideEnrolment(ctx context.Context, actor access.Actor, id uint, input *entities.DecideEnrolInput) (*entities.WelfareEnrol, bool, error)
}

type employeeInfrastructureService interface {
	ListAll(ctx context.Context, actor access.Actor) ([]*entities.Infrastructure, error)
	UpdateCost(ctx context.Context, actor access.Actor, id uint, input *entities.UpdateCostInput) (*entities.Infrastructure, error)
}

type environmentService interface {
	List(ctx context.Context, actor access.Actor) ([]*entities.EnvironmentalData, error)
	Get(ctx context.Context, actor access.Actor, year int) (*entities.EnvironmentalData, error)
	Create(ctx context.Context, actor access.Actor, input *entities.EnvironmentalDataInput) (*entities.EnvironmentalData, error)
	Update(ctx context.Context, actor access.Actor, year int, input *entities.EnvironmentalDataInput) (*entities.EnvironmentalData, error)
	Delete(ctx context.Context, actor access.Actor, year int) error
}

// EmployeeDeps groups the services behind the panchayat employee endpoints.
type EmployeeDeps struct {
	Assets         employeeAssetService
	Families       employeeFamilyService
	Issues         employeeIssueService
	Documents      employeeDocumentService
	Financial      employeeFinancialService
	Enrolments     employeeEnrolmentService
	Infrastructure employeeInfrastructureService
	Environment    environmentService
}

// EmployeeHandler serves the panchayat employee endpoints
type EmployeeHandler struct {
	deps EmployeeDeps
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(deps EmployeeDeps) *EmployeeHandler {
	return &EmployeeHandler{deps: deps}
}

// ListAssets GET /api/v1/panchayat-employee/assets/:username
func (h *EmployeeHandler) ListAssets(c *gin.Context) {
	listForCitizen[entities.Asset](c, h.deps.Assets, "assets")
}

// CreateAsset POST /api/v1/panchayat-employee/assets
func (h *EmployeeHandler) CreateAsset(c *gin.Context) {
	var input entities.CreateAssetInput
	if !bindJSON(c, &input) {
		return
	}
	asset, err := h.deps.Assets.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Asset created successfully", "asset": asset})
}

// UpdateAsset PUT /api/v1/panchayat-employee/assets/:id
func (h *EmployeeHandler) UpdateAsset(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdateAssetInput
	if !bindJSON(c, &input) {
		return
	}
	asset, err := h.deps.Assets.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Asset updated successfully", "asset": asset})
}

// DeleteAsset DELETE /api/v1/panchayat-employee/assets/:id
func (h *EmployeeHandler) DeleteAsset(c *gin.Context) {
	h.deleteByID(c, h.deps.Assets.Delete, "Asset deleted successfully")
}

// CreateFamily POST /api/v1/panchayat-employee/family
func (h *EmployeeHandler) CreateFamily(c *gin.Context) {
	var input entities.CreateFamilyInput
	if !bindJSON(c, &input) {
		return
	}
	family, err := h.deps.Families.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Family created successfully", "family": family})
}

// ListFamilies GET /api/v1/panchayat-employee/family/:username
func (h *EmployeeHandler) ListFamilies(c *gin.Context) {
	families, err := h.deps.Families.ListHeadedBy(c.Request.Context(), middleware.GetActor(c), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"families": families})
}

// AddFamilyMember answers 201 for a new membership and 200 when the citizen
// was already a member.
// POST /api/v1/panchayat-employee/family/:id/members
func (h *EmployeeHandler) AddFamilyMember(c *gin.Context) {
	familyID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.AddFamilyMemberInput
	if !bindJSON(c, &input) {
		return
	}
	member, created, err := h.deps.Families.AddMember(c.Request.Context(), middleware.GetActor(c), familyID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.Success(c, http.StatusOK, gin.H{"message": "Citizen is already a member of this family", "member": member})
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Family member added successfully", "member": member})
}

// RemoveFamilyMember DELETE /api/v1/panchayat-employee/family/:id/members/:username
func (h *EmployeeHandler) RemoveFamilyMember(c *gin.Context) {
	familyID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.deps.Families.RemoveMember(c.Request.Context(), middleware.GetActor(c), familyID, c.Param("username")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Family member removed successfully")
}

// DeleteFamily DELETE /api/v1/panchayat-employee/family/:id
func (h *EmployeeHandler) DeleteFamily(c *gin.Context) {
	h.deleteByID(c, h.deps.Families.Delete, "Family deleted successfully")
}

// ListIssues GET /api/v1/panchayat-employee/issues?status=&page=&limit=
func (h *EmployeeHandler) ListIssues(c *gin.Context) {
	page, limit, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := entities.IssueFilter{Status: entities.IssueStatus(strings.ToUpper(c.Query("status")))}
	issues, err := h.deps.Issues.List(c.Request.Context(), middleware.GetActor(c), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"issues": issues.Items, "meta": issues.Meta})
}

// UpdateIssueStatus PUT /api/v1/panchayat-employee/issues/:id/status
func (h *EmployeeHandler) UpdateIssueStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdateIssueStatusInput
	if !bindJSON(c, &input) {
		return
	}
	issue, err := h.deps.Issues.UpdateStatus(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Issue status updated successfully", "issue": issue})
}

// ListDocuments GET /api/v1/panchayat-employee/documents/:username
func (h *EmployeeHandler) ListDocuments(c *gin.Context) {
	listForCitizen[entities.Document](c, h.deps.Documents, "documents")
}

// UploadDocument POST /api/v1/panchayat-employee/documents
func (h *EmployeeHandler) UploadDocument(c *gin.Context) {
	var input entities.UploadDocumentInput
	if !bindJSON(c, &input) {
		return
	}
	doc, err := h.deps.Documents.Upload(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Document uploaded successfully", "document": doc})
}

// DeleteDocument DELETE /api/v1/panchayat-employee/documents/:id
func (h *EmployeeHandler) DeleteDocument(c *gin.Context) {
	h.deleteByID(c, h.deps.Documents.Delete, "Document deleted successfully")
}

// ListFinancialData GET /api/v1/panchayat-employee/financial-data/:username
func (h *EmployeeHandler) ListFinancialData(c *gin.Context) {
	listForCitizen[entities.FinancialData](c, h.deps.Financial, "financial_data")
}

// CreateFinancialData POST /api/v1/panchayat-employee/financial-data
func (h *EmployeeHandler) CreateFinancialData(c *gin.Context) {
	var input entities.CreateFinancialDataInput
	if !bindJSON(c, &input) {
		return
	}
	data, err := h.deps.Financial.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Financial data created successfully", "financial_data": data})
}

// UpdateFinancialData PUT /api/v1/panchayat-employee/financial-data/:id
func (h *EmployeeHandler) UpdateFinancialData(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.FinancialDataInput
	if !bindJSON(c, &input) {
		return
	}
	data, err := h.deps.Financial.Update(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Financial data updated successfully", "financial_data": data})
}

// DeleteFinancialData DELETE /api/v1/panchayat-employee/financial-data/:id
func (h *EmployeeHandler) DeleteFinancialData(c *gin.Context) {
	h.deleteByID(c, h.deps.Financial.Delete, "Financial data deleted successfully")
}

// ListEnrolments GET /api/v1/panchayat-employee/welfare-enrol?scheme_id=&status=
func (h *EmployeeHandler) ListEnrolments(c *gin.Context) {
	filter := entities.EnrolFilter{Status: entities.EnrolStatus(strings.ToUpper(c.Query("status")))}
	if v := c.Query("scheme_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("scheme_id must be a number"))
			return
		}
		filter.SchemeID = uint(id)
	}
	enrolments, err := h.deps.Enrolments.ListEnrolments(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrolments": enrolments})
}

// DecideEnrolment PUT /api/v1/panchayat-employee/welfare-enrol/:id
func (h *EmployeeHandler) DecideEnrolment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.DecideEnrolInput
	if !bindJSON(c, &input) {
		return
	}
	enrol, removed, err := h.deps.Enrolments.DecideEnrolment(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if removed {
		response.Message(c, http.StatusOK, "Enrollment rejected and removed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Enrollment approved", "enrolment": enrol})
}

// ListInfrastructure GET /api/v1/panchayat-employee/infrastructure
func (h *EmployeeHandler) ListInfrastructure(c *gin.Context) {
	projects, err := h.deps.Infrastructure.ListAll(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"infrastructure": projects})
}

// UpdateInfrastructureCost PUT /api/v1/panchayat-employee/infrastructure/:id/cost
func (h *EmployeeHandler) UpdateInfrastructureCost(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.UpdateCostInput
	if !bindJSON(c, &input) {
		return
	}
	project, err := h.deps.Infrastructure.UpdateCost(c.Request.Context(), middleware.GetActor(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Actual cost updated successfully", "infrastructure": project})
}

// ListEnvironmentalData GET /api/v1/panchayat-employee/environmental-data
func (h *EmployeeHandler) ListEnvironmentalData(c *gin.Context) {
	rows, err := h.deps.Environment.List(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"environmental_data": rows})
}

// GetEnvironmentalData GET /api/v1/panchayat-employee/environmental-data/:year
func (h *EmployeeHandler) GetEnvironmentalData(c *gin.Context) {
	year, err := parseYear(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.deps.Environment.Get(c.Request.Context(), middleware.GetActor(c), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// CreateEnvironmentalData POST /api/v1/panchayat-employee/environmental-data
func (h *EmployeeHandler) CreateEnvironmentalData(c *gin.Context) {
	var input entities.EnvironmentalDataInput
	if !bindJSON(c, &input) {
		return
	}
	data, err := h.deps.Environment.Create(c.Request.Context(), middleware.GetActor(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Environmental data created successfully", "environmental_data": data})
}

// UpdateEnvironmentalData PUT /api/v1/panchayat-employee/environmental-data/:year
func (h *EmployeeHandler) UpdateEnvironmentalData(c *gin.Context) {
	year, err := parseYear(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.EnvironmentalDataInput
	if !bindJSON(c, &input) {
		return
	}
	data, err := h.deps.Environment.Update(c.Request.Context(), middleware.GetActor(c), year, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Environmental data updated successfully", "environmental_data": data})
}

// DeleteEnvironmentalData DELETE /api/v1/panchayat-employee/environmental-data/:year
func (h *EmployeeHandler) DeleteEnvironmentalData(c *gin.Context) {
	year, err := parseYear(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.deps.Environment.Delete(c.Request.Context(), middleware.GetActor(c), year); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Environmental data deleted successfully")
}

func (h *EmployeeHandler) deleteByID(c *gin.Context, del func(context.Context, access.Actor, uint) error, message string) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := del(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, message)
}
