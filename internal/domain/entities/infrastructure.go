package entities

// Infrastructure is a public works project authored by an agency.
type Infrastructure struct {
	ID          uint    `json:"infra_id"`
	AgencyID    uint    `json:"agency_id"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Funding     float64 `json:"funding"`
	ActualCost  float64 `json:"actual_cost"`
}

// CreateInfrastructureInput represents input for a new project.
type CreateInfrastructureInput struct {
	Description string  `json:"Description" binding:"required"`
	Location    string  `json:"Location" binding:"required"`
	Funding     float64 `json:"Funding" binding:"gte=0"`
}

// UpdateCostInput carries the spend recorded against a project.
type UpdateCostInput struct {
	ActualCost *float64 `json:"Actual_cost" binding:"required"`
}
