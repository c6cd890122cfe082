package entities

import "time"

// IssueStatus is the lifecycle state of a grievance.
type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "PENDING"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusResolved   IssueStatus = "RESOLVED"
	IssueStatusRejected   IssueStatus = "REJECTED"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueStatusPending, IssueStatusInProgress, IssueStatusResolved, IssueStatusRejected:
		return true
	}
	return false
}

// Issue is a grievance raised by a citizen.
type Issue struct {
	ID          uint        `json:"issue_id"`
	CitizenID   uint        `json:"citizen_id"`
	Description string      `json:"description"`
	Status      IssueStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IssueFilter narrows employee issue listings.
type IssueFilter struct {
	Status IssueStatus
}

// CreateIssueInput represents input for raising an issue.
type CreateIssueInput struct {
	Description string `json:"description" binding:"required,max=2000"`
}

// UpdateIssueStatusInput represents input for moving an issue to a new status.
type UpdateIssueStatusInput struct {
	Status IssueStatus `json:"status" binding:"required"`
}
