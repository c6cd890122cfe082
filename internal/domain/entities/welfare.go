package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// EnrolStatus is the state of a welfare enrolment.
type EnrolStatus string

const (
	EnrolStatusPending  EnrolStatus = "PENDING"
	EnrolStatusApproved EnrolStatus = "APPROVED"
	EnrolStatusRejected EnrolStatus = "REJECTED"
)

// WelfareScheme is an assistance programme authored by an agency.
type WelfareScheme struct {
	ID                  uint      `json:"scheme_id"`
	AgencyID            uint      `json:"agency_id"`
	Name                string    `json:"scheme_name"`
	Description         string    `json:"description"`
	ApplicationDeadline null.Time `json:"application_deadline"`
	CreatedAt           time.Time `json:"created_at"`
}

// DeadlinePassed reports whether applications closed before the calendar day of now.
func (s *WelfareScheme) DeadlinePassed(now time.Time) bool {
	if !s.ApplicationDeadline.Valid {
		return false
	}
	return NewDate(now).After(NewDate(s.ApplicationDeadline.Time))
}

// WelfareEnrol is a citizen's application to a scheme. A citizen holds at
// most one per scheme.
type WelfareEnrol struct {
	ID        uint        `json:"enrol_id"`
	CitizenID uint        `json:"citizen_id"`
	SchemeID  uint        `json:"scheme_id"`
	Status    EnrolStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// EnrolFilter narrows employee enrolment listings.
type EnrolFilter struct {
	SchemeID uint
	Status   EnrolStatus
}

// CreateSchemeInput represents input for authoring a scheme.
type CreateSchemeInput struct {
	Name                string `json:"Scheme_name" binding:"required,max=100"`
	Description         string `json:"Description"`
	ApplicationDeadline *Date  `json:"Application_deadline"`
}

// EnrolInput represents a citizen's request to join a scheme.
type EnrolInput struct {
	SchemeID uint `json:"Scheme_id" binding:"required"`
}

// DecideEnrolInput represents an employee decision on an enrolment.
type DecideEnrolInput struct {
	Status EnrolStatus `json:"status" binding:"required"`
}
