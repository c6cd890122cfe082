package entities

import "time"

// Activity log actions.
const (
	ActionVerifyUser        = "VERIFY_USER"
	ActionDeleteUser        = "DELETE_USER"
	ActionUpdateProfile     = "UPDATE_PROFILE"
	ActionUpdateIssueStatus = "UPDATE_ISSUE_STATUS"
	ActionDecideEnrolment   = "DECIDE_ENROLMENT"
	ActionUpdateCost        = "UPDATE_INFRASTRUCTURE_COST"
)

// ActivityLog is an append-only audit entry. Usernames are stored as plain
// text so entries outlive the accounts they mention.
type ActivityLog struct {
	ID           uint      `json:"log_id"`
	Time         time.Time `json:"time"`
	AffectedUser string    `json:"affected_user"`
	Actor        string    `json:"actor"`
	Action       string    `json:"action"`
	OldValue     string    `json:"old_value"`
	NewValue     string    `json:"new_value"`
}
