package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	RoleCitizen           UserRole = "CITIZEN"
	RoleAdmin             UserRole = "ADMIN"
	RoleGovernmentAgency  UserRole = "GOVERNMENT_AGENCY"
	RolePanchayatEmployee UserRole = "PANCHAYAT_EMPLOYEE"
)

// Valid reports whether r is one of the four known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCitizen, RoleAdmin, RoleGovernmentAgency, RolePanchayatEmployee:
		return true
	}
	return false
}

// User is a login identity. Every user owns exactly one role profile.
type User struct {
	Username      string      `json:"username"`
	Name          string      `json:"name"`
	PasswordHash  string      `json:"-"`
	Email         null.String `json:"email"`
	ContactNumber string      `json:"contact_number"`
	Role          UserRole    `json:"user_type"`
	IsVerified    bool        `json:"is_verified"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Verified null.Bool
	Role     UserRole
}

// LoginInput represents input for user login
type LoginInput struct {
	Username string `json:"User_name" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

// Identity is a user together with the profile matching its role. Exactly one
// profile pointer is set.
type Identity struct {
	User     *User              `json:"user"`
	Citizen  *Citizen           `json:"citizen,omitempty"`
	Admin    *Admin             `json:"admin,omitempty"`
	Agency   *GovernmentAgency  `json:"government_agency,omitempty"`
	Employee *PanchayatEmployee `json:"panchayat_employee,omitempty"`
}

// ProfileID returns the id of the role profile, or 0 when none is loaded.
func (i *Identity) ProfileID() uint {
	switch {
	case i.Citizen != nil:
		return i.Citizen.ID
	case i.Admin != nil:
		return i.Admin.ID
	case i.Agency != nil:
		return i.Agency.ID
	case i.Employee != nil:
		return i.Employee.ID
	}
	return 0
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	*Identity
}
