package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	domainerrors "panchayat.backend/internal/domain/errors"
)

var (
	validate        = newValidator()
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,20}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidUsername reports whether s is an acceptable username.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// RoleRegistration is the role specific half of a registration payload.
// Exactly one implementation exists per UserRole.
type RoleRegistration interface {
	Role() UserRole
	Validate() error
}

// RegistrationBase holds the fields every registration carries.
type RegistrationBase struct {
	Username      string      `json:"User_name" validate:"required,username"`
	Password      string      `json:"Password" validate:"required,min=8,max=72"`
	Name          string      `json:"Name" validate:"required,max=60"`
	Email         null.String `json:"Email"`
	ContactNumber string      `json:"Contact_number" validate:"required,max=20"`
	UserType      UserRole    `json:"User_type"`
}

// CitizenRegistration carries the CITIZEN profile fields.
type CitizenRegistration struct {
	DateOfBirth              Date   `json:"Date_of_birth"`
	DateOfDeath              *Date  `json:"Date_of_death"`
	Gender                   string `json:"Gender" validate:"required,max=10"`
	Address                  string `json:"Address" validate:"required"`
	EducationalQualification string `json:"Educational_qualification" validate:"required,max=100"`
	Occupation               string `json:"Occupation" validate:"required,max=100"`
}

func (CitizenRegistration) Role() UserRole { return RoleCitizen }

func (r CitizenRegistration) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := validateBirthDate(r.DateOfBirth); err != nil {
		return err
	}
	if r.DateOfDeath != nil && !r.DateOfDeath.IsZero() && r.DateOfBirth.After(*r.DateOfDeath) {
		return invalid("Date_of_death is before Date_of_birth")
	}
	return nil
}

// AdminRegistration carries the ADMIN profile fields.
type AdminRegistration struct {
	Gender      string `json:"Gender" validate:"required,max=10"`
	DateOfBirth Date   `json:"Date_of_birth"`
	Address     string `json:"Address" validate:"required"`
}

func (AdminRegistration) Role() UserRole { return RoleAdmin }

func (r AdminRegistration) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateBirthDate(r.DateOfBirth)
}

// AgencyRegistration carries the GOVERNMENT_AGENCY profile fields.
type AgencyRegistration struct {
	Title string `json:"Role" validate:"required,max=100"`
}

func (AgencyRegistration) Role() UserRole { return RoleGovernmentAgency }

func (r AgencyRegistration) Validate() error { return validateStruct(r) }

// EmployeeRegistration carries the PANCHAYAT_EMPLOYEE profile fields.
type EmployeeRegistration struct {
	Title string `json:"Role" validate:"required,max=100"`
}

func (EmployeeRegistration) Role() UserRole { return RolePanchayatEmployee }

func (r EmployeeRegistration) Validate() error { return validateStruct(r) }

// Registration is a decoded registration request.
type Registration struct {
	RegistrationBase
	Profile RoleRegistration
}

// Validate checks the shared fields and the role variant.
func (r *Registration) Validate() error {
	if r.Profile == nil {
		return invalid("Invalid user type provided")
	}
	if r.Profile.Role() != r.UserType {
		return invalid("User_type does not match the profile fields")
	}
	r.Username = strings.TrimSpace(r.Username)
	if err := validateStruct(r.RegistrationBase); err != nil {
		return err
	}
	if r.Email.Valid {
		if err := validate.Var(r.Email.String, "email"); err != nil {
			return invalid("Email is not a valid address")
		}
	}
	return r.Profile.Validate()
}

// DecodeRegistration reads the User_type tag first and then decodes the
// payload into the matching variant.
func DecodeRegistration(data []byte) (*Registration, error) {
	var base RegistrationBase
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, invalid("malformed registration payload")
	}

	var profile RoleRegistration
	switch base.UserType {
	case RoleCitizen:
		p := CitizenRegistration{}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, invalid("malformed citizen fields")
		}
		profile = p
	case RoleAdmin:
		p := AdminRegistration{}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, invalid("malformed admin fields")
		}
		profile = p
	case RoleGovernmentAgency:
		p := AgencyRegistration{}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, invalid("malformed agency fields")
		}
		profile = p
	case RolePanchayatEmployee:
		p := EmployeeRegistration{}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, invalid("malformed employee fields")
		}
		profile = p
	default:
		return nil, invalid("Invalid user type provided")
	}

	reg := &Registration{RegistrationBase: base, Profile: profile}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func validateBirthDate(d Date) error {
	if d.IsZero() {
		return invalid("Date_of_birth is required")
	}
	if d.After(NewDate(time.Now())) {
		return invalid("Date_of_birth is in the future")
	}
	return nil
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalid("%s failed on %s", fe.Field(), fe.Tag())
	}
	return invalid("%s", err.Error())
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domainerrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}
