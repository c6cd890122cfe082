package repositories

import (
	"context"

	"panchayat.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int, error)
	SetVerified(ctx context.Context, username string, verified bool) error
	Delete(ctx context.Context, username string) error
}

// ProfileRepository defines role profile data operations. Every profile is
// keyed by an integer id and linked 1:1 to a username.
type ProfileRepository interface {
	CreateCitizen(ctx context.Context, citizen *entities.Citizen) error
	CreateAdmin(ctx context.Context, admin *entities.Admin) error
	CreateAgency(ctx context.Context, agency *entities.GovernmentAgency) error
	CreateEmployee(ctx context.Context, employee *entities.PanchayatEmployee) error

	GetCitizenByID(ctx context.Context, id uint) (*entities.Citizen, error)
	GetCitizenByUsername(ctx context.Context, username string) (*entities.Citizen, error)
	GetAdminByUsername(ctx context.Context, username string) (*entities.Admin, error)
	GetAgencyByID(ctx context.Context, id uint) (*entities.GovernmentAgency, error)
	GetAgencyByUsername(ctx context.Context, username string) (*entities.GovernmentAgency, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*entities.PanchayatEmployee, error)

	UpdateCitizen(ctx context.Context, citizen *entities.Citizen) error
	DeleteProfile(ctx context.Context, role entities.UserRole, username string) error
}

// ActivityLogRepository defines audit trail operations
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *entities.ActivityLog) error
	ListByUser(ctx context.Context, username string, limit, offset int) ([]*entities.ActivityLog, int, error)
}
