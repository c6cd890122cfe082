package repositories

import (
	"context"

	"panchayat.backend/internal/domain/entities"
)

// WelfareSchemeRepository defines welfare scheme data operations
type WelfareSchemeRepository interface {
	Create(ctx context.Context, scheme *entities.WelfareScheme) error
	GetByID(ctx context.Context, id uint) (*entities.WelfareScheme, error)
	List(ctx context.Context) ([]*entities.WelfareScheme, error)
	ListByAgency(ctx context.Context, agencyID uint) ([]*entities.WelfareScheme, error)
	Delete(ctx context.Context, id uint) error
	DeleteByAgency(ctx context.Context, agencyID uint) error
}

// WelfareEnrolRepository defines enrolment data operations. Create returns
// ErrAlreadyExists when the citizen is already enrolled in the scheme.
type WelfareEnrolRepository interface {
	Create(ctx context.Context, enrol *entities.WelfareEnrol) error
	GetByID(ctx context.Context, id uint) (*entities.WelfareEnrol, error)
	ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.WelfareEnrol, error)
	List(ctx context.Context, filter entities.EnrolFilter) ([]*entities.WelfareEnrol, error)
	CountByScheme(ctx context.Context, schemeID uint) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status entities.EnrolStatus) error
	Delete(ctx context.Context, id uint) error
	DeleteByCitizen(ctx context.Context, citizenID uint) error
	DeleteByAgency(ctx context.Context, agencyID uint) error
}

// InfrastructureRepository defines infrastructure project data operations
type InfrastructureRepository interface {
	Create(ctx context.Context, infra *entities.Infrastructure) error
	GetByID(ctx context.Context, id uint) (*entities.Infrastructure, error)
	List(ctx context.Context) ([]*entities.Infrastructure, error)
	ListByAgency(ctx context.Context, agencyID uint) ([]*entities.Infrastructure, error)
	UpdateActualCost(ctx context.Context, id uint, cost float64) error
	DeleteByAgency(ctx context.Context, agencyID uint) error
}

// EnvironmentalDataRepository defines yearly environmental data operations
type EnvironmentalDataRepository interface {
	Create(ctx context.Context, data *entities.EnvironmentalData) error
	GetByYear(ctx context.Context, year int) (*entities.EnvironmentalData, error)
	List(ctx context.Context) ([]*entities.EnvironmentalData, error)
	Update(ctx context.Context, data *entities.EnvironmentalData) error
	Delete(ctx context.Context, year int) error
}
