package repositories

import (
	"context"
	"time"

	"panchayat.backend/internal/domain/entities"
)

// AssetRepository defines asset data operations. Agricultural land detail
// rows are written together with their asset.
type AssetRepository interface {
	Create(ctx context.Context, asset *entities.Asset) error
	GetByID(ctx context.Context, id uint) (*entities.Asset, error)
	ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Asset, error)
	Update(ctx context.Context, asset *entities.Asset) error
	Delete(ctx context.Context, id uint) error
	DeleteByCitizen(ctx context.Context, citizenID uint) error
}

// FamilyRepository defines family and membership data operations
type FamilyRepository interface {
	Create(ctx context.Context, family *entities.Family) error
	GetByID(ctx context.Context, id uint) (*entities.Family, error)
	ListHeadedBy(ctx context.Context, citizenID uint) ([]*entities.Family, error)
	ListForMember(ctx context.Context, citizenID uint) ([]*entities.Family, error)
	GetMember(ctx context.Context, familyID, citizenID uint) (*entities.FamilyMember, error)
	AddMember(ctx context.Context, member *entities.FamilyMember) error
	RemoveMember(ctx context.Context, familyID, citizenID uint) error
	Delete(ctx context.Context, id uint) error
	DeleteForCitizen(ctx context.Context, citizenID uint) error
}

// IssueRepository defines issue data operations
type IssueRepository interface {
	Create(ctx context.Context, issue *entities.Issue) error
	GetByID(ctx context.Context, id uint) (*entities.Issue, error)
	ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Issue, error)
	List(ctx context.Context, filter entities.IssueFilter, limit, offset int) ([]*entities.Issue, int, error)
	UpdateStatus(ctx context.Context, id uint, status entities.IssueStatus, at time.Time) error
	Delete(ctx context.Context, id uint) error
	DeleteByCitizen(ctx context.Context, citizenID uint) error
}

// DocumentRepository defines document data operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *entities.Document) error
	GetByID(ctx context.Context, id uint) (*entities.Document, error)
	ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.Document, error)
	Delete(ctx context.Context, id uint) error
	DeleteByCitizen(ctx context.Context, citizenID uint) error
}

// FinancialDataRepository defines financial data operations. Create and
// Update return ErrAlreadyExists when the (citizen, year) pair is taken.
type FinancialDataRepository interface {
	Create(ctx context.Context, data *entities.FinancialData) error
	GetByID(ctx context.Context, id uint) (*entities.FinancialData, error)
	GetByCitizenYear(ctx context.Context, citizenID uint, year int) (*entities.FinancialData, error)
	ListByCitizen(ctx context.Context, citizenID uint) ([]*entities.FinancialData, error)
	Update(ctx context.Context, data *entities.FinancialData) error
	Delete(ctx context.Context, id uint) error
	DeleteByCitizen(ctx context.Context, citizenID uint) error
}
