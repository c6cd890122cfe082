package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Asset struct {
	ID               uint              `gorm:"primaryKey"`
	CitizenID        uint              `gorm:"not null;index"`
	Citizen          Citizen           `gorm:"constraint:OnDelete:CASCADE"`
	Type             string            `gorm:"type:varchar(50);not null"`
	Valuation        string            `gorm:"type:varchar(50);not null"`
	AgriculturalLand *AgriculturalLand `gorm:"constraint:OnDelete:CASCADE"`
}

type AgriculturalLand struct {
	ID             uint    `gorm:"primaryKey"`
	AssetID        uint    `gorm:"not null;uniqueIndex"`
	Year           int     `gorm:"not null"`
	Season         string  `gorm:"type:varchar(20);not null"`
	CropType       string  `gorm:"type:varchar(30);not null"`
	AreaCultivated float64 `gorm:"not null"`
	Yield          float64 `gorm:"not null"`
}

type Family struct {
	ID            uint           `gorm:"primaryKey"`
	HeadCitizenID uint           `gorm:"not null;index"`
	Head          Citizen        `gorm:"foreignKey:HeadCitizenID;constraint:OnDelete:CASCADE"`
	Members       []FamilyMember `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
}

type FamilyMember struct {
	ID              uint    `gorm:"primaryKey"`
	FamilyID        uint    `gorm:"not null;uniqueIndex:idx_family_member"`
	MemberCitizenID uint    `gorm:"not null;uniqueIndex:idx_family_member;index"`
	Member          Citizen `gorm:"foreignKey:MemberCitizenID;constraint:OnDelete:CASCADE"`
	Relationship    string  `gorm:"type:varchar(30);not null"`
}

type Issue struct {
	ID          uint      `gorm:"primaryKey"`
	CitizenID   uint      `gorm:"not null;index"`
	Citizen     Citizen   `gorm:"constraint:OnDelete:CASCADE"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Document struct {
	ID        uint    `gorm:"primaryKey"`
	CitizenID uint    `gorm:"not null;index"`
	Citizen   Citizen `gorm:"constraint:OnDelete:CASCADE"`
	Type      string  `gorm:"type:varchar(100);not null"`
	PDFData   []byte  `gorm:"not null"`
	CreatedAt time.Time
}

type FinancialData struct {
	ID            uint      `gorm:"primaryKey"`
	CitizenID     uint      `gorm:"not null;uniqueIndex:idx_financial_citizen_year"`
	Citizen       Citizen   `gorm:"constraint:OnDelete:CASCADE"`
	Year          int       `gorm:"not null;uniqueIndex:idx_financial_citizen_year"`
	AnnualIncome  float64   `gorm:"not null"`
	IncomeSource  string    `gorm:"type:varchar(100);not null"`
	TaxPaid       float64   `gorm:"not null"`
	TaxLiability  float64   `gorm:"not null"`
	DebtLiability float64   `gorm:"not null"`
	CreditScore   null.Int  `gorm:"type:integer"`
	LastUpdated   time.Time `gorm:"not null"`
}

func (FinancialData) TableName() string {
	return "financial_data"
}
