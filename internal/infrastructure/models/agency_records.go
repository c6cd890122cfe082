package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type WelfareScheme struct {
	ID                  uint             `gorm:"primaryKey"`
	AgencyID            uint             `gorm:"not null;index"`
	Agency              GovernmentAgency `gorm:"constraint:OnDelete:CASCADE"`
	Name                string           `gorm:"type:varchar(100);not null"`
	Description         string           `gorm:"type:text"`
	ApplicationDeadline null.Time        `gorm:"type:date"`
	CreatedAt           time.Time
}

type WelfareEnrol struct {
	ID        uint          `gorm:"primaryKey"`
	CitizenID uint          `gorm:"not null;uniqueIndex:idx_enrol_citizen_scheme"`
	Citizen   Citizen       `gorm:"constraint:OnDelete:CASCADE"`
	SchemeID  uint          `gorm:"not null;uniqueIndex:idx_enrol_citizen_scheme;index"`
	Scheme    WelfareScheme `gorm:"constraint:OnDelete:CASCADE"`
	Status    string        `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WelfareEnrol) TableName() string {
	return "welfare_enrols"
}

type Infrastructure struct {
	ID          uint             `gorm:"primaryKey"`
	AgencyID    uint             `gorm:"not null;index"`
	Agency      GovernmentAgency `gorm:"constraint:OnDelete:CASCADE"`
	Description string           `gorm:"type:text"`
	Location    string           `gorm:"type:text"`
	Funding     float64          `gorm:"not null"`
	ActualCost  float64          `gorm:"not null;default:0"`
}

func (Infrastructure) TableName() string {
	return "infrastructures"
}

type EnvironmentalData struct {
	Year          int          `gorm:"primaryKey;autoIncrement:false"`
	AQI           null.Float64 `gorm:"column:aqi;type:double precision"`
	ForestCover   null.Float64 `gorm:"type:double precision"`
	ODF           null.Float64 `gorm:"column:odf;type:double precision"`
	Afforestation null.Float64 `gorm:"type:double precision"`
	Precipitation null.Float64 `gorm:"type:double precision"`
	WaterQuality  null.Float64 `gorm:"type:double precision"`
}

func (EnvironmentalData) TableName() string {
	return "environmental_data"
}
