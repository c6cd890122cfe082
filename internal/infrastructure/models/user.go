package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type User struct {
	Username      string      `gorm:"type:varchar(20);primaryKey"`
	Name          string      `gorm:"type:varchar(60);not null"`
	PasswordHash  string      `gorm:"type:varchar(128);not null"`
	Email         null.String `gorm:"type:varchar(128)"`
	ContactNumber string      `gorm:"type:varchar(20);not null"`
	Role          string      `gorm:"type:varchar(30);not null;index"`
	IsVerified    bool        `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// The foreign keys live on the profile tables and cascade from users.
	Citizen  *Citizen           `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Admin    *Admin             `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Agency   *GovernmentAgency  `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Employee *PanchayatEmployee `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

// Role profiles. Each belongs to exactly one user and is removed with it.

type Citizen struct {
	ID                       uint      `gorm:"primaryKey"`
	Username                 string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	DateOfBirth              time.Time `gorm:"type:date;not null"`
	DateOfDeath              null.Time `gorm:"type:date"`
	Gender                   string    `gorm:"type:varchar(10);not null"`
	Address                  string    `gorm:"type:text;not null"`
	EducationalQualification string    `gorm:"type:varchar(100);not null"`
	Occupation               string    `gorm:"type:varchar(100);not null"`
}

type Admin struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Gender      string    `gorm:"type:varchar(10);not null"`
	DateOfBirth time.Time `gorm:"type:date;not null"`
	Address     string    `gorm:"type:text;not null"`
}

type GovernmentAgency struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Role     string `gorm:"type:varchar(100);not null"`
}

type PanchayatEmployee struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Role     string `gorm:"type:varchar(100);not null"`
}

// ActivityLog stores usernames as plain text with no foreign key so entries
// survive account deletion.
type ActivityLog struct {
	ID           uint      `gorm:"primaryKey"`
	Time         time.Time `gorm:"not null;index"`
	AffectedUser string    `gorm:"type:varchar(20);not null;index"`
	Actor        string    `gorm:"type:varchar(20);not null"`
	Action       string    `gorm:"type:varchar(50);not null"`
	OldValue     string    `gorm:"type:text"`
	NewValue     string    `gorm:"type:text"`
}
