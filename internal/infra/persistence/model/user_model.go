// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Role             string    `gorm:"type:varchar(20);not null;index"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Phone            string    `gorm:"type:varchar(20)"`
	Age              int
	Pincode          string `gorm:"type:varchar(10)"`
	BloodGroup       string `gorm:"type:varchar(3);index"`
	Agree            bool   `gorm:"not null;default:false"`
	LastDonationDate *time.Time
	Eligible         bool   `gorm:"not null;default:true"`
	IsVerified       bool   `gorm:"not null;default:false"`
	ApprovalStatus   string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
