package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpChallengeModel is the GORM-specific struct for the 'otp_challenges'
// table. The composite unique index on (Email, Purpose) keeps a single live
// code per recipient and flow.
type OtpChallengeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_otp_challenges_on_email_purpose"`
	Code      string    `gorm:"type:varchar(6);not null"`
	Purpose   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_otp_challenges_on_email_purpose"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OtpChallengeModel) TableName() string {
	return "otp_challenges"
}
