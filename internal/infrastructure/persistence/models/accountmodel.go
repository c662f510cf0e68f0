package models

import (
	"time"

	"atrium/internal/shared/constants"
)

// AccountModel is the persistence representation of a registered account.
type AccountModel struct {
	ID                uint    `gorm:"primarykey"`
	Email             string  `gorm:"uniqueIndex;not null;size:255"`
	Name              string  `gorm:"not null;size:100"`
	AvatarURL         *string `gorm:"size:500"`
	Provider          string  `gorm:"size:50"`
	ProviderAccountID string  `gorm:"size:255"`
	EmailVerified     bool    `gorm:"default:false"`
	Role              string  `gorm:"not null;default:user;size:20"`
	Status            string  `gorm:"not null;default:active;size:20"`
	Plan              string  `gorm:"not null;default:free;size:20"`
	LoginCount        uint    `gorm:"default:0"`
	LastLogin         *time.Time
	IPAddress         string  `gorm:"size:45"`
	Device            string  `gorm:"size:255"`
	Location          string  `gorm:"size:255;default:undefined"`
	Bio               *string `gorm:"size:1000"`
	ReferralCode      *string `gorm:"size:50"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}
