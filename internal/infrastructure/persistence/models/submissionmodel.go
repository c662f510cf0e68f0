package models

import (
	"time"

	"atrium/internal/shared/constants"
)

// SubmissionModel is the persistence representation of a form submission.
type SubmissionModel struct {
	ID             uint   `gorm:"primarykey"`
	FormType       string `gorm:"not null;size:20;index:idx_form_type"`
	Name           string `gorm:"not null;size:100;index:idx_email_name,priority:2"`
	Email          string `gorm:"not null;size:255;index:idx_email_name,priority:1"`
	Phone          string `gorm:"size:20"`
	Subject        string `gorm:"size:100"`
	Service        string `gorm:"size:100"`
	Message        string `gorm:"not null;size:500"`
	SubmittedBy    string `gorm:"size:100"`
	SubmittedEmail string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SubmissionModel) TableName() string {
	return constants.TableFormSubmissions
}
