package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactSubmission is a stored contact form submission. The site runs
// log-only by default; rows only appear when a contact store is configured.
type ContactSubmission struct {
	gorm.Model
	FirstName   string
	LastName    string
	Email       string `gorm:"index"`
	Company     string
	ProjectType string
	Message     string `gorm:"type:text"`
	// Raw payload as received, kept for audit alongside the parsed columns.
	Payload datatypes.JSON `gorm:"type:json"`
}
