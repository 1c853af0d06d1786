package models

import (
	"fmt"
	"net/mail"

	"gorm.io/gorm"
)

// Person field name constants for database queries
const (
	PersonEmailsColumn      = "emails"
	PersonDisplayNameColumn = "display_name"
)

// Person represents an account on the messaging platform. The ID is assigned
// by the server at creation and never changes afterwards; email addresses are
// immutable after creation as well.
type Person struct {
	gorm.Model
	Emails      []string `json:"emails" gorm:"serializer:json;not null"`
	DisplayName string   `json:"displayName" gorm:"index"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Licenses    []uint   `json:"licenses" gorm:"serializer:json"`
}

// Validate checks if the Person model is valid before saving.
func (p *Person) Validate() error {
	if len(p.Emails) == 0 {
		return fmt.Errorf("person must have at least one email address")
	}
	for _, email := range p.Emails {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("invalid email address %q: %w", email, err)
		}
	}
	return nil
}

// BeforeCreate GORM hook to run validation.
func (p *Person) BeforeCreate(_ *gorm.DB) error {
	return p.Validate()
}

// HasEmail reports whether the person owns the given email address.
func (p *Person) HasEmail(email string) bool {
	for _, e := range p.Emails {
		if e == email {
			return true
		}
	}
	return false
}
