package models

import (
	"fmt"

	"gorm.io/gorm"
)

// LicenseNameColumn is the column used for license lookups by name
const LicenseNameColumn = "name"

// Default license names seeded into the catalog
const (
	// LicenseMessaging is the entitlement assigned to every new account
	LicenseMessaging = "Messaging"
	// LicenseMeetings grants access to scheduled meetings
	LicenseMeetings = "Meetings"
)

// License represents an entitlement that can be assigned to a Person,
// granting access to a platform feature.
type License struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null;unique"`
	TotalUnits    int    `json:"totalUnits" gorm:"not null"`
	ConsumedUnits int    `json:"consumedUnits"`
}

// Validate checks if the License model is valid before saving.
func (l *License) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("license name cannot be empty")
	}
	if l.TotalUnits < 0 {
		return fmt.Errorf("license total units cannot be negative")
	}
	if l.ConsumedUnits < 0 || l.ConsumedUnits > l.TotalUnits {
		return fmt.Errorf("license consumed units must be between 0 and %d", l.TotalUnits)
	}
	return nil
}

// BeforeSave GORM hook to run validation.
func (l *License) BeforeSave(_ *gorm.DB) error {
	return l.Validate()
}
