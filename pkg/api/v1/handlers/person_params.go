// Package handlers provides HTTP request handling
package handlers

import (
	"fmt"
	"net/mail"
	"strings"
)

// CreatePersonParams defines the parameters for creating a person
type CreatePersonParams struct {
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName,omitempty"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Licenses    []uint   `json:"licenses,omitempty"`
}

// Validate validates the parameters for creating a person
func (p CreatePersonParams) Validate() error {
	if len(p.Emails) == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgPersonEmailRequired))
	}
	for _, email := range p.Emails {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%s", strings.ToLower(ErrMsgInvalidPersonEmail))
		}
	}
	return nil
}

// UpdatePersonParams defines the parameters for updating a person.
// Email addresses are immutable after creation and are not accepted here.
type UpdatePersonParams struct {
	DisplayName string `json:"displayName,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
}

// PersonListParams defines the query filters for listing people
type PersonListParams struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

// Validate validates the parameters for listing people
func (p PersonListParams) Validate() error {
	if p.Limit < 0 || p.Offset < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativePagination))
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return fmt.Errorf("%s", strings.ToLower(ErrMsgInvalidPersonEmail))
		}
	}
	return nil
}
