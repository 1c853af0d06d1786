package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPersonValidate(t *testing.T) {
	person := &Person{
		Emails:      []string{"someone@example.com"},
		DisplayName: "Someone",
	}
	require.NoError(t, person.Validate())

	person.Emails = nil
	require.Error(t, person.Validate())

	person.Emails = []string{"not-an-email"}
	require.Error(t, person.Validate())
}

func TestPersonHasEmail(t *testing.T) {
	person := &Person{Emails: []string{"a@example.com", "b@example.com"}}

	require.True(t, person.HasEmail("a@example.com"))
	require.True(t, person.HasEmail("b@example.com"))
	require.False(t, person.HasEmail("c@example.com"))
}

func TestLicenseValidate(t *testing.T) {
	license := &License{Name: LicenseMessaging, TotalUnits: 100}
	require.NoError(t, license.Validate())

	license.ConsumedUnits = 101
	require.Error(t, license.Validate())

	license = &License{TotalUnits: 10}
	require.Error(t, license.Validate())
}
