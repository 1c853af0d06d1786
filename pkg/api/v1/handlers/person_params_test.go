package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePersonParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  CreatePersonParams
		wantErr bool
	}{
		{
			name: "valid params",
			params: CreatePersonParams{
				Emails:      []string{"someone@example.com"},
				DisplayName: "Someone",
			},
		},
		{
			name:    "missing emails",
			params:  CreatePersonParams{DisplayName: "Someone"},
			wantErr: true,
		},
		{
			name: "malformed email",
			params: CreatePersonParams{
				Emails: []string{"not an email"},
			},
			wantErr: true,
		},
		{
			name: "one malformed email among valid ones",
			params: CreatePersonParams{
				Emails: []string{"ok@example.com", "broken"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPersonListParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  PersonListParams
		wantErr bool
	}{
		{
			name:   "empty params",
			params: PersonListParams{},
		},
		{
			name:   "email filter",
			params: PersonListParams{Email: "someone@example.com"},
		},
		{
			name:    "malformed email filter",
			params:  PersonListParams{Email: "nope"},
			wantErr: true,
		},
		{
			name:    "negative limit",
			params:  PersonListParams{Limit: -1},
			wantErr: true,
		},
		{
			name:    "negative offset",
			params:  PersonListParams{Offset: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
