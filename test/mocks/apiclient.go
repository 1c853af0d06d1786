// Package mocks provides mock implementations for the roster API used in testing
package mocks

import (
	"context"
	"fmt"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/pkg/api/v1/client"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
)

// MockAPIClient implements client.Client against an in-memory store. It
// counts the requests it receives and supports failure injection, so tests
// can assert how many calls a helper issued and how it behaves when the
// remote side misbehaves.
type MockAPIClient struct {
	nextID   uint
	people   map[uint]models.Person
	licenses map[uint]models.License

	// Call counters
	CreateCalls int
	DeleteCalls int
	ListCalls   int

	// DuplicateEmails lists addresses for which ListPeople returns two
	// accounts, simulating a broken deployment
	DuplicateEmails map[string]bool

	// FailDeleteIDs lists person IDs whose deletion fails
	FailDeleteIDs map[uint]bool
}

var _ client.Client = &MockAPIClient{}

// NewMockAPIClient creates a mock client with a seeded license catalog
func NewMockAPIClient() *MockAPIClient {
	m := &MockAPIClient{
		nextID:          1,
		people:          make(map[uint]models.Person),
		licenses:        make(map[uint]models.License),
		DuplicateEmails: make(map[string]bool),
		FailDeleteIDs:   make(map[uint]bool),
	}

	for _, name := range []string{models.LicenseMessaging, models.LicenseMeetings} {
		id := m.nextID
		m.nextID++
		m.licenses[id] = models.License{
			Model:      gorm.Model{ID: id},
			Name:       name,
			TotalUnits: 1000,
		}
	}
	return m
}

// HealthCheck always reports healthy
func (m *MockAPIClient) HealthCheck(_ context.Context) (map[string]string, error) {
	return map[string]string{"status": "healthy"}, nil
}

// CreatePerson stores a new person and assigns the next ID
func (m *MockAPIClient) CreatePerson(_ context.Context, params handlers.CreatePersonParams) (models.Person, error) {
	m.CreateCalls++

	if err := params.Validate(); err != nil {
		return models.Person{}, err
	}
	for _, p := range m.people {
		for _, email := range params.Emails {
			if p.HasEmail(email) {
				return models.Person{}, fmt.Errorf("email address already in use: %s", email)
			}
		}
	}
	for _, licenseID := range params.Licenses {
		if _, ok := m.licenses[licenseID]; !ok {
			return models.Person{}, fmt.Errorf("unknown license id: %d", licenseID)
		}
	}

	id := m.nextID
	m.nextID++
	person := models.Person{
		Model:       gorm.Model{ID: id},
		Emails:      params.Emails,
		DisplayName: params.DisplayName,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Licenses:    params.Licenses,
	}
	m.people[id] = person
	return person, nil
}

// GetPerson returns a stored person or a 404 error
func (m *MockAPIClient) GetPerson(_ context.Context, id uint) (models.Person, error) {
	person, ok := m.people[id]
	if !ok {
		return models.Person{}, &fiber.Error{Code: fiber.StatusNotFound, Message: "Person not found with provided id"}
	}
	return person, nil
}

// GetMe is not meaningful for the mock; it returns a 404 error
func (m *MockAPIClient) GetMe(_ context.Context) (models.Person, error) {
	return models.Person{}, &fiber.Error{Code: fiber.StatusNotFound, Message: "no acting account"}
}

// ListPeople filters the stored people by email and display name. Addresses
// registered in DuplicateEmails return the matching account twice.
func (m *MockAPIClient) ListPeople(_ context.Context, opts *models.ListOptions) ([]models.Person, error) {
	m.ListCalls++

	var people []models.Person
	for _, p := range m.people {
		if opts != nil && opts.Email != "" && !p.HasEmail(opts.Email) {
			continue
		}
		if opts != nil && opts.DisplayName != "" && p.DisplayName != opts.DisplayName {
			continue
		}
		people = append(people, p)
		if opts != nil && opts.Email != "" && m.DuplicateEmails[opts.Email] {
			people = append(people, p)
		}
	}
	return people, nil
}

// UpdatePerson applies name changes to a stored person
func (m *MockAPIClient) UpdatePerson(_ context.Context, id uint, params handlers.UpdatePersonParams) (models.Person, error) {
	person, ok := m.people[id]
	if !ok {
		return models.Person{}, &fiber.Error{Code: fiber.StatusNotFound, Message: "Person not found with provided id"}
	}
	person.DisplayName = params.DisplayName
	person.FirstName = params.FirstName
	person.LastName = params.LastName
	m.people[id] = person
	return person, nil
}

// DeletePerson removes a stored person. IDs registered in FailDeleteIDs fail
// with a server error and keep the person around.
func (m *MockAPIClient) DeletePerson(_ context.Context, id uint) error {
	m.DeleteCalls++

	if m.FailDeleteIDs[id] {
		return &fiber.Error{Code: fiber.StatusInternalServerError, Message: "injected delete failure"}
	}
	if _, ok := m.people[id]; !ok {
		return &fiber.Error{Code: fiber.StatusNotFound, Message: "Person not found with provided id"}
	}
	delete(m.people, id)
	return nil
}

// ListLicenses returns the seeded license catalog
func (m *MockAPIClient) ListLicenses(_ context.Context, _ *models.ListOptions) ([]models.License, error) {
	licenses := make([]models.License, 0, len(m.licenses))
	for _, license := range m.licenses {
		licenses = append(licenses, license)
	}
	return licenses, nil
}

// GetLicense returns a stored license or a 404 error
func (m *MockAPIClient) GetLicense(_ context.Context, id uint) (models.License, error) {
	license, ok := m.licenses[id]
	if !ok {
		return models.License{}, &fiber.Error{Code: fiber.StatusNotFound, Message: "License not found with provided id"}
	}
	return license, nil
}

// PersonCount returns the number of stored people
func (m *MockAPIClient) PersonCount() int {
	return len(m.people)
}
