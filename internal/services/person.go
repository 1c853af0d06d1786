// Package services provides business logic on top of the repositories
package services

import (
	"context"
	"errors"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/db/repos"
)

// Person service errors
var (
	ErrPersonNotFound     = errors.New("person not found")
	ErrPersonCreateFailed = errors.New("failed to create person")
	ErrUnknownLicense     = errors.New("unknown license")
)

// Person provides business logic for person operations
type Person struct {
	repo     *repos.PersonRepository
	licenses *License
}

// NewPersonService creates a new person service instance
func NewPersonService(repo *repos.PersonRepository, licenses *License) *Person {
	return &Person{
		repo:     repo,
		licenses: licenses,
	}
}

// CreatePerson creates a new person. Every requested license must exist in
// the catalog; a unit is consumed from each one.
func (s *Person) CreatePerson(ctx context.Context, person *models.Person) (uint, error) {
	for _, licenseID := range person.Licenses {
		if _, err := s.licenses.GetLicenseByID(ctx, licenseID); err != nil {
			return 0, errors.Join(ErrUnknownLicense, err)
		}
	}

	if err := s.repo.CreatePerson(ctx, person); err != nil {
		return 0, errors.Join(ErrPersonCreateFailed, err)
	}

	for _, licenseID := range person.Licenses {
		if err := s.licenses.ConsumeUnit(ctx, licenseID); err != nil {
			return 0, err
		}
	}
	return person.ID, nil
}

// GetPersonByID retrieves a person by id
func (s *Person) GetPersonByID(ctx context.Context, personID uint) (*models.Person, error) {
	person, err := s.repo.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, errors.Join(ErrPersonNotFound, err)
	}
	return person, nil
}

// GetPeople retrieves people with optional filtering
func (s *Person) GetPeople(ctx context.Context, opts *models.ListOptions) ([]models.Person, error) {
	return s.repo.GetPeople(ctx, opts)
}

// UpdatePerson applies attribute changes to an existing person and returns the
// updated record
func (s *Person) UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	if err := s.repo.UpdatePerson(ctx, person); err != nil {
		return nil, err
	}
	return s.GetPersonByID(ctx, person.ID)
}

// DeletePerson deletes a person and releases every license unit it consumed
func (s *Person) DeletePerson(ctx context.Context, personID uint) error {
	person, err := s.repo.GetPersonByID(ctx, personID)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePerson(ctx, personID); err != nil {
		return err
	}

	for _, licenseID := range person.Licenses {
		if err := s.licenses.ReleaseUnit(ctx, licenseID); err != nil {
			return err
		}
	}
	return nil
}
