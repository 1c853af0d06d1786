package test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/pkg/api/v1/client"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
)

// Registry errors
var (
	// ErrDuplicateEmail reports that a remote lookup returned more than one
	// account for a single address. One address identifies at most one
	// account, so this can never happen on a healthy deployment.
	ErrDuplicateEmail = errors.New("multiple accounts share one email address")

	// ErrInvalidPerson reports that a created person came back without an ID
	ErrInvalidPerson = errors.New("person is missing its id")
)

// IsValidPerson reports whether a person returned by the API has its
// server-assigned identity
func IsValidPerson(person models.Person) bool {
	return person.ID != 0
}

// AreValidPeople reports whether every person in the slice is valid
func AreValidPeople(people []models.Person) bool {
	for _, person := range people {
		if !IsValidPerson(person) {
			return false
		}
	}
	return true
}

// FindPersonByEmail looks up the account owning the given address.
// Returns nil without error if no account exists, and ErrDuplicateEmail if
// more than one account matches.
func FindPersonByEmail(ctx context.Context, c client.Client, email string) (*models.Person, error) {
	people, err := c.ListPeople(ctx, &models.ListOptions{Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to search for %s: %w", email, err)
	}

	switch len(people) {
	case 0:
		return nil, nil
	case 1:
		return &people[0], nil
	default:
		return nil, fmt.Errorf("%w: %s matches %d accounts", ErrDuplicateEmail, email, len(people))
	}
}

// NewTestPerson acquires a test account on a fresh address: it reuses the
// account if one already owns the address, and creates one with the fixed
// test identity and a Messaging license otherwise.
func NewTestPerson(ctx context.Context, c client.Client, emails *EmailProvider, licenses LicensePool) (models.Person, error) {
	email := emails.Next()

	existing, err := FindPersonByEmail(ctx, c, email)
	if err != nil {
		return models.Person{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	messaging, err := licenses.MustGet(models.LicenseMessaging)
	if err != nil {
		return models.Person{}, err
	}

	person, err := c.CreatePerson(ctx, handlers.CreatePersonParams{
		Emails:      []string{email},
		DisplayName: TestPersonDisplayName,
		FirstName:   TestPersonFirstName,
		LastName:    TestPersonLastName,
		Licenses:    []uint{messaging},
	})
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to create test person: %w", err)
	}
	if !IsValidPerson(person) {
		return models.Person{}, ErrInvalidPerson
	}
	return person, nil
}

// PersonRegistry creates, tracks and manages the test accounts used by a
// suite. Accounts are created lazily on first access per key, cached for the
// rest of the suite, and deleted remotely when the registry is closed.
//
// A registry is single use: once closed it must not be used again. It is not
// safe for concurrent use; suites run their cases sequentially.
type PersonRegistry struct {
	client   client.Client
	emails   *EmailProvider
	licenses LicensePool
	people   map[string]models.Person
}

// NewPersonRegistry creates an empty registry.
// The caller owns the registry and must call Close when done with it.
func NewPersonRegistry(c client.Client, emails *EmailProvider, licenses LicensePool) *PersonRegistry {
	return &PersonRegistry{
		client:   c,
		emails:   emails,
		licenses: licenses,
		people:   make(map[string]models.Person),
	}
}

// GetOrCreate returns the account cached under the given key, creating it on
// first access. Two calls with the same key return the same account and issue
// at most one creation request.
func (r *PersonRegistry) GetOrCreate(ctx context.Context, key string) (models.Person, error) {
	if person, ok := r.people[key]; ok {
		return person, nil
	}

	person, err := NewTestPerson(ctx, r.client, r.emails, r.licenses)
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to acquire person %q: %w", key, err)
	}

	r.people[key] = person
	return person, nil
}

// All returns every currently cached account, in no particular order
func (r *PersonRegistry) All() []models.Person {
	people := make([]models.Person, 0, len(r.people))
	for _, person := range r.people {
		people = append(people, person)
	}
	return people
}

// Len returns the number of cached accounts
func (r *PersonRegistry) Len() int {
	return len(r.people)
}

// Close deletes every cached account from the remote system and clears the
// registry. Deletion is best effort: a failure on one account does not stop
// the remaining deletions, and all failures are reported together.
func (r *PersonRegistry) Close(ctx context.Context) error {
	var errs []error
	for key, person := range r.people {
		if err := r.client.DeletePerson(ctx, person.ID); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete person %q (id %d): %w", key, person.ID, err))
		}
	}
	r.people = make(map[string]models.Person)
	return errors.Join(errs...)
}

// TempPerson acquires a test account scoped to a single test case. The
// account is deleted when the test finishes, whether it passed or failed.
func TempPerson(t *testing.T, s *Suite) models.Person {
	t.Helper()

	person, err := NewTestPerson(s.Context(), s.APIClient, s.Emails, s.Licenses)
	if err != nil {
		t.Fatalf("failed to acquire temp person: %v", err)
	}

	t.Cleanup(func() {
		if err := s.APIClient.DeletePerson(context.Background(), person.ID); err != nil {
			t.Errorf("failed to delete temp person %d: %v", person.ID, err)
		}
	})

	return person
}
