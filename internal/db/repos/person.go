// Package repos provides database access for the roster entities
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
)

// ErrEmailTaken is returned when a person is created with an email address
// that already identifies another account.
var ErrEmailTaken = errors.New("email address already in use")

// PersonRepository handles database operations for person entities
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new PersonRepository instance
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// CreatePerson creates a new person in the database.
// Returns an error if any of the person's email addresses is already taken,
// since an email address identifies at most one account.
func (r *PersonRepository) CreatePerson(ctx context.Context, person *models.Person) error {
	for _, email := range person.Emails {
		existing, err := r.GetPeopleByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("error checking email existence: %w", err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
	}
	return r.db.WithContext(ctx).Create(person).Error
}

// GetPersonByID retrieves a person by their ID
// Returns ErrRecordNotFound if the person doesn't exist
func (r *PersonRepository) GetPersonByID(ctx context.Context, personID uint) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).First(&person, personID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

// GetPeopleByEmail retrieves every person owning the given email address.
// The emails column is stored as a JSON array, so the match is done on the
// quoted address and confirmed on the decoded value.
func (r *PersonRepository) GetPeopleByEmail(ctx context.Context, email string) ([]models.Person, error) {
	var candidates []models.Person
	pattern := fmt.Sprintf("%%%q%%", email)
	err := r.db.WithContext(ctx).
		Where(models.PersonEmailsColumn+" LIKE ?", pattern).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search people by email: %w", err)
	}

	var people []models.Person
	for _, p := range candidates {
		if p.HasEmail(email) {
			people = append(people, p)
		}
	}
	return people, nil
}

// GetPeople retrieves people with optional filtering and pagination
func (r *PersonRepository) GetPeople(ctx context.Context, opts *models.ListOptions) ([]models.Person, error) {
	if opts == nil {
		opts = &models.ListOptions{Limit: models.DefaultLimit}
	}

	if opts.Email != "" {
		people, err := r.GetPeopleByEmail(ctx, opts.Email)
		if err != nil {
			return nil, err
		}
		if opts.DisplayName != "" {
			filtered := people[:0]
			for _, p := range people {
				if p.DisplayName == opts.DisplayName {
					filtered = append(filtered, p)
				}
			}
			people = filtered
		}
		return paginate(people, opts), nil
	}

	db := r.db.WithContext(ctx).Model(&models.Person{})
	if opts.DisplayName != "" {
		db = db.Where(models.PersonDisplayNameColumn+" = ?", opts.DisplayName)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = models.DefaultLimit
	}

	var people []models.Person
	err := db.Limit(limit).Offset(opts.Offset).Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

// UpdatePerson applies the given attribute changes to an existing person.
// Email addresses are immutable and are never touched here.
func (r *PersonRepository) UpdatePerson(ctx context.Context, person *models.Person) error {
	result := r.db.WithContext(ctx).Model(&models.Person{}).
		Where("id = ?", person.ID).
		Updates(map[string]interface{}{
			"display_name": person.DisplayName,
			"first_name":   person.FirstName,
			"last_name":    person.LastName,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePerson deletes a person by ID.
// Returns ErrRecordNotFound if the person doesn't exist.
func (r *PersonRepository) DeletePerson(ctx context.Context, personID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Person{}, personID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// paginate applies offset/limit to an in-memory result set
func paginate(people []models.Person, opts *models.ListOptions) []models.Person {
	if opts.Offset >= len(people) {
		return []models.Person{}
	}
	people = people[opts.Offset:]

	limit := opts.Limit
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	if limit < len(people) {
		people = people[:limit]
	}
	return people
}
