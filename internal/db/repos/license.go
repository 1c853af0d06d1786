package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
)

// LicenseRepository handles database operations for license entities
type LicenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository creates a new LicenseRepository instance
func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

// CreateLicense creates a new license in the catalog.
// Returns an error if the license name already exists.
func (r *LicenseRepository) CreateLicense(ctx context.Context, license *models.License) error {
	_, err := r.GetLicenseByName(ctx, license.Name)
	if err == nil {
		return fmt.Errorf("license already exists: %s", license.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking license existence: %w", err)
	}
	return r.db.WithContext(ctx).Create(license).Error
}

// GetLicenseByID retrieves a license by its ID
func (r *LicenseRepository) GetLicenseByID(ctx context.Context, licenseID uint) (*models.License, error) {
	var license models.License
	err := r.db.WithContext(ctx).First(&license, licenseID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get license: %w", err)
	}
	return &license, nil
}

// GetLicenseByName retrieves a license by its name
func (r *LicenseRepository) GetLicenseByName(ctx context.Context, name string) (*models.License, error) {
	var license models.License
	err := r.db.WithContext(ctx).Where(models.LicenseNameColumn+" = ?", name).First(&license).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get license: %w", err)
	}
	return &license, nil
}

// GetLicenses retrieves all licenses in the catalog
func (r *LicenseRepository) GetLicenses(ctx context.Context, opts *models.ListOptions) ([]models.License, error) {
	if opts == nil {
		opts = &models.ListOptions{Limit: models.DefaultLimit}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = models.DefaultLimit
	}

	var licenses []models.License
	err := r.db.WithContext(ctx).Model(&models.License{}).
		Limit(limit).Offset(opts.Offset).
		Find(&licenses).Error
	return licenses, err
}

// ConsumeUnit increments the consumed unit count for a license
func (r *LicenseRepository) ConsumeUnit(ctx context.Context, licenseID uint) error {
	license, err := r.GetLicenseByID(ctx, licenseID)
	if err != nil {
		return err
	}
	license.ConsumedUnits++
	return r.db.WithContext(ctx).Save(license).Error
}

// ReleaseUnit decrements the consumed unit count for a license
func (r *LicenseRepository) ReleaseUnit(ctx context.Context, licenseID uint) error {
	license, err := r.GetLicenseByID(ctx, licenseID)
	if err != nil {
		return err
	}
	if license.ConsumedUnits > 0 {
		license.ConsumedUnits--
	}
	return r.db.WithContext(ctx).Save(license).Error
}
