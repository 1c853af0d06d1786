package services

import (
	"context"
	"errors"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/db/repos"
)

// ErrLicenseNotFound is returned when a license lookup fails
var ErrLicenseNotFound = errors.New("license not found")

// License provides business logic for license operations
type License struct {
	repo *repos.LicenseRepository
}

// NewLicenseService creates a new license service instance
func NewLicenseService(repo *repos.LicenseRepository) *License {
	return &License{repo: repo}
}

// GetLicenseByID retrieves a license by id
func (s *License) GetLicenseByID(ctx context.Context, licenseID uint) (*models.License, error) {
	license, err := s.repo.GetLicenseByID(ctx, licenseID)
	if err != nil {
		return nil, errors.Join(ErrLicenseNotFound, err)
	}
	return license, nil
}

// GetLicenses retrieves the license catalog
func (s *License) GetLicenses(ctx context.Context, opts *models.ListOptions) ([]models.License, error) {
	return s.repo.GetLicenses(ctx, opts)
}

// ConsumeUnit consumes one unit of a license
func (s *License) ConsumeUnit(ctx context.Context, licenseID uint) error {
	return s.repo.ConsumeUnit(ctx, licenseID)
}

// ReleaseUnit releases one unit of a license
func (s *License) ReleaseUnit(ctx context.Context, licenseID uint) error {
	return s.repo.ReleaseUnit(ctx, licenseID)
}
