package repos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
)

type LicenseRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestLicenseRepository(t *testing.T) {
	suite.Run(t, new(LicenseRepositoryTestSuite))
}

func (s *LicenseRepositoryTestSuite) TestCreateLicense() {
	license := s.createTestLicense(models.LicenseMessaging)
	s.NotZero(license.ID)

	duplicate := &models.License{Name: models.LicenseMessaging, TotalUnits: 10}
	err := s.licenseRepo.CreateLicense(s.ctx, duplicate)
	s.Error(err)
	s.Contains(err.Error(), "already exists")
}

func (s *LicenseRepositoryTestSuite) TestGetLicense() {
	license := s.createTestLicense(models.LicenseMessaging)

	byID, err := s.licenseRepo.GetLicenseByID(s.ctx, license.ID)
	s.NoError(err)
	s.Equal(license.Name, byID.Name)

	byName, err := s.licenseRepo.GetLicenseByName(s.ctx, models.LicenseMessaging)
	s.NoError(err)
	s.Equal(license.ID, byName.ID)

	_, err = s.licenseRepo.GetLicenseByName(s.ctx, "Calling")
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *LicenseRepositoryTestSuite) TestGetLicenses() {
	s.createTestLicense(models.LicenseMessaging)
	s.createTestLicense(models.LicenseMeetings)

	licenses, err := s.licenseRepo.GetLicenses(s.ctx, nil)
	s.NoError(err)
	s.Len(licenses, 2)
}

func (s *LicenseRepositoryTestSuite) TestConsumeAndReleaseUnit() {
	license := s.createTestLicense(models.LicenseMessaging)

	s.NoError(s.licenseRepo.ConsumeUnit(s.ctx, license.ID))
	updated, err := s.licenseRepo.GetLicenseByID(s.ctx, license.ID)
	s.NoError(err)
	s.Equal(1, updated.ConsumedUnits)

	s.NoError(s.licenseRepo.ReleaseUnit(s.ctx, license.ID))
	updated, err = s.licenseRepo.GetLicenseByID(s.ctx, license.ID)
	s.NoError(err)
	s.Equal(0, updated.ConsumedUnits)

	// Releasing at zero stays at zero
	s.NoError(s.licenseRepo.ReleaseUnit(s.ctx, license.ID))
	updated, err = s.licenseRepo.GetLicenseByID(s.ctx, license.ID)
	s.NoError(err)
	s.Equal(0, updated.ConsumedUnits)
}
