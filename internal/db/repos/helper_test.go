package repos

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roster-im/roster/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	personRepo  *PersonRepository
	licenseRepo *LicenseRepository
}

func (s *DBRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(&models.Person{}, &models.License{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.personRepo = NewPersonRepository(db)
	s.licenseRepo = NewLicenseRepository(db)
	s.ctx = context.Background()
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// randomEmail creates a unique email address using crypto/rand
func (s *DBRepositoryTestSuite) randomEmail() string {
	buf := make([]byte, 6)
	_, err := rand.Read(buf)
	s.Require().NoError(err, "Failed to generate random email")
	return "test-" + hex.EncodeToString(buf) + "@example.com"
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) createTestPerson() *models.Person {
	person := &models.Person{
		Emails:      []string{s.randomEmail()},
		DisplayName: "Test Person",
		FirstName:   "Test",
		LastName:    "Person",
	}
	err := s.personRepo.CreatePerson(s.ctx, person)
	s.Require().NoError(err)
	return person
}

func (s *DBRepositoryTestSuite) createTestLicense(name string) *models.License {
	license := &models.License{
		Name:       name,
		TotalUnits: 100,
	}
	err := s.licenseRepo.CreateLicense(s.ctx, license)
	s.Require().NoError(err)
	return license
}
