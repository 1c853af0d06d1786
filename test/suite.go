package test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/db/repos"
	"github.com/roster-im/roster/pkg/api/v1/client"
)

// registryCloseTimeout bounds the teardown deletions. Teardown runs after the
// suite context may already be done, so it gets its own deadline.
const registryCloseTimeout = 10 * time.Second

// Suite encapsulates all components needed for integration testing.
// It provides a complete test setup with:
//   - In-memory database
//   - Real API server
//   - Real API client
//   - Session-scoped test account registry
type Suite struct {
	t *testing.T // The testing.T instance for this suite

	// Server components
	App    *fiber.App
	Server *httptest.Server

	// Client components
	APIClient client.Client

	// Database components
	DB          *gorm.DB
	PersonRepo  *repos.PersonRepository
	LicenseRepo *repos.LicenseRepository

	// Test account management
	Emails   *EmailProvider
	Licenses LicensePool
	People   *PersonRegistry

	// Me is the acting account returned by /people/me
	Me models.Person

	// Context management
	ctx        context.Context
	cancelFunc context.CancelFunc

	// Cleanup function
	cleanup func()
}

// NewSuite creates a new test suite.
// The suite must be cleaned up after use by calling Cleanup.
func NewSuite(t *testing.T) *Suite {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTestTimeout)

	suite := &Suite{
		t:          t,
		ctx:        ctx,
		cancelFunc: cancel,
	}

	// Initialize cleanup function
	suite.cleanup = func() {
		if suite.Server != nil {
			suite.Server.Close()
		}
		if suite.cancelFunc != nil {
			suite.cancelFunc()
		}
		if suite.DB != nil {
			sqlDB, err := suite.DB.DB()
			if err == nil && sqlDB != nil {
				_ = sqlDB.Close()
			}
		}
	}

	// Setup database
	SetupTestDB(suite)
	suite.PersonRepo = repos.NewPersonRepository(suite.DB)
	suite.LicenseRepo = repos.NewLicenseRepository(suite.DB)

	// Setup server and client
	SetupServer(suite)

	// Setup test account management
	emails, err := NewEmailProvider(DefaultEmailDomain)
	suite.Require().NoError(err, "Failed to create email provider")
	suite.Emails = emails

	licenses, err := LoadLicensePool(ctx, suite.APIClient)
	suite.Require().NoError(err, "Failed to load license pool")
	suite.Licenses = licenses

	suite.People = NewPersonRegistry(suite.APIClient, suite.Emails, suite.Licenses)

	return suite
}

// Cleanup tears down the test suite, releasing all resources. Registry
// accounts are deleted first, while the server is still running.
// This should be deferred immediately after creating the suite.
func (s *Suite) Cleanup() {
	if s.People != nil {
		ctx, cancel := context.WithTimeout(context.Background(), registryCloseTimeout)
		defer cancel()
		if err := s.People.Close(ctx); err != nil {
			s.t.Errorf("failed to clean up registry accounts: %v", err)
		}
	}

	if s.cleanup != nil {
		s.cleanup()
	}
}

// Context returns the suite's context, which is automatically
// canceled when the suite is cleaned up.
func (s *Suite) Context() context.Context {
	return s.ctx
}

// T returns the testing.T instance for this suite
func (s *Suite) T() *testing.T {
	return s.t
}

// Require returns a require.Assertions instance for this suite.
// This is a convenience method to avoid passing t around.
func (s *Suite) Require() *require.Assertions {
	return require.New(s.t)
}

// Retry retries a function until it succeeds or the number of retries is reached.
func (s *Suite) Retry(fn func() error, retries int, interval time.Duration) (err error) {
	for i := 0; i < retries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		time.Sleep(interval)
	}
	return
}
