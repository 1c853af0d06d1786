package test

import (
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/logger"
	"github.com/roster-im/roster/internal/services"
	"github.com/roster-im/roster/pkg/api/v1/client"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
	"github.com/roster-im/roster/pkg/api/v1/routes"
)

// testClientTimeout is the timeout for test API client requests
const testClientTimeout = 5 * time.Second

// SetupServer configures the test suite with a real API server and a real
// API client pointed at it. The acting account for /people/me is seeded here.
func SetupServer(suite *Suite) {
	suite.App = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	suite.App.Use(logger.APILogger())

	// Create services
	licenseService := services.NewLicenseService(suite.LicenseRepo)
	personService := services.NewPersonService(suite.PersonRepo, licenseService)

	// Create handlers
	personHandler := handlers.NewPersonHandler(personService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)

	// Seed the acting account so /people/me has something to return
	me := &models.Person{
		Emails:      []string{"roster-machine@" + DefaultEmailDomain},
		DisplayName: "roster machine account",
	}
	err := suite.PersonRepo.CreatePerson(suite.ctx, me)
	suite.Require().NoError(err, "Failed to seed acting account")
	personHandler.SetMe(me.ID)
	suite.Me = *me

	// Register routes
	routes.RegisterRoutes(suite.App, personHandler, licenseHandler)

	// Create test server using adaptor to convert Fiber app to http.Handler
	suite.Server = httptest.NewServer(adaptor.FiberApp(suite.App))

	// Create API client with test configuration
	apiClient, err := client.NewClient(&client.Options{
		BaseURL: suite.Server.URL,
		Timeout: testClientTimeout,
	})
	suite.Require().NoError(err, "Failed to create API client")
	suite.APIClient = apiClient

	// Update cleanup to close server
	originalCleanup := suite.cleanup
	suite.cleanup = func() {
		if suite.Server != nil {
			suite.Server.Close()
		}
		if originalCleanup != nil {
			originalCleanup()
		}
	}
}
