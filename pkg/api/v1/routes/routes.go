// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/roster-im/roster/pkg/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// People routes
	ListPeople   = "ListPeople"
	GetMe        = "GetMe"
	GetPerson    = "GetPerson"
	CreatePerson = "CreatePerson"
	UpdatePerson = "UpdatePerson"
	DeletePerson = "DeletePerson"

	// License routes
	ListLicenses = "ListLicenses"
	GetLicense   = "GetLicense"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes
//
// NOTE: route ordering is important because routes will try and match in the
// order they are registered. The /me route must be registered before /:id,
// otherwise "me" gets interpreted as a person ID.
func RegisterRoutes(
	app *fiber.App,
	personHandler *handlers.PersonHandler,
	licenseHandler *handlers.LicenseHandler,
) {
	// API v1 routes
	v1 := app.Group(APIv1Prefix)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// People endpoints
	people := v1.Group("/people")
	people.Get("/", personHandler.ListPeople).Name(ListPeople)
	people.Get("/me", personHandler.GetMe).Name(GetMe)
	people.Get("/:id", personHandler.GetPerson).Name(GetPerson)
	people.Post("/", personHandler.CreatePerson).Name(CreatePerson)
	people.Put("/:id", personHandler.UpdatePerson).Name(UpdatePerson)
	people.Delete("/:id", personHandler.DeletePerson).Name(DeletePerson)

	// License endpoints
	licenses := v1.Group("/licenses")
	licenses.Get("/", licenseHandler.ListLicenses).Name(ListLicenses)
	licenses.Get("/:id", licenseHandler.GetLicense).Name(GetLicense)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		app := fiber.New()

		// Register routes with empty handlers just to extract the paths
		RegisterRoutes(app, &handlers.PersonHandler{}, &handlers.LicenseHandler{})

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()

	// Initialize cache if needed
	if routeCache == nil {
		routeCacheMu.RUnlock()
		initRouteCache()
		routeCacheMu.RLock()
	}

	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	// Replace parameters in the route
	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, value)
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	// Add query parameters if any
	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// Health check route helper

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// People route helpers

// ListPeopleURL returns the URL for listing people
func ListPeopleURL(queryParams url.Values) string {
	return BuildURL(ListPeople, nil, queryParams)
}

// GetMeURL returns the URL for the acting account endpoint
func GetMeURL() string {
	return BuildURL(GetMe, nil, nil)
}

// GetPersonURL returns the URL for getting a person by ID
func GetPersonURL(id string) string {
	return BuildURL(GetPerson, map[string]string{"id": id}, nil)
}

// CreatePersonURL returns the URL for creating a person
func CreatePersonURL() string {
	return BuildURL(CreatePerson, nil, nil)
}

// UpdatePersonURL returns the URL for updating a person by ID
func UpdatePersonURL(id string) string {
	return BuildURL(UpdatePerson, map[string]string{"id": id}, nil)
}

// DeletePersonURL returns the URL for deleting a person by ID
func DeletePersonURL(id string) string {
	return BuildURL(DeletePerson, map[string]string{"id": id}, nil)
}

// License route helpers

// ListLicensesURL returns the URL for listing licenses
func ListLicensesURL(queryParams url.Values) string {
	return BuildURL(ListLicenses, nil, queryParams)
}

// GetLicenseURL returns the URL for getting a license by ID
func GetLicenseURL(id string) string {
	return BuildURL(GetLicense, map[string]string{"id": id}, nil)
}
