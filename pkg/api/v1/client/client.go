// Package client provides the API client for interacting with the roster API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/types"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
	"github.com/roster-im/roster/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// People endpoints
	CreatePerson(ctx context.Context, params handlers.CreatePersonParams) (models.Person, error)
	GetPerson(ctx context.Context, id uint) (models.Person, error)
	GetMe(ctx context.Context) (models.Person, error)
	ListPeople(ctx context.Context, opts *models.ListOptions) ([]models.Person, error)
	UpdatePerson(ctx context.Context, id uint, params handlers.UpdatePersonParams) (models.Person, error)
	DeletePerson(ctx context.Context, id uint) error

	// License endpoints
	ListLicenses(ctx context.Context, opts *models.ListOptions) ([]models.License, error)
	GetLicense(ctx context.Context, id uint) (models.License, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	// Check for non-success status codes
	if statusCode < 200 || statusCode >= 300 {
		var errResp types.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return &fiber.Error{Code: statusCode, Message: errResp.Error}
		}
		return &fiber.Error{Code: statusCode, Message: string(body)}
	}

	// Decode the response body if a target is provided
	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// getQueryParams creates url.Values from ListOptions
func getQueryParams(opts *models.ListOptions) url.Values {
	q := url.Values{}
	if opts == nil {
		return q
	}

	// Pagination params
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}

	// Filtering params
	if opts.Email != "" {
		q.Set("email", opts.Email)
	}
	if opts.DisplayName != "" {
		q.Set("displayName", opts.DisplayName)
	}

	return q
}

// Health check implementation

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	endpoint := routes.HealthCheckURL()
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return map[string]string{}, err
	}
	return response, nil
}

// People methods implementation

// CreatePerson creates a new person and returns the created record
func (c *APIClient) CreatePerson(ctx context.Context, params handlers.CreatePersonParams) (models.Person, error) {
	endpoint := routes.CreatePersonURL()
	var response models.Person
	if err := c.executeRequest(ctx, http.MethodPost, endpoint, params, &response); err != nil {
		return models.Person{}, err
	}
	return response, nil
}

// GetPerson retrieves a person by ID
func (c *APIClient) GetPerson(ctx context.Context, id uint) (models.Person, error) {
	endpoint := routes.GetPersonURL(strconv.FormatUint(uint64(id), 10))
	var response models.Person
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return models.Person{}, err
	}
	return response, nil
}

// GetMe retrieves the account the API is acting as
func (c *APIClient) GetMe(ctx context.Context) (models.Person, error) {
	endpoint := routes.GetMeURL()
	var response models.Person
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return models.Person{}, err
	}
	return response, nil
}

// ListPeople lists people with optional filtering
func (c *APIClient) ListPeople(ctx context.Context, opts *models.ListOptions) ([]models.Person, error) {
	endpoint := routes.ListPeopleURL(getQueryParams(opts))
	var response types.ListResponse[models.Person]
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return []models.Person{}, err
	}
	return response.Rows, nil
}

// UpdatePerson applies attribute changes to a person and returns the updated record
func (c *APIClient) UpdatePerson(ctx context.Context, id uint, params handlers.UpdatePersonParams) (models.Person, error) {
	endpoint := routes.UpdatePersonURL(strconv.FormatUint(uint64(id), 10))
	var response models.Person
	if err := c.executeRequest(ctx, http.MethodPut, endpoint, params, &response); err != nil {
		return models.Person{}, err
	}
	return response, nil
}

// DeletePerson deletes a person by ID
func (c *APIClient) DeletePerson(ctx context.Context, id uint) error {
	endpoint := routes.DeletePersonURL(strconv.FormatUint(uint64(id), 10))
	return c.executeRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}

// License methods implementation

// ListLicenses retrieves the license catalog
func (c *APIClient) ListLicenses(ctx context.Context, opts *models.ListOptions) ([]models.License, error) {
	endpoint := routes.ListLicensesURL(getQueryParams(opts))
	var response types.ListResponse[models.License]
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return []models.License{}, err
	}
	return response.Rows, nil
}

// GetLicense retrieves a license by ID
func (c *APIClient) GetLicense(ctx context.Context, id uint) (models.License, error) {
	endpoint := routes.GetLicenseURL(strconv.FormatUint(uint64(id), 10))
	var response models.License
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return models.License{}, err
	}
	return response, nil
}
