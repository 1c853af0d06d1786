// Package handlers provides HTTP request handlers for the API
package handlers

import (
	"errors"
	"fmt"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/db/repos"
	"github.com/roster-im/roster/internal/services"
	"github.com/roster-im/roster/internal/types"
)

// PersonHandler handles HTTP requests for person operations
type PersonHandler struct {
	service *services.Person

	// meID identifies the acting account returned by the /people/me
	// endpoint. Zero means no acting account is configured.
	meID uint
}

// NewPersonHandler creates a new person handler instance
func NewPersonHandler(service *services.Person) *PersonHandler {
	return &PersonHandler{service: service}
}

// SetMe configures the acting account returned by GetMe
func (h *PersonHandler) SetMe(personID uint) {
	h.meID = personID
}

// ListPeople handles the request to list people with optional email and
// display name filters
func (h *PersonHandler) ListPeople(c *fiber.Ctx) error {
	params := PersonListParams{
		Email:       c.Query("email"),
		DisplayName: c.Query("displayName"),
		Limit:       c.QueryInt("limit", DefaultPageSize),
		Offset:      c.QueryInt("offset", 0),
	}
	if err := params.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(err.Error()))
	}

	opts := &models.ListOptions{
		Limit:       clampPageSize(params.Limit),
		Offset:      params.Offset,
		Email:       params.Email,
		DisplayName: params.DisplayName,
	}

	people, err := h.service.GetPeople(c.Context(), opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(fmt.Sprintf("failed to list people: %v", err)))
	}

	return c.JSON(types.ListResponse[models.Person]{
		Rows: people,
		Pagination: types.PaginationResponse{
			Total:  len(people),
			Limit:  opts.Limit,
			Offset: opts.Offset,
		},
	})
}

// GetMe returns the account the API is acting as
func (h *PersonHandler) GetMe(c *fiber.Ctx) error {
	if h.meID == 0 {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(ErrMsgMeAccountNotSeeded))
	}

	person, err := h.service.GetPersonByID(c.Context(), h.meID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(ErrMsgGetPersonFailed))
	}
	return c.JSON(person)
}

// GetPerson returns details of a specific person
func (h *PersonHandler) GetPerson(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("id")
	if err != nil || personID <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgInvalidPersonID))
	}

	person, err := h.service.GetPersonByID(c.Context(), uint(personID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(types.ErrNotFound(ErrMsgPersonNotFound))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(ErrMsgGetPersonFailed))
	}

	return c.JSON(person)
}

// CreatePerson creates a new person
func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	var params CreatePersonParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgInvalidReqFormat))
	}
	if err := params.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(err.Error()))
	}

	person := &models.Person{
		Emails:      params.Emails,
		DisplayName: params.DisplayName,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Licenses:    params.Licenses,
	}

	_, err := h.service.CreatePerson(c.Context(), person)
	if errors.Is(err, services.ErrUnknownLicense) {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgUnknownLicense))
	}
	if errors.Is(err, repos.ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).
			JSON(types.ErrInvalidInput(fmt.Sprintf("%s: %v", ErrMsgCreatePersonFailed, err)))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(fmt.Sprintf("%s: %v", ErrMsgCreatePersonFailed, err)))
	}

	return c.Status(fiber.StatusCreated).JSON(person)
}

// UpdatePerson applies attribute changes to an existing person
func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("id")
	if err != nil || personID <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgInvalidPersonID))
	}

	var params UpdatePersonParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgInvalidReqFormat))
	}

	person := &models.Person{
		Model:       gorm.Model{ID: uint(personID)},
		DisplayName: params.DisplayName,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
	}

	updated, err := h.service.UpdatePerson(c.Context(), person)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(types.ErrNotFound(ErrMsgPersonNotFound))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(ErrMsgUpdatePersonFailed))
	}

	return c.JSON(updated)
}

// DeletePerson deletes a person by ID
func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("id")
	if err != nil || personID <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgInvalidPersonID))
	}

	err = h.service.DeletePerson(c.Context(), uint(personID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(types.ErrNotFound(ErrMsgPersonNotFound))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(ErrMsgDeletePersonFailed))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
