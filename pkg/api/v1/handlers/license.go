package handlers

import (
	"errors"
	"fmt"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/services"
	"github.com/roster-im/roster/internal/types"
)

// LicenseHandler handles HTTP requests for license operations
type LicenseHandler struct {
	service *services.License
}

// NewLicenseHandler creates a new license handler instance
func NewLicenseHandler(service *services.License) *LicenseHandler {
	return &LicenseHandler{service: service}
}

// ListLicenses returns the license catalog
func (h *LicenseHandler) ListLicenses(c *fiber.Ctx) error {
	opts := &models.ListOptions{
		Limit:  clampPageSize(c.QueryInt("limit", DefaultPageSize)),
		Offset: c.QueryInt("offset", 0),
	}
	if opts.Offset < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgNegativePagination))
	}

	licenses, err := h.service.GetLicenses(c.Context(), opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(fmt.Sprintf("%s: %v", ErrMsgGetLicensesFailed, err)))
	}

	return c.JSON(types.ListResponse[models.License]{
		Rows: licenses,
		Pagination: types.PaginationResponse{
			Total:  len(licenses),
			Limit:  opts.Limit,
			Offset: opts.Offset,
		},
	})
}

// GetLicense returns details of a specific license
func (h *LicenseHandler) GetLicense(c *fiber.Ctx) error {
	licenseID, err := c.ParamsInt("id")
	if err != nil || licenseID <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrInvalidInput(ErrMsgInvalidLicenseParams))
	}

	license, err := h.service.GetLicenseByID(c.Context(), uint(licenseID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(types.ErrNotFound(ErrMsgLicenseNotFound))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrServer(ErrMsgGetLicensesFailed))
	}

	return c.JSON(license)
}
