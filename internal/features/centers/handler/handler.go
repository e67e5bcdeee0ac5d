package handler

import (
	"net/http"

	"github.com/rahulphari/eye/internal/core/logger"
	"github.com/rahulphari/eye/internal/features/centers/domain"
	"github.com/rahulphari/eye/internal/features/centers/ports"
	"github.com/rahulphari/eye/internal/features/centers/service"

	forecastdomain "github.com/rahulphari/eye/internal/features/forecast/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CenterHandler handles HTTP requests for center management.
type CenterHandler struct {
	service ports.CenterService
}

// NewCenterHandler creates a new CenterHandler.
func NewCenterHandler(service ports.CenterService) *CenterHandler {
	return &CenterHandler{
		service: service,
	}
}

// SaveCenterRequest represents the request body for creating or updating a center.
type SaveCenterRequest struct {
	Name       string                       `json:"name"`
	Coords     string                       `json:"coords"`
	GPSEnabled bool                         `json:"gps_enabled"`
	Config     *forecastdomain.CenterConfig `json:"config,omitempty"`
}

// SaveCenter handles PUT /centers/:id.
// @Summary Create or update a center
// @Description Registers a center with its coordinates and forecast configuration. Omitting the config applies the defaults.
// @Tags Centers
// @Accept json
// @Produce json
// @Param id path string true "Center ID"
// @Param center body SaveCenterRequest true "Center details"
// @Success 200 {object} domain.Center
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /centers/{id} [put]
func (h *CenterHandler) SaveCenter(c *fiber.Ctx) error {
	var req SaveCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	center, err := domain.NewCenter(c.Params("id"), req.Name, req.Coords, req.GPSEnabled)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if req.Config != nil {
		center.Config = *req.Config
	}

	ctx := c.Context()
	if err := h.service.SaveCenter(ctx, center); err != nil {
		logger.Get().Error("Failed to save center", zap.String("center_id", center.ID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(center)
}

// GetCenter handles GET /centers/:id.
// @Summary Get one center
// @Tags Centers
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} domain.Center
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /centers/{id} [get]
func (h *CenterHandler) GetCenter(c *fiber.Ctx) error {
	ctx := c.Context()
	center, err := h.service.GetCenter(ctx, c.Params("id"))
	if err != nil {
		if err == service.ErrCenterNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Center not found",
			})
		}
		logger.Get().Error("Failed to get center", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(center)
}

// ListCenters handles GET /centers.
// @Summary List all centers
// @Tags Centers
// @Produce json
// @Success 200 {array} domain.Center
// @Failure 500 {object} map[string]string
// @Router /centers [get]
func (h *CenterHandler) ListCenters(c *fiber.Ctx) error {
	ctx := c.Context()
	centers, err := h.service.ListCenters(ctx)
	if err != nil {
		logger.Get().Error("Failed to list centers", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(centers)
}

// RemoveCenter handles DELETE /centers/:id.
// @Summary Remove a center
// @Tags Centers
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /centers/{id} [delete]
func (h *CenterHandler) RemoveCenter(c *fiber.Ctx) error {
	ctx := c.Context()
	if err := h.service.RemoveCenter(ctx, c.Params("id")); err != nil {
		if err == service.ErrCenterNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Center not found",
			})
		}
		logger.Get().Error("Failed to remove center", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Center removed successfully",
	})
}
