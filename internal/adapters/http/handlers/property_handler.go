package handlers

import (
	"errors"
	"strings"

	"waqf-task-tracker/internal/core/services"
	"waqf-task-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PropertyHandler handles property endpoints
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// CreatePropertyRequest represents create property request body
type CreatePropertyRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// List handles listing all properties
// @Summary List properties
// @Description Get all properties, newest first
// @Tags Properties
// @Produce json
// @Success 200 {array} models.Property
// @Failure 500 {object} response.ErrorBody
// @Router /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.propertyService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching properties")
	}

	return response.JSON(c, properties)
}

// Create handles creating a property
// @Summary Create property
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body CreatePropertyRequest true "Property data"
// @Success 201 {object} models.Property
// @Failure 400 {object} response.ErrorBody
// @Router /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Location == "" || req.Type == "" {
		return response.BadRequest(c, "Please provide all required fields")
	}

	input := &services.CreatePropertyInput{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Type:     req.Type,
	}

	property, err := h.propertyService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPropertyType):
			return response.BadRequest(c, "Invalid property type")
		default:
			return response.InternalServerError(c, "Failed to create property")
		}
	}

	return response.Created(c, property)
}

// GetByID handles getting a property by ID
// @Summary Get property by ID
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} response.ErrorBody
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	property, err := h.propertyService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.InternalServerError(c, "Failed to get property")
	}

	return response.JSON(c, property)
}
