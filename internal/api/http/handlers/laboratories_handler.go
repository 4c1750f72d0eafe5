package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lab-booking-service/internal/api/dto"
	"github.com/spec-kit/lab-booking-service/internal/auth"
	"github.com/spec-kit/lab-booking-service/internal/service"
	apperrors "github.com/spec-kit/lab-booking-service/pkg/util"
)

// LaboratoriesHandler exposes CRUD and search endpoints for laboratories.
type LaboratoriesHandler struct {
	labs *service.LaboratoryService
}

// NewLaboratoriesHandler constructs handler.
func NewLaboratoriesHandler(labService *service.LaboratoryService) *LaboratoriesHandler {
	return &LaboratoriesHandler{labs: labService}
}

// Page handles GET /laboratory/page.
func (h *LaboratoriesHandler) Page(c *fiber.Ctx) error {
	records, total, err := h.labs.FindPage(c.Context(),
		c.Query("keyword"), c.Query("pageNum"), c.Query("pageSize"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.PageResponse{Records: records, Total: total})
}

// List handles GET /laboratory/list.
func (h *LaboratoriesHandler) List(c *fiber.Ctx) error {
	records, err := h.labs.FindList(c.Context(), c.Query("keyword"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(records)
}

// Save handles POST /laboratory/save. The creator reference comes from the
// authenticated caller.
func (h *LaboratoriesHandler) Save(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.LaboratoryPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	lab := req.ToDomain()
	if err := h.labs.Create(c.Context(), principal.User.ID, lab); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("laboratory name already exists", map[string]any{"name": req.Name})
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(lab)
}

// GetByID handles GET /laboratory/getById/:id.
func (h *LaboratoriesHandler) GetByID(c *fiber.Ctx) error {
	lab, err := h.labs.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(lab)
}

// Update handles PUT /laboratory/update/:id. A zero modified count is an
// error, not a silent no-op.
func (h *LaboratoriesHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.LaboratoryPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	modified, err := h.labs.UpdateOne(c.Context(), id, req.ToDomain())
	if err != nil {
		return apperrors.MapError(err)
	}
	if modified == 0 {
		return apperrors.NewUpdateFailed("laboratory")
	}

	lab, err := h.labs.FindByID(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(lab)
}

// DeleteByID handles DELETE /laboratory/deleteById/:id.
func (h *LaboratoriesHandler) DeleteByID(c *fiber.Ctx) error {
	lab, err := h.labs.DeleteOne(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(lab)
}
