package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lab-booking-service/internal/api/dto"
	"github.com/spec-kit/lab-booking-service/internal/service"
	apperrors "github.com/spec-kit/lab-booking-service/pkg/util"
)

// UsersHandler exposes CRUD and search endpoints for users.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Page handles GET /user/page.
func (h *UsersHandler) Page(c *fiber.Ctx) error {
	records, total, err := h.users.FindPage(c.Context(),
		c.Query("keyword"), c.Query("pageNum"), c.Query("pageSize"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.PageResponse{Records: records, Total: total})
}

// List handles GET /user/list.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	records, err := h.users.FindList(c.Context(), c.Query("keyword"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(records)
}

// Register handles POST /user/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user := req.ToDomain()
	if err := h.users.Register(c.Context(), user, req.Password); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("username already registered", map[string]any{"username": req.Username})
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(user.Public())
}

// GetByID handles GET /user/getById/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	profile, err := h.users.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(profile)
}

// Update handles PUT /user/update/:id. A zero modified count is an error, not
// a silent no-op.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UserPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	modified, err := h.users.UpdateOne(c.Context(), id, req.ToDomain(), req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}
	if modified == 0 {
		return apperrors.NewUpdateFailed("user")
	}

	profile, err := h.users.FindByID(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(profile)
}

// DeleteByID handles DELETE /user/deleteById/:id.
func (h *UsersHandler) DeleteByID(c *fiber.Ctx) error {
	profile, err := h.users.DeleteOne(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(profile)
}
