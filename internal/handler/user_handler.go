package handler

import (
	"errors"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/dto"
	"github.com/KakonDebnath/bistro-boss-server/internal/middleware"
	"github.com/KakonDebnath/bistro-boss-server/internal/service"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, users)
}

// Create registers a user
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.MsgInvalidBody)
		return
	}

	result, err := h.userService.Create(c.Request.Context(), &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Message(c, response.MsgUserExists)
			return
		}
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// AdminStatus reports whether the caller is an admin
// GET /users/admin/:email
func (h *UserHandler) AdminStatus(c *gin.Context) {
	claim, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, response.MsgUnauthorized)
		return
	}

	result, err := h.userService.AdminStatus(c.Request.Context(), claim.Email, c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Promote grants the admin role
// PATCH /users/admin/:id
func (h *UserHandler) Promote(c *gin.Context) {
	result, err := h.userService.Promote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete removes a user
// DELETE /users/admin/:id
func (h *UserHandler) Delete(c *gin.Context) {
	result, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}
