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

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// List returns the caller's cart
// GET /carts?email=
func (h *CartHandler) List(c *gin.Context) {
	claim, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, response.MsgUnauthorized)
		return
	}

	items, err := h.cartService.List(c.Request.Context(), claim.Email, c.Query("email"))
	if err != nil {
		if errors.Is(err, service.ErrCartOwnerMismatch) {
			response.Unauthorized(c, response.MsgForbiddenAccess)
			return
		}
		respondError(c, err)
		return
	}
	response.OK(c, items)
}

// Add puts an item in a cart
// POST /carts
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.MsgInvalidBody)
		return
	}

	result, err := h.cartService.Add(c.Request.Context(), &domain.CartItem{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Email:      req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Remove deletes a cart item
// DELETE /carts/:id
func (h *CartHandler) Remove(c *gin.Context) {
	result, err := h.cartService.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}
