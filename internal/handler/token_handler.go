package handler

import (
	"errors"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/dto"
	"github.com/KakonDebnath/bistro-boss-server/internal/service"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// TokenHandler issues session tokens
type TokenHandler struct {
	tokenService service.TokenService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenService service.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// Issue signs the posted identity into a token
// POST /jwt
func (h *TokenHandler) Issue(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.MsgInvalidBody)
		return
	}

	claim := &domain.IdentityClaim{Email: req.Email, Name: req.Name}
	result, err := h.tokenService.Issue(c.Request.Context(), claim)
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			response.BadRequest(c, response.MsgEmailRequired)
			return
		}
		respondError(c, err)
		return
	}

	response.OK(c, result)
}
