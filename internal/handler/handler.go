package handler

import (
	"errors"
	"net/http"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// respondError maps errors shared by every route onto the error envelope
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		_ = c.Error(err)
		response.Error(c, http.StatusBadRequest, response.MsgInvalidID)
	default:
		response.InternalError(c, err)
	}
}
