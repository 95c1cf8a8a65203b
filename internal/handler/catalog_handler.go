package handler

import (
	"github.com/KakonDebnath/bistro-boss-server/internal/service"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public menu and reviews
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Menu returns every menu item
// GET /menu
func (h *CatalogHandler) Menu(c *gin.Context) {
	items, err := h.catalogService.Menu(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, items)
}

// Reviews returns every review
// GET /review
func (h *CatalogHandler) Reviews(c *gin.Context) {
	reviews, err := h.catalogService.Reviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, reviews)
}
