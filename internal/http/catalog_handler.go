package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"totem-fashion/internal/catalog"
	"totem-fashion/internal/service"
)

// CatalogHandler expone busqueda y categorias del catalogo.
type CatalogHandler struct {
	logger  *zap.Logger
	stylist *service.StylistService
}

func NewCatalogHandler(logger *zap.Logger, stylist *service.StylistService) *CatalogHandler {
	return &CatalogHandler{
		logger:  logger,
		stylist: stylist,
	}
}

// Search maneja GET /catalog/search.
func (h *CatalogHandler) Search(c *gin.Context) {
	filter := catalog.Filter{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
		Color:    strings.TrimSpace(c.Query("color")),
		Gender:   strings.TrimSpace(c.Query("gender")),
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_max must be a number"})
			return
		}
		filter.PriceMax = &v
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filter.Limit = n
	}
	c.JSON(http.StatusOK, gin.H{"items": h.stylist.Search(filter)})
}

// Categories maneja GET /catalog/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.stylist.Categories()})
}
