package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"totem-fashion/internal/domain"
	"totem-fashion/internal/service"
)

// StylistHandler expone descubrimiento, swipes y composicion de looks.
type StylistHandler struct {
	logger  *zap.Logger
	stylist *service.StylistService
}

// NewStylistHandler crea una instancia de StylistHandler con dependencias necesarias.
func NewStylistHandler(logger *zap.Logger, stylist *service.StylistService) *StylistHandler {
	return &StylistHandler{
		logger:  logger,
		stylist: stylist,
	}
}

type productInput struct {
	ID       string   `json:"id" binding:"required"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Price    *float64 `json:"price"`
	Brand    string   `json:"brand"`
	Image    string   `json:"image"`
	Gender   string   `json:"gender"`
}

func (p productInput) toItem() domain.Item {
	item := domain.Item{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Color:    p.Color,
		Brand:    p.Brand,
		Image:    p.Image,
		Gender:   p.Gender,
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	return item
}

// Discover maneja GET /discover.
func (h *StylistHandler) Discover(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	items := h.stylist.Discover(c.Request.Context(), sessionID, strings.TrimSpace(c.Query("category")))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Like maneja POST /swipe/like.
func (h *StylistHandler) Like(c *gin.Context) {
	h.swipe(c, domain.EventLike)
}

// Dislike maneja POST /swipe/dislike.
func (h *StylistHandler) Dislike(c *gin.Context) {
	h.swipe(c, domain.EventDislike)
}

func (h *StylistHandler) swipe(c *gin.Context, kind string) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	var req productInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid swipe request", zap.String("type", kind), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var (
		rec domain.Recommendation
		err error
	)
	if kind == domain.EventLike {
		rec, err = h.stylist.Like(c.Request.Context(), sessionID, req.toItem())
	} else {
		rec, err = h.stylist.Dislike(c.Request.Context(), sessionID, req.toItem())
	}
	if err != nil {
		writeServiceError(c, h.logger, err, "could not record "+kind)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Recommend maneja GET /recommend.
func (h *StylistHandler) Recommend(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	rec, err := h.stylist.Recommend(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not compute recommendations")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ComposeOutfit maneja GET /outfit.
func (h *StylistHandler) ComposeOutfit(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	seedID := strings.TrimSpace(c.Query("seed_id"))
	if seedID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seed_id is required"})
		return
	}

	var budget *float64
	if raw := strings.TrimSpace(c.Query("budget")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "budget must be a positive number"})
			return
		}
		budget = &v
	}

	outfit, err := h.stylist.ComposeOutfit(c.Request.Context(), sessionID, seedID, budget)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not compose outfit")
		return
	}
	c.JSON(http.StatusOK, outfit)
}
