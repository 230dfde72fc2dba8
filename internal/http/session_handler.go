package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"totem-fashion/internal/service"
)

// SessionHandler expone el perfil de preferencias de cada sesion.
type SessionHandler struct {
	logger  *zap.Logger
	stylist *service.StylistService
}

func NewSessionHandler(logger *zap.Logger, stylist *service.StylistService) *SessionHandler {
	return &SessionHandler{
		logger:  logger,
		stylist: stylist,
	}
}

// CreateSession maneja POST /session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	profile, err := h.stylist.CreateSession(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err, "could not create session")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": profile.SessionID,
		"profile":    profile,
	})
}

// GetProfile maneja GET /profile.
func (h *SessionHandler) GetProfile(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	profile, err := h.stylist.GetProfile(c.Request.Context(), sessionID)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not fetch profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// MergeTraits maneja POST /profile/traits.
func (h *SessionHandler) MergeTraits(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	var req struct {
		Patch map[string]any `json:"patch" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid merge traits request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile, err := h.stylist.MergeTraits(c.Request.Context(), sessionID, req.Patch)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not update traits")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
