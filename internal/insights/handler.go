package insights

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finbooks-backend/internal/shared/server/middleware"
	"finbooks-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/insights/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	insight, err := h.Svc.Generate(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "dependency_unavailable", "insights service unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate insights", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"success": true, "data": insight})
}
