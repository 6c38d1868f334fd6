package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finbooks-backend/internal/documents"
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
	rg.POST("/documents/:id/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	result, err := h.Svc.Analyze(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, documents.ErrNotAnalyzable):
			respond.Error(c, http.StatusConflict, "conflict", "document analysis already triggered", nil)
		case errors.Is(err, ErrDependencyUnavailable):
			respond.Error(c, http.StatusBadGateway, "dependency_unavailable", "analysis collaborator failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze document", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"success": true, "data": result})
}
