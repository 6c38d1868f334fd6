package audits

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

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
	rg.POST("/audits", h.create)
	rg.GET("/audits", h.list)
	rg.GET("/audits/:id", h.get)
	rg.POST("/audits/:id/run", h.run)
}

type createItemRequest struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
}

type createRequest struct {
	Title string              `json:"title" binding:"required"`
	Items []createItemRequest `json:"items"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}
	in := NewAuditInput{Title: req.Title}
	for _, item := range req.Items {
		in.Items = append(in.Items, NewAuditItemInput{
			Category:    item.Category,
			Description: item.Description,
			Amount:      item.Amount,
			Status:      item.Status,
		})
	}
	audit, err := h.Svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid audit payload", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create audit", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, audit)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	auditList, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list audits", nil)
		return
	}
	if auditList == nil {
		auditList = []Audit{}
	}
	respond.JSON(c, http.StatusOK, gin.H{"audits": auditList})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	audit, items, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load audit", nil)
		}
		return
	}
	if items == nil {
		items = []AuditItem{}
	}
	respond.JSON(c, http.StatusOK, gin.H{"audit": audit, "items": items})
}

func (h *Handler) run(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	report, err := h.Svc.Run(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run audit", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"success": true, "data": report})
}
