package ledger

import (
	"bytes"
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
	rg.GET("/write-offs", h.listWriteOffs)
	rg.GET("/write-offs/export", h.exportWriteOffs)
	rg.PATCH("/write-offs/:id/status", h.reviewWriteOff)
	rg.GET("/revenue", h.listRevenue)
	rg.GET("/balance-sheet", h.listBalanceSheet)
}

func (h *Handler) listWriteOffs(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	offs, err := h.Svc.ListWriteOffs(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list write-offs", nil)
		return
	}
	if offs == nil {
		offs = []WriteOff{}
	}
	respond.JSON(c, http.StatusOK, gin.H{"writeOffs": offs})
}

func (h *Handler) exportWriteOffs(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var buf bytes.Buffer
	if err := h.Svc.ExportWriteOffsCSV(c.Request.Context(), userID, &buf); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export write-offs", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="write-offs.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

type reviewRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) reviewWriteOff(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "status is required", nil)
		return
	}
	err := h.Svc.ReviewWriteOff(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "write-off not found", nil)
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusUnprocessableEntity, "invalid_status", "write-off is not pending or status is not approved/rejected", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update write-off", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

func (h *Handler) listRevenue(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	records, err := h.Svc.ListRevenue(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list revenue", nil)
		return
	}
	if records == nil {
		records = []RevenueRecord{}
	}
	respond.JSON(c, http.StatusOK, gin.H{"revenue": records})
}

func (h *Handler) listBalanceSheet(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	items, err := h.Svc.ListBalanceSheet(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list balance sheet", nil)
		return
	}
	if items == nil {
		items = []BalanceSheetItem{}
	}
	respond.JSON(c, http.StatusOK, gin.H{"balanceSheet": items})
}
