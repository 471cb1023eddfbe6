package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
	"github.com/yanqian/diesel-reports/internal/domain/report"
	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	reportSvc  report.Service
	catalogSvc catalog.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(reportSvc report.Service, catalogSvc catalog.Service, logger *slog.Logger) *Handler {
	return &Handler{
		reportSvc:  reportSvc,
		catalogSvc: catalogSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Dashboard runs the aggregation pipeline for the posted filters.
func (h *Handler) Dashboard(c *gin.Context) {
	var req report.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.reportSvc.Dashboard(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DashboardStatus reports the state of the view for the filters in the query string.
func (h *Handler) DashboardStatus(c *gin.Context) {
	var req report.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, errMessage(err), err))
		return
	}
	status, err := h.reportSvc.DashboardStatus(req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, status)
}

// Consumption returns consumption rows with totals.
func (h *Handler) Consumption(c *gin.Context) {
	var req report.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.reportSvc.Consumption(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Efficiency returns per-unit efficiency rows.
func (h *Handler) Efficiency(c *gin.Context) {
	var req report.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.reportSvc.Efficiency(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EfficiencyDetail returns the movements behind one unit's efficiency row.
func (h *Handler) EfficiencyDetail(c *gin.Context) {
	var req report.DetailRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.reportSvc.EfficiencyDetail(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Productivity returns productivity rows annotated with severity bands.
func (h *Handler) Productivity(c *gin.Context) {
	var req report.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.reportSvc.Productivity(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cities lists the cities available as a filter.
func (h *Handler) Cities(c *gin.Context) {
	cities, err := h.catalogSvc.Cities(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// Tanks lists the tanks of the city given in the query string.
func (h *Handler) Tanks(c *gin.Context) {
	tanks, err := h.catalogSvc.Tanks(c.Request.Context(), strings.TrimSpace(c.Query("city")))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"tanks": tanks})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, errMessage(err), err))
		return false
	}
	return true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
