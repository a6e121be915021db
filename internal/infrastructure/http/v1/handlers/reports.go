package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"milldesk/internal/core/apperror"
	"milldesk/internal/domain/reports"
	"milldesk/internal/infrastructure/http/v1/dto"
	"milldesk/internal/infrastructure/pdf"
)

// ReportsHandler handles dashboard stats, company stats, and the
// monthly PDF export.
type ReportsHandler struct {
	*BaseHandler
	service  *reports.Service
	renderer *pdf.Renderer
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, renderer *pdf.Renderer) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
		renderer:    renderer,
	}
}

// parseMonth reads the optional ?month=YYYY-MM query parameter.
func (h *ReportsHandler) parseMonth(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), true
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid month format, expected YYYY-MM"))
		return time.Time{}, false
	}
	return month, true
}

// Dashboard handles GET /reports/dashboard
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	stats, err := h.service.Dashboard(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboard(stats))
}

// CompanyStats handles GET /reports/companies/:id/stats?month=YYYY-MM
func (h *ReportsHandler) CompanyStats(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	companyID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	month, ok := h.parseMonth(c)
	if !ok {
		return
	}

	stats, err := h.service.CompanyStats(ctx, userID, companyID, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCompanyStats(stats))
}

// ExportMonthly handles GET /reports/companies/:id/worklog.pdf?month=YYYY-MM
// Streams the rendered monthly work log report as a PDF download.
func (h *ReportsHandler) ExportMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	companyID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	month, ok := h.parseMonth(c)
	if !ok {
		return
	}

	report, err := h.service.GenerateMonthly(ctx, userID, companyID, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	data, err := h.renderer.Render(report)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
