package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"milldesk/internal/core/apperror"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/reports"
	"milldesk/internal/domain/worklog"
	"milldesk/internal/infrastructure/http/v1/dto"
)

// pageOf slices an in-memory result set the way LIMIT/OFFSET would.
func pageOf(entries []*worklog.Entry, offset, limit int) []*worklog.Entry {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) {
		return []*worklog.Entry{}
	}
	entries = entries[offset:]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// WorkLogHandler handles work log entry endpoints.
type WorkLogHandler struct {
	*BaseHandler
	service   *worklog.Service
	companies *company.Service
}

// NewWorkLogHandler creates a new work log handler.
func NewWorkLogHandler(base *BaseHandler, service *worklog.Service, companies *company.Service) *WorkLogHandler {
	return &WorkLogHandler{
		BaseHandler: base,
		service:     service,
		companies:   companies,
	}
}

// Create handles POST /worklogs
func (h *WorkLogHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkLogRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := req.ToEntity(userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	// The referenced company must belong to the caller.
	if _, err := h.companies.GetOwned(ctx, entry.CompanyID, userID); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, entry); err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.GetByID(ctx, entry.ID, userID)
	if err != nil {
		// Entry exists; fall back to the unresolved row.
		created = entry
	}

	c.JSON(http.StatusCreated, dto.FromWorkLog(created))
}

// List handles GET /worklogs
func (h *WorkLogHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.ListWorkLogsRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter(userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	var (
		entries []*worklog.Entry
		total   int64
	)
	if pred, ok := req.TextFilters(); ok {
		// Free-text filters match against joined columns, so the full
		// SQL result is filtered in memory and paged afterwards.
		full := filter
		full.Limit = 0
		full.Offset = 0
		all, err := h.service.List(ctx, full)
		if err != nil {
			h.Error(c, err)
			return
		}
		matched := reports.Apply(all, pred)
		total = int64(len(matched))
		entries = pageOf(matched, filter.Offset, filter.Limit)
	} else {
		entries, err = h.service.List(ctx, filter)
		if err != nil {
			h.Error(c, err)
			return
		}
		total, err = h.service.Count(ctx, filter)
		if err != nil {
			h.Error(c, err)
			return
		}
	}

	items := make([]any, len(entries))
	for i, e := range entries {
		items[i] = dto.FromWorkLog(e)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Get handles GET /worklogs/:id
func (h *WorkLogHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(ctx, entryID, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromWorkLog(entry))
}

// Delete handles DELETE /worklogs/:id
func (h *WorkLogHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, entryID, userID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteMonth handles DELETE /companies/:id/worklogs?month=YYYY-MM
// Removes all of the company's entries for one calendar month. Month
// defaults to the current one.
func (h *WorkLogHandler) DeleteMonth(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	companyID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid month format, expected YYYY-MM"))
			return
		}
		month = parsed
	}

	if _, err := h.companies.GetOwned(ctx, companyID, userID); err != nil {
		h.Error(c, err)
		return
	}

	deleted, err := h.service.DeleteMonth(ctx, companyID, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{Deleted: deleted})
}
