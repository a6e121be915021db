package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"milldesk/internal/domain"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/worklog"
	"milldesk/internal/infrastructure/http/v1/dto"
)

// CompanyHandler handles company catalog endpoints. All operations are
// scoped to the authenticated user; the nested quality set travels with
// the company payload.
type CompanyHandler struct {
	*BaseHandler
	service  *company.Service
	worklogs *worklog.Service
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(base *BaseHandler, service *company.Service, worklogs *worklog.Service) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler: base,
		service:     service,
		worklogs:    worklogs,
	}
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	filter := domain.DefaultListFilter()
	filter.UserID = userID
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "name")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromCompany(item, i)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	companyID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	ent, err := h.service.GetOwned(ctx, companyID, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCompany(ent, 0))
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ent := req.ToEntity(userID)
	if err := h.service.Create(ctx, ent); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCompany(ent, 0))
}

// Update handles PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	companyID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetOwned(ctx, companyID, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(existing)
	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCompany(existing, 0))
}

// Delete handles DELETE /companies/:id - removes the company with its
// qualities and work log entries.
func (h *CompanyHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	companyID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, companyID, userID, h.worklogs); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
