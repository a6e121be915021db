package dto

import (
	"milldesk/internal/core/id"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/pkg/badge"
)

// --- Request DTOs ---

// QualityInput is one quality in a company create/update payload.
// ID is present when an existing quality is kept across an update.
type QualityInput struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name" binding:"required"`
	PayableRate    string `json:"payableRate" binding:"required"`
	ReceivableRate string `json:"receivableRate" binding:"required"`
}

func (q *QualityInput) toEntity(companyID id.ID) *quality.Quality {
	ent := quality.New(companyID, q.Name, q.PayableRate, q.ReceivableRate)
	if q.ID != "" {
		if parsed, err := id.Parse(q.ID); err == nil {
			ent.ID = parsed
		}
	}
	return ent
}

// CreateCompanyRequest is the request body for creating a company.
type CreateCompanyRequest struct {
	Code          string         `json:"code"`
	Name          string         `json:"name" binding:"required"`
	ContactPerson *string        `json:"contactPerson"`
	Phone         *string        `json:"phone"`
	Address       *string        `json:"address"`
	Qualities     []QualityInput `json:"qualities" binding:"required,min=1,dive"`
}

// ToEntity converts DTO to domain entity owned by the given user.
func (r *CreateCompanyRequest) ToEntity(userID id.ID) *company.Company {
	c := company.NewCompany(r.Code, r.Name, userID)
	c.ContactPerson = r.ContactPerson
	c.Phone = r.Phone
	c.Address = r.Address
	c.Qualities = make([]*quality.Quality, len(r.Qualities))
	for i := range r.Qualities {
		c.Qualities[i] = r.Qualities[i].toEntity(c.ID)
	}
	return c
}

// UpdateCompanyRequest is the request body for updating a company.
// The submitted quality set replaces the stored one wholesale.
type UpdateCompanyRequest struct {
	Code          string         `json:"code"`
	Name          string         `json:"name" binding:"required"`
	ContactPerson *string        `json:"contactPerson"`
	Phone         *string        `json:"phone"`
	Address       *string        `json:"address"`
	Qualities     []QualityInput `json:"qualities" binding:"required,min=1,dive"`
	Version       int            `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCompanyRequest) ApplyTo(c *company.Company) {
	if r.Code != "" {
		c.Code = r.Code
	}
	c.Name = r.Name
	c.ContactPerson = r.ContactPerson
	c.Phone = r.Phone
	c.Address = r.Address
	c.Version = r.Version
	c.Qualities = make([]*quality.Quality, len(r.Qualities))
	for i := range r.Qualities {
		c.Qualities[i] = r.Qualities[i].toEntity(c.ID)
	}
}

// --- Response DTOs ---

// QualityResponse is one quality in a company response. Badge carries
// the deterministic display color class for the quality chip.
type QualityResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	PayableRate    string      `json:"payableRate"`
	ReceivableRate string      `json:"receivableRate"`
	Badge          badge.Class `json:"badge"`
}

// CompanyResponse is the response body for a company.
type CompanyResponse struct {
	ID            string            `json:"id"`
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	ContactPerson *string           `json:"contactPerson,omitempty"`
	Phone         *string           `json:"phone,omitempty"`
	Address       *string           `json:"address,omitempty"`
	Qualities     []QualityResponse `json:"qualities"`
	DeletionMark  bool              `json:"deletionMark"`
	Version       int               `json:"version"`
}

// FromCompany creates response DTO from domain entity. rowIndex is the
// company's position in the rendered list and offsets the badge color
// rotation, so adjacent rows do not repeat the same palette.
func FromCompany(c *company.Company, rowIndex int) *CompanyResponse {
	qualities := make([]QualityResponse, len(c.Qualities))
	for i, q := range c.Qualities {
		qualities[i] = QualityResponse{
			ID:             q.ID.String(),
			Name:           q.Name,
			PayableRate:    q.PayableRate,
			ReceivableRate: q.ReceivableRate,
			Badge:          badge.Color(i, rowIndex),
		}
	}

	return &CompanyResponse{
		ID:            c.ID.String(),
		Code:          c.Code,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Address:       c.Address,
		Qualities:     qualities,
		DeletionMark:  c.DeletionMark,
		Version:       c.Version,
	}
}
