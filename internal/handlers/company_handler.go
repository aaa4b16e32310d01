package handlers

import (
	"net/http"

	"apptrack/internal/listview"
	"apptrack/internal/services"
	"apptrack/internal/services/dto"
	"apptrack/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	BaseHandler
	service services.CompanyService
}

func NewCompanyHandler(base BaseHandler, service services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, service: service}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.GET("", h.List)
		companies.POST("", h.Create)
		companies.GET(":companyId", h.Get)
		companies.PUT(":companyId", h.Update)
		companies.DELETE(":companyId", h.Delete)
		companies.GET(":companyId/jobs", h.ListJobs)
	}
}

// List renders the companies list view: query, size filter, sort and column
// selection all come from the query string.
func (h *CompanyHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	companies, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	view := listview.NewCompaniesView()
	applyListQuery(view, &q)
	view.SetFilter("size", q.Size)

	renderList(c, view, companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.service.GetCompany(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.service.UpdateCompany(c.Request.Context(), c.Param("companyId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteCompany(c.Request.Context(), c.Param("companyId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListJobs returns the company's jobs rendered through the jobs list view,
// so the detail page's job table behaves like the main jobs list.
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	jobs, err := h.service.ListCompanyJobs(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	view := listview.NewJobsView()
	applyListQuery(view, &q)
	view.SetFilter("status", q.Status)

	renderList(c, view, jobs)
}
