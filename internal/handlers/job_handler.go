package handlers

import (
	"net/http"

	"apptrack/internal/listview"
	"apptrack/internal/services"
	"apptrack/internal/services/dto"
	"apptrack/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	service services.JobService
}

func NewJobHandler(base BaseHandler, service services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, service: service}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.POST("", h.Create)
		jobs.GET(":jobId", h.Get)
		jobs.PUT(":jobId", h.Update)
		jobs.DELETE(":jobId", h.Delete)
	}
}

// List renders the jobs list view. Defaults apply when the query string is
// empty: priority descending, default columns, no filters.
func (h *JobHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	view := listview.NewJobsView()
	applyListQuery(view, &q)
	view.SetFilter("status", q.Status)

	renderList(c, view, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.service.GetJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), c.Param("jobId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteJob(c.Request.Context(), c.Param("jobId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
