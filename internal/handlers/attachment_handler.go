package handlers

import (
	"io"
	"net/http"
	"strings"

	"apptrack/internal/services"
	"apptrack/internal/services/dto"
	"apptrack/internal/storage"
	"apptrack/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	BaseHandler
	service services.AttachmentService
	viewer  services.ViewerService
	storage storage.Storage
}

func NewAttachmentHandler(
	base BaseHandler,
	service services.AttachmentService,
	viewerSvc services.ViewerService,
	store storage.Storage,
) *AttachmentHandler {
	return &AttachmentHandler{
		BaseHandler: base,
		service:     service,
		viewer:      viewerSvc,
		storage:     store,
	}
}

func (h *AttachmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	attachments := r.Group("/attachments")
	{
		attachments.POST("", h.Upload)
		attachments.GET(":attachmentId", h.Get)
		attachments.GET(":attachmentId/view", h.View)
		attachments.GET(":attachmentId/download", h.Download)
		attachments.DELETE(":attachmentId", h.Delete)
	}

	r.GET("/jobs/:jobId/attachments", h.ListByJob)
	r.GET("/files/*filepath", h.ServeFile)
}

// Upload accepts a multipart form: "file" plus the owning job id and an
// optional attachment type.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	var req dto.UploadAttachmentRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid upload form"))
		return
	}
	if !h.validate(c, &req) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing file"))
		return
	}

	attachment, err := h.service.Upload(c.Request.Context(), &req, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// ListByJob returns a job's attachments, newest first.
func (h *AttachmentHandler) ListByJob(c *gin.Context) {
	attachments, err := h.service.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

func (h *AttachmentHandler) Get(c *gin.Context) {
	attachment, err := h.service.GetAttachment(c.Request.Context(), c.Param("attachmentId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachment)
}

// View renders the preview for one attachment: mode plus text or HTML for
// text-like files, a bare URL for PDFs.
func (h *AttachmentHandler) View(c *gin.Context) {
	session := h.viewer.OpenSession()
	defer session.Close()

	content, err := h.viewer.Render(c.Request.Context(), session, c.Param("attachmentId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// Download streams the raw stored bytes.
func (h *AttachmentHandler) Download(c *gin.Context) {
	reader, attachment, err := h.service.Open(c.Request.Context(), c.Param("attachmentId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	contentType := "application/octet-stream"
	if attachment.MimeType != nil {
		contentType = *attachment.MimeType
	}
	c.Header("Content-Disposition", `inline; filename="`+attachment.Filename+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("attachmentId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ServeFile serves stored files by path, backing the URLs that attachments
// carry.
func (h *AttachmentHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid file path"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
