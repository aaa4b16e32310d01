package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"apptrack/internal/cache"
	"apptrack/internal/logger"
	"apptrack/internal/models"
	"apptrack/internal/repositories"
	"apptrack/internal/services/dto"
	"apptrack/internal/storage"
	"apptrack/pkg/apperrors"

	"gorm.io/gorm"
)

type AttachmentService interface {
	Upload(ctx context.Context, req *dto.UploadAttachmentRequest, file *multipart.FileHeader) (*models.Attachment, error)
	GetAttachment(ctx context.Context, id string) (*models.Attachment, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Attachment, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *models.Attachment, error)
	Delete(ctx context.Context, id string) error
}

type attachmentService struct {
	repo    repositories.AttachmentRepository
	jobRepo repositories.JobRepository
	storage storage.Storage
	cache   *cache.Store

	maxSize     int64
	allowedExts map[string]bool
}

func NewAttachmentService(
	repo repositories.AttachmentRepository,
	jobRepo repositories.JobRepository,
	store storage.Storage,
	recordCache *cache.Store,
	maxSize int64,
	allowedExtensions []string,
) AttachmentService {
	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &attachmentService{
		repo:        repo,
		jobRepo:     jobRepo,
		storage:     store,
		cache:       recordCache,
		maxSize:     maxSize,
		allowedExts: allowed,
	}
}

// Upload validates the file against the extension allow-list and size limit,
// stores the bytes under a random name and records the attachment. The
// original filename survives as display metadata only.
func (s *attachmentService) Upload(ctx context.Context, req *dto.UploadAttachmentRequest, file *multipart.FileHeader) (*models.Attachment, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.allowedExts[ext] {
		badType := *apperrors.ErrInvalidFileType
		return nil, badType.WithDetails(map[string]interface{}{
			"filename":  file.Filename,
			"extension": ext,
		})
	}
	if file.Size > s.maxSize {
		tooLarge := *apperrors.ErrFileTooLarge
		return nil, tooLarge.WithDetails(map[string]interface{}{
			"size_bytes": file.Size,
			"max_bytes":  s.maxSize,
		})
	}

	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.ErrUploadRejected(err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	path := fmt.Sprintf("attachments/%s/%s%s", req.JobID, randomHex(16), ext)

	if err := s.storage.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.ErrUploadRejected(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.ErrUploadRejected(err)
	}

	attachment := &models.Attachment{
		JobID:     req.JobID,
		Type:      models.AttachmentTypeOtherDocument,
		Path:      path,
		URL:       url,
		Filename:  file.Filename,
		SizeBytes: &file.Size,
	}
	if req.Type != "" {
		attachment.Type = models.AttachmentType(req.Type)
	}
	if contentType != "" {
		attachment.MimeType = &contentType
	}

	if err := s.repo.Create(ctx, attachment); err != nil {
		// Orphaned bytes are worse than a retried upload.
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			logger.CtxWarn(ctx, "failed to clean up stored file after create failure",
				"path", path, "error", delErr)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.Invalidate(cache.KindJobs, req.JobID)
	logger.CtxInfo(ctx, "attachment uploaded",
		"attachment_id", attachment.ID,
		"job_id", req.JobID,
		"filename", file.Filename,
		"size_bytes", file.Size,
	)
	return attachment, nil
}

func (s *attachmentService) GetAttachment(ctx context.Context, id string) (*models.Attachment, error) {
	attachment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return attachment, nil
}

func (s *attachmentService) ListByJob(ctx context.Context, jobID string) ([]*models.Attachment, error) {
	attachments, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return attachments, nil
}

// Open returns the stored bytes plus the attachment metadata, for serving
// and for the viewer.
func (s *attachmentService) Open(ctx context.Context, id string) (io.ReadCloser, *models.Attachment, error) {
	attachment, err := s.GetAttachment(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.Get(ctx, attachment.Path)
	if err != nil {
		return nil, nil, apperrors.ErrNotFound(err)
	}
	return reader, attachment, nil
}

// Delete removes the record and then the stored file. An id the database no
// longer knows is reported, not swallowed: the caller's view is stale and
// should refresh.
func (s *attachmentService) Delete(ctx context.Context, id string) error {
	attachment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}

	// The record is gone; a leftover file is a warning, not a failure.
	if err := s.storage.Delete(ctx, attachment.Path); err != nil {
		logger.CtxWarn(ctx, "failed to delete stored file",
			"attachment_id", id, "path", attachment.Path, "error", err)
	}

	s.cache.Invalidate(cache.KindJobs, attachment.JobID)
	logger.CtxInfo(ctx, "attachment deleted", "attachment_id", id, "job_id", attachment.JobID)
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failing means the process is unusable
	}
	return hex.EncodeToString(b)
}
