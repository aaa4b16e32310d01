package services

import (
	"context"
	"io"

	"apptrack/internal/models"
	"apptrack/internal/storage"
	"apptrack/internal/viewer"
	"apptrack/pkg/apperrors"
)

type ViewerService interface {
	OpenSession() *viewer.Session
	Render(ctx context.Context, session *viewer.Session, attachmentID string) (*viewer.Content, error)
}

type viewerService struct {
	attachments AttachmentService
	storage     storage.Storage
}

func NewViewerService(attachments AttachmentService, store storage.Storage) ViewerService {
	return &viewerService{attachments: attachments, storage: store}
}

// OpenSession starts a viewer session backed by the storage layer.
func (s *viewerService) OpenSession() *viewer.Session {
	return viewer.NewSession(s.fetch)
}

// Render resolves the attachment and renders its preview inside the session.
func (s *viewerService) Render(ctx context.Context, session *viewer.Session, attachmentID string) (*viewer.Content, error) {
	attachment, err := s.attachments.GetAttachment(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	return session.View(ctx, attachment)
}

func (s *viewerService) fetch(ctx context.Context, attachment *models.Attachment) ([]byte, error) {
	reader, err := s.storage.Get(ctx, attachment.Path)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return raw, nil
}
