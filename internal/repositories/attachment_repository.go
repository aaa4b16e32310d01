package repositories

import (
	"context"

	"apptrack/internal/models"

	"gorm.io/gorm"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id string) (*models.Attachment, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Attachment, error)
	Delete(ctx context.Context, id string) error
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *attachmentRepository) GetByID(ctx context.Context, id string) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := r.db.WithContext(ctx).First(&attachment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListByJob returns a job's attachments, newest first.
func (r *attachmentRepository) ListByJob(ctx context.Context, jobID string) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("uploaded_at DESC").
		Find(&attachments).Error
	return attachments, err
}

// Delete removes one attachment. Deleting an id that no longer exists is a
// reportable failure, not silently ignored.
func (r *attachmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Attachment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
