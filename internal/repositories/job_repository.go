package repositories

import (
	"context"

	"apptrack/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	List(ctx context.Context) ([]*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// List returns every job with its owning company preloaded, in insertion
// order. Ordering for display is the list view engine's concern.
func (r *jobRepository) List(ctx context.Context) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Order("created_at ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Attachments").
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
