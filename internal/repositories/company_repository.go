package repositories

import (
	"context"

	"apptrack/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]*models.Company, error)
	GetByID(ctx context.Context, id string) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) error
	ListJobs(ctx context.Context, companyID string) ([]*models.Job, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// List returns every company in insertion order.
func (r *companyRepository) List(ctx context.Context) ([]*models.Company, error) {
	var companies []*models.Company
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&companies).Error
	return companies, err
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListJobs returns the jobs owned by one company.
func (r *companyRepository) ListJobs(ctx context.Context, companyID string) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&jobs).Error
	return jobs, err
}
