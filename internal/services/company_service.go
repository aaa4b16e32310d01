package services

import (
	"context"
	"encoding/json"
	"errors"

	"apptrack/internal/cache"
	"apptrack/internal/logger"
	"apptrack/internal/models"
	"apptrack/internal/repositories"
	"apptrack/internal/services/dto"
	"apptrack/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	ListCompanyJobs(ctx context.Context, id string) ([]*models.Job, error)
}

type companyService struct {
	repo  repositories.CompanyRepository
	cache *cache.Store
}

func NewCompanyService(repo repositories.CompanyRepository, store *cache.Store) CompanyService {
	return &companyService{repo: repo, cache: store}
}

// ListCompanies serves the full collection, from cache when fresh.
func (s *companyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	if cached, ok := s.cache.GetList(cache.KindCompanies); ok {
		if companies, ok := cached.([]*models.Company); ok {
			return companies, nil
		}
	}

	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.SetList(cache.KindCompanies, companies)
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	if cached, ok := s.cache.GetRecord(cache.KindCompanies, id); ok {
		if company, ok := cached.(*models.Company); ok {
			return company, nil
		}
	}

	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.SetRecord(cache.KindCompanies, id, company)
	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:         req.Name,
		Website:      req.Website,
		Notes:        req.Notes,
		IsNonprofit:  req.IsNonprofit,
		Industry:     req.Industry,
		Stage:        req.Stage,
		Funding:      req.Funding,
		FoundingYear: req.FoundingYear,
	}
	if req.Size != nil {
		size := models.CompanySize(*req.Size)
		company.Size = &size
	}
	if len(req.Keywords) > 0 {
		raw, err := json.Marshal(req.Keywords)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		company.Keywords = datatypes.JSON(raw)
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.Invalidate(cache.KindCompanies)
	logger.CtxInfo(ctx, "company created", "company_id", company.ID, "name", company.Name)
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.Notes != nil {
		company.Notes = req.Notes
	}
	if req.IsNonprofit != nil {
		company.IsNonprofit = *req.IsNonprofit
	}
	if req.Industry != nil {
		company.Industry = req.Industry
	}
	if req.Stage != nil {
		company.Stage = req.Stage
	}
	if req.Funding != nil {
		company.Funding = req.Funding
	}
	if req.FoundingYear != nil {
		company.FoundingYear = req.FoundingYear
	}
	if req.Size != nil {
		size := models.CompanySize(*req.Size)
		company.Size = &size
	}
	if req.Keywords != nil {
		raw, err := json.Marshal(req.Keywords)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		company.Keywords = datatypes.JSON(raw)
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	// Company fields surface inside job rows (derived company column), so
	// the jobs list goes stale too.
	s.cache.Invalidate(cache.KindCompanies, id)
	s.cache.Invalidate(cache.KindJobs)
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}

	// Jobs cascade with the company.
	s.cache.Invalidate(cache.KindCompanies, id)
	s.cache.Invalidate(cache.KindJobs)
	logger.CtxInfo(ctx, "company deleted", "company_id", id)
	return nil
}

func (s *companyService) ListCompanyJobs(ctx context.Context, id string) ([]*models.Job, error) {
	if _, err := s.GetCompany(ctx, id); err != nil {
		return nil, err
	}

	jobs, err := s.repo.ListJobs(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return jobs, nil
}
