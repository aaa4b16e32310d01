package services

import (
	"context"
	"errors"

	"apptrack/internal/cache"
	"apptrack/internal/logger"
	"apptrack/internal/models"
	"apptrack/internal/repositories"
	"apptrack/internal/services/dto"
	"apptrack/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobService interface {
	ListJobs(ctx context.Context) ([]*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type jobService struct {
	repo        repositories.JobRepository
	companyRepo repositories.CompanyRepository
	cache       *cache.Store
}

func NewJobService(repo repositories.JobRepository, companyRepo repositories.CompanyRepository, store *cache.Store) JobService {
	return &jobService{repo: repo, companyRepo: companyRepo, cache: store}
}

// ListJobs returns the full collection with companies preloaded so the
// list view can derive the company column. Served from cache when fresh.
func (s *jobService) ListJobs(ctx context.Context) ([]*models.Job, error) {
	if cached, ok := s.cache.GetList(cache.KindJobs); ok {
		if jobs, ok := cached.([]*models.Job); ok {
			return jobs, nil
		}
	}

	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.SetList(cache.KindJobs, jobs)
	return jobs, nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	if cached, ok := s.cache.GetRecord(cache.KindJobs, id); ok {
		if job, ok := cached.(*models.Job); ok {
			return job, nil
		}
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.SetRecord(cache.KindJobs, id, job)
	return job, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if _, err := uuid.Parse(req.CompanyID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid company id")
	}

	// The owning company must exist; a dangling reference is the caller's
	// mistake, not a persistence failure.
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	job := &models.Job{
		CompanyID:        req.CompanyID,
		PositionTitle:    req.PositionTitle,
		JobPostURL:       req.JobPostURL,
		JobNotes:         req.JobNotes,
		About:            req.About,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryRaw:        req.SalaryRaw,
		Location:         req.Location,
		IsRemote:         req.IsRemote,
		Department:       req.Department,
		EmploymentType:   req.EmploymentType,
		DatePosted:       req.DatePosted,
		DateApplied:      req.DateApplied,
		DateInterviewed:  req.DateInterviewed,
		DateOffered:      req.DateOffered,
		DateDeadline:     req.DateDeadline,
		DateAccepted:     req.DateAccepted,
		DateRejected:     req.DateRejected,
		DateFollowUp:     req.DateFollowUp,
	}
	job.Status = models.JobStatusBookmarked
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	job.Priority = 3
	if req.Priority != 0 {
		job.Priority = req.Priority
	}
	if req.SalaryCurrency != nil {
		currency := models.Currency(*req.SalaryCurrency)
		job.SalaryCurrency = &currency
	}
	if req.RoleType != nil {
		roleType := models.RoleType(*req.RoleType)
		job.RoleType = &roleType
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.Invalidate(cache.KindJobs)
	s.cache.Invalidate(cache.KindCompanies, req.CompanyID)
	logger.CtxInfo(ctx, "job created",
		"job_id", job.ID,
		"company_id", job.CompanyID,
		"position", job.PositionTitle,
	)
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	if req.CompanyID != nil {
		if _, err := uuid.Parse(*req.CompanyID); err != nil {
			return nil, apperrors.NewBadRequestError("invalid company id")
		}
		if _, err := s.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.ErrDatabase(err)
		}
		job.CompanyID = *req.CompanyID
		job.Company = nil
	}
	if req.PositionTitle != nil {
		job.PositionTitle = *req.PositionTitle
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}
	if req.Priority != nil {
		job.Priority = *req.Priority
	}
	if req.JobPostURL != nil {
		job.JobPostURL = req.JobPostURL
	}
	if req.JobNotes != nil {
		job.JobNotes = req.JobNotes
	}
	if req.About != nil {
		job.About = req.About
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = req.Responsibilities
	}
	if req.Benefits != nil {
		job.Benefits = req.Benefits
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		currency := models.Currency(*req.SalaryCurrency)
		job.SalaryCurrency = &currency
	}
	if req.SalaryRaw != nil {
		job.SalaryRaw = req.SalaryRaw
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}
	if req.Department != nil {
		job.Department = req.Department
	}
	if req.EmploymentType != nil {
		job.EmploymentType = req.EmploymentType
	}
	if req.RoleType != nil {
		roleType := models.RoleType(*req.RoleType)
		job.RoleType = &roleType
	}
	if req.DatePosted != nil {
		job.DatePosted = req.DatePosted
	}
	if req.DateApplied != nil {
		job.DateApplied = req.DateApplied
	}
	if req.DateInterviewed != nil {
		job.DateInterviewed = req.DateInterviewed
	}
	if req.DateOffered != nil {
		job.DateOffered = req.DateOffered
	}
	if req.DateDeadline != nil {
		job.DateDeadline = req.DateDeadline
	}
	if req.DateAccepted != nil {
		job.DateAccepted = req.DateAccepted
	}
	if req.DateRejected != nil {
		job.DateRejected = req.DateRejected
	}
	if req.DateFollowUp != nil {
		job.DateFollowUp = req.DateFollowUp
	}
	if req.ArchivedAt != nil {
		job.ArchivedAt = req.ArchivedAt
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.cache.Invalidate(cache.KindJobs, id)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}

	s.cache.Invalidate(cache.KindJobs, id)
	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}
