package dto

import (
	"time"
)

type CreateJobRequest struct {
	CompanyID     string `json:"company_id" validate:"required,uuid"`
	PositionTitle string `json:"position_title" validate:"required,min=1"`
	Status        string `json:"status" validate:"omitempty,is-job-status"`
	Priority      int    `json:"priority" validate:"omitempty,min=1,max=5"`

	JobPostURL *string `json:"job_post_url" validate:"omitempty,url"`
	JobNotes   *string `json:"job_notes"`

	About            *string `json:"about"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	Benefits         *string `json:"benefits"`

	// salary_max >= salary_min is deliberately not checked here; the server
	// owns that rule.
	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,min=0"`
	SalaryCurrency *string  `json:"salary_currency" validate:"omitempty,is-currency"`
	SalaryRaw      *string  `json:"salary_raw"`
	Location       *string  `json:"location"`
	IsRemote       bool     `json:"is_remote"`
	Department     *string  `json:"department"`
	EmploymentType *string  `json:"employment_type"`
	RoleType       *string  `json:"role_type" validate:"omitempty,is-role-type"`

	DatePosted      *time.Time `json:"date_posted"`
	DateApplied     *time.Time `json:"date_applied"`
	DateInterviewed *time.Time `json:"date_interviewed"`
	DateOffered     *time.Time `json:"date_offered"`
	DateDeadline    *time.Time `json:"date_deadline"`
	DateAccepted    *time.Time `json:"date_accepted"`
	DateRejected    *time.Time `json:"date_rejected"`
	DateFollowUp    *time.Time `json:"date_follow_up"`
}

type UpdateJobRequest struct {
	CompanyID     *string `json:"company_id" validate:"omitempty,uuid"`
	PositionTitle *string `json:"position_title" validate:"omitempty,min=1"`
	Status        *string `json:"status" validate:"omitempty,is-job-status"`
	Priority      *int    `json:"priority" validate:"omitempty,min=1,max=5"`

	JobPostURL *string `json:"job_post_url" validate:"omitempty,url"`
	JobNotes   *string `json:"job_notes"`

	About            *string `json:"about"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	Benefits         *string `json:"benefits"`

	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,min=0"`
	SalaryCurrency *string  `json:"salary_currency" validate:"omitempty,is-currency"`
	SalaryRaw      *string  `json:"salary_raw"`
	Location       *string  `json:"location"`
	IsRemote       *bool    `json:"is_remote"`
	Department     *string  `json:"department"`
	EmploymentType *string  `json:"employment_type"`
	RoleType       *string  `json:"role_type" validate:"omitempty,is-role-type"`

	DatePosted      *time.Time `json:"date_posted"`
	DateApplied     *time.Time `json:"date_applied"`
	DateInterviewed *time.Time `json:"date_interviewed"`
	DateOffered     *time.Time `json:"date_offered"`
	DateDeadline    *time.Time `json:"date_deadline"`
	DateAccepted    *time.Time `json:"date_accepted"`
	DateRejected    *time.Time `json:"date_rejected"`
	DateFollowUp    *time.Time `json:"date_follow_up"`

	ArchivedAt *time.Time `json:"archived_at"`
}

// ListQuery binds the list-view query parameters shared by the jobs and
// companies pages.
type ListQuery struct {
	Q       string `form:"q"`
	Status  string `form:"status" validate:"omitempty,is-job-status"`
	Size    string `form:"size" validate:"omitempty,is-company-size"`
	Sort    string `form:"sort"`
	Order   string `form:"order" validate:"omitempty,oneof=asc desc"`
	Columns string `form:"columns"`
}
