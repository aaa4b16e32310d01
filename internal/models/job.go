package models

import (
	"time"
)

// Job is a tracked job posting. Every job belongs to exactly one company;
// the relation is a non-owning back-reference from Job to Company.
type Job struct {
	BaseModel
	CompanyID string   `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	PositionTitle string    `gorm:"not null" json:"position_title"`
	Status        JobStatus `gorm:"default:'BOOKMARKED'" json:"status"`
	Priority      int       `gorm:"default:3" json:"priority"` // 1-5
	JobPostURL    *string   `json:"job_post_url"`
	JobNotes      *string   `json:"job_notes"`

	// Descriptive fields
	About            *string `json:"about"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	Benefits         *string `json:"benefits"`

	// Compensation and employment
	SalaryMin      *float64  `json:"salary_min"`
	SalaryMax      *float64  `json:"salary_max"` // max >= min is not enforced client-side
	SalaryCurrency *Currency `json:"salary_currency"`
	SalaryRaw      *string   `json:"salary_raw"` // unparsed salary text from the job post
	Location       *string   `json:"location"`
	IsRemote       bool      `gorm:"default:false" json:"is_remote"`
	Department     *string   `json:"department"`
	EmploymentType *string   `json:"employment_type"`
	RoleType       *RoleType `json:"role_type"`

	// Milestone dates
	DatePosted      *time.Time `json:"date_posted"`
	DateApplied     *time.Time `json:"date_applied"`
	DateInterviewed *time.Time `json:"date_interviewed"`
	DateOffered     *time.Time `json:"date_offered"`
	DateDeadline    *time.Time `json:"date_deadline"`
	DateAccepted    *time.Time `json:"date_accepted"`
	DateRejected    *time.Time `json:"date_rejected"`
	DateFollowUp    *time.Time `json:"date_follow_up"`

	ArchivedAt *time.Time `json:"archived_at"`

	Attachments []Attachment `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// CompanyName resolves the owning company's name, empty when the relation
// has not been loaded or is absent.
func (j *Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}
