package models

import (
	"gorm.io/datatypes"
)

// Company is an employer record. Name is always non-empty once persisted.
type Company struct {
	BaseModel
	Name         string         `gorm:"not null" json:"name"`
	Website      *string        `json:"website"`
	Notes        *string        `json:"notes"`
	IsNonprofit  bool           `gorm:"default:false" json:"is_nonprofit"`
	Industry     *string        `json:"industry"`
	Stage        *string        `json:"stage"`
	Funding      *string        `json:"funding"`
	Keywords     datatypes.JSON `gorm:"type:jsonb" json:"keywords"` // ordered list of tags
	FoundingYear *int           `json:"founding_year"`
	Size         *CompanySize   `json:"size"`

	Jobs []Job `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}
