package models

import (
	"time"
)

// Attachment is a file uploaded against a job. Attachments are immutable:
// changing one means delete and re-upload.
type Attachment struct {
	ID    string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID string `gorm:"type:uuid;not null;index" json:"job_id"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"-"`

	Type      AttachmentType `gorm:"default:'other_document'" json:"type"`
	Path      string         `gorm:"not null" json:"-"`   // storage path, internal
	URL       string         `json:"file"`                // dereferenceable URL
	Filename  string         `json:"filename"`
	MimeType  *string        `json:"mime_type"`
	SizeBytes *int64         `json:"size_bytes"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
