package dto

// UploadAttachmentRequest is bound from the multipart form; the file part
// travels separately.
type UploadAttachmentRequest struct {
	JobID string `form:"job" validate:"required,uuid"`
	Type  string `form:"type" validate:"omitempty,is-attachment-type"`
}
