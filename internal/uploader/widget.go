// Package uploader models the attachment upload widget attached to a job:
// pick a file, pick a type, submit. One upload in flight at a time; a failed
// upload keeps the selection so the user can retry.
package uploader

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"apptrack/internal/models"
	"apptrack/pkg/apperrors"
)

type State string

const (
	StateIdle              State = "idle"
	StateSelected          State = "selected"
	StateUploading         State = "uploading"
	StateSelectedWithError State = "selected_with_error"
)

// SelectedFile is the pending local file.
type SelectedFile struct {
	Name    string
	Content []byte
}

// UploadFunc performs the actual upload.
type UploadFunc func(ctx context.Context, jobID string, file SelectedFile, attType models.AttachmentType) (*models.Attachment, error)

// Widget is one upload control, bound to a job.
type Widget struct {
	jobID  string
	upload UploadFunc

	mu      sync.Mutex
	state   State
	file    *SelectedFile
	attType models.AttachmentType
	errMsg  string
}

func NewWidget(jobID string, upload UploadFunc) *Widget {
	return &Widget{
		jobID:   jobID,
		upload:  upload,
		state:   StateIdle,
		attType: models.AttachmentTypeOtherDocument,
	}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// File returns the current selection, nil when idle.
func (w *Widget) File() *SelectedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file
}

// Error returns the message from the last failed submit. Empty unless the
// widget is in the selected-with-error state.
func (w *Widget) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Select stages a file. Picking a new file replaces the old selection and
// clears any previous error. Rejected while an upload is in flight.
func (w *Widget) Select(name string, content []byte) error {
	if !AllowedExtension(name) {
		return apperrors.ErrInvalidFileType
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateUploading {
		return apperrors.ErrInvalidOperation("upload", "an upload is already in progress")
	}
	w.file = &SelectedFile{Name: name, Content: content}
	w.state = StateSelected
	w.errMsg = ""
	return nil
}

// SetType changes the attachment type for the next submit.
func (w *Widget) SetType(t models.AttachmentType) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.attType = t
}

// Clear drops the selection and any error, returning the widget to idle.
func (w *Widget) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateUploading {
		return
	}
	w.file = nil
	w.errMsg = ""
	w.state = StateIdle
}

// Submit uploads the staged file. On success the widget resets to idle; on
// failure the selection is kept and the error message exposed, so retrying
// is a plain Submit again.
func (w *Widget) Submit(ctx context.Context) (*models.Attachment, error) {
	w.mu.Lock()
	if w.state == StateUploading {
		w.mu.Unlock()
		return nil, apperrors.ErrInvalidOperation("upload", "an upload is already in progress")
	}
	if w.file == nil {
		w.mu.Unlock()
		return nil, apperrors.ErrInvalidOperation("upload", "no file selected")
	}
	file := *w.file
	attType := w.attType
	w.state = StateUploading
	w.errMsg = ""
	w.mu.Unlock()

	attachment, err := w.upload(ctx, w.jobID, file, attType)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = StateSelectedWithError
		w.errMsg = err.Error()
		return nil, err
	}

	w.file = nil
	w.errMsg = ""
	w.state = StateIdle
	return attachment, nil
}

// AllowedExtension reports whether the filename passes the upload allow-list.
func AllowedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt", ".md":
		return true
	}
	return false
}
