package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the recurring domain errors.
*/

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into
// the terminal "not found" state. Not retried.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists reports a uniqueness conflict.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrDatabase wraps a failed read/write against the persistence boundary.
// The triggering view keeps its last-good state; retries are user-initiated.
func ErrDatabase(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "persistence", "Operation failed", http.StatusBadGateway)
}

// ErrInvalidOperation reports an operation the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Uploads ---

// ErrUploadRejected wraps a storage-side rejection of an upload. The widget
// keeps the file selection so the user can correct and retry.
func ErrUploadRejected(err error) *AppError {
	return Wrap(err, CodeUploadRejected, "upload", "Upload was rejected", http.StatusBadGateway)
}

// ErrFileTooLarge - the file exceeds the configured maximum size.
var ErrFileTooLarge = New(
	CodeFileTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - the file extension is not on the allow-list.
var ErrInvalidFileType = New(
	CodeInvalidFileType,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
