package handlers

import (
	"apptrack/internal/services"
	"apptrack/internal/storage"
	"apptrack/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Companies   *CompanyHandler
	Jobs        *JobHandler
	Attachments *AttachmentHandler
}

// NewAppHandlers wires the handler layer over the service container.
func NewAppHandlers(container *services.ServiceContainer, store storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Companies:   NewCompanyHandler(base, container.Companies),
		Jobs:        NewJobHandler(base, container.Jobs),
		Attachments: NewAttachmentHandler(base, container.Attachments, container.Viewer, store),
	}
}
