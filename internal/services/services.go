package services

// ServiceContainer bundles the application services for injection into the
// handler layer.
type ServiceContainer struct {
	Companies   CompanyService
	Jobs        JobService
	Attachments AttachmentService
	Viewer      ViewerService
}
