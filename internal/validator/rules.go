package validator

import (
	"log"

	"apptrack/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the enum validation tags built on the
// vocabularies in internal/models.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a boot-time error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-currency", validateCurrency)
	mustRegister("is-role-type", validateRoleType)
	mustRegister("is-company-size", validateCompanySize)
	mustRegister("is-attachment-type", validateAttachmentType)
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' tag's concern
	}
	return models.JobStatus(value).Valid()
}

func validateCurrency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Currency(value).Valid()
}

func validateRoleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.RoleType(value).Valid()
}

func validateCompanySize(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.CompanySize(value).Valid()
}

func validateAttachmentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.AttachmentType(value).Valid()
}
