package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"hirelane_backend/internal/models"
)

// registerCustomRules wires the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-stage", validateStage)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-employment-type", validateEmploymentType)
}

func validateStage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// Empty values are the 'required' tag's concern.
		return true
	}
	return models.Stage(value).Valid()
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobStatus(value).Valid()
}

func validateEmploymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.EmploymentType(value).Valid()
}
