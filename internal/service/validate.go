package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"medimate/internal/model"
)

const (
	msgRequired        = "Please fill in Name, Dose, and Schedule."
	msgNameTooLong     = "Medication name is too long (max 60 chars)."
	msgDoseTooLong     = "Dose is too long (max 60 chars)."
	msgScheduleTooLong = "Schedule is too long (max 40 chars)."
)

var validate = validator.New()

// ValidationError carries a user-facing message. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// normalizeInput trims every field of in.
func normalizeInput(in model.MedicationInput) model.MedicationInput {
	return model.MedicationInput{
		Name:     strings.TrimSpace(in.Name),
		Dose:     strings.TrimSpace(in.Dose),
		Schedule: strings.TrimSpace(in.Schedule),
		Notes:    strings.TrimSpace(in.Notes),
	}
}

// validateInput reports the first failing rule. Missing fields win over length checks,
// and length checks run in field order: name, dose, schedule.
func validateInput(in model.MedicationInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return &ValidationError{Message: msgRequired}
		}
	}

	switch verrs[0].Field() {
	case "Name":
		return &ValidationError{Message: msgNameTooLong}
	case "Dose":
		return &ValidationError{Message: msgDoseTooLong}
	default:
		return &ValidationError{Message: msgScheduleTooLong}
	}
}
