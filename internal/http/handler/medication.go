package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"medimate/internal/model"
	"medimate/internal/service"
)

const (
	msgMedicationNotFound = "medication not found"
	msgTakeNotFound       = "Medication not found."
)

// pathID reads :id and returns it in canonical lower-case hyphenated form.
// uuid.Parse also accepts urn:uuid:, braced and unhyphenated spellings.
func pathID(c *fiber.Ctx) (string, bool) {
	u, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func parseInput(c *fiber.Ctx) (model.MedicationInput, error) {
	var in model.MedicationInput
	err := c.BodyParser(&in)
	return in, err
}

// ListMedications godoc
// @Summary List medications
// @Description Ordered by schedule label, then name. Each item carries last_taken.
// @Tags medications
// @Produce json
// @Success 200 {object} service.MedicationListResult
// @Router /medications [get]
func ListMedications(svc service.MedicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, msgMedicationNotFound)
		}
		return c.JSON(res)
	}
}

// CreateMedication godoc
// @Summary Add a medication
// @Tags medications
// @Accept json
// @Produce json
// @Param medication body model.MedicationInput true "Medication"
// @Success 201 {object} model.Medication
// @Failure 400 {object} errorPayload
// @Router /medications [post]
func CreateMedication(svc service.MedicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a medication")
		}
		med, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, msgMedicationNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(med)
	}
}

// GetMedication godoc
// @Summary Get a medication
// @Tags medications
// @Produce json
// @Param id path string true "Medication ID"
// @Success 200 {object} model.Medication
// @Failure 404 {object} errorPayload
// @Router /medications/{id} [get]
func GetMedication(svc service.MedicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		med, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, msgMedicationNotFound)
		}
		return c.JSON(med)
	}
}

// UpdateMedication godoc
// @Summary Edit a medication
// @Tags medications
// @Accept json
// @Produce json
// @Param id path string true "Medication ID"
// @Param medication body model.MedicationInput true "Medication"
// @Success 200 {object} model.Medication
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /medications/{id} [put]
func UpdateMedication(svc service.MedicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		in, err := parseInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a medication")
		}
		med, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err, msgMedicationNotFound)
		}
		return c.JSON(med)
	}
}

// DeleteMedication godoc
// @Summary Delete a medication and its dose history
// @Tags medications
// @Param id path string true "Medication ID"
// @Success 204
// @Router /medications/{id} [delete]
func DeleteMedication(svc service.MedicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, msgMedicationNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MarkTaken godoc
// @Summary Mark a medication as taken
// @Tags medications
// @Produce json
// @Param id path string true "Medication ID"
// @Success 201 {object} model.DoseLog
// @Failure 404 {object} errorPayload
// @Router /medications/{id}/take [post]
func MarkTaken(svc service.MedicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		log, err := svc.MarkTaken(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, msgTakeNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(log)
	}
}
