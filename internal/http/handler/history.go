package handler

import (
	"github.com/gofiber/fiber/v2"

	"medimate/internal/service"
)

// ListHistory godoc
// @Summary Dose history
// @Description Newest first, capped at 250 rows. day=today limits to the current local day.
// @Tags history
// @Produce json
// @Param day query string false "today"
// @Success 200 {object} service.HistoryResult
// @Router /history [get]
func ListHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.History(c.UserContext(), c.Query("day"))
		if err != nil {
			return writeServiceError(c, err, "history not found")
		}
		return c.JSON(res)
	}
}

// ExportHistory godoc
// @Summary Export dose history as CSV to object storage
// @Tags history
// @Produce json
// @Param day query string false "today"
// @Success 201 {object} service.ExportResult
// @Failure 503 {object} errorPayload
// @Router /exports/history [post]
func ExportHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext(), c.Query("day"))
		if err != nil {
			return writeServiceError(c, err, "history not found")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
