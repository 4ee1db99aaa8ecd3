package handler

import (
	"github.com/gofiber/fiber/v2"

	"medimate/internal/service"
)

// Dependencies are the collaborators the HTTP layer is wired to.
type Dependencies struct {
	DB          Pinger
	Medications service.MedicationService
	History     service.HistoryService
	Info        AppInfo
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/about", About(deps.Info))

	meds := app.Group("/medications")
	meds.Get("", ListMedications(deps.Medications))
	meds.Post("", CreateMedication(deps.Medications))
	meds.Get("/:id", GetMedication(deps.Medications))
	meds.Put("/:id", UpdateMedication(deps.Medications))
	meds.Delete("/:id", DeleteMedication(deps.Medications))
	meds.Post("/:id/take", MarkTaken(deps.Medications))

	app.Get("/history", ListHistory(deps.History))
	app.Post("/exports/history", ExportHistory(deps.History))
}
