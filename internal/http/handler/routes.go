package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"studioapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; everything routes through services.
func RegisterRoutes(app *fiber.App, db *sql.DB, workSvc service.WorkService, contactSvc service.ContactService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/works", ListWorks(workSvc))
	app.Post("/works", CreateWork(workSvc))
	app.Get("/works/:id", GetWork(workSvc))
	app.Get("/works/:id/related", RelatedWorks(workSvc))

	app.Post("/api/contact", SubmitContact(contactSvc))
}
