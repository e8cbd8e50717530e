package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dancanmurithi/portfolio/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, sections *handlers.ContentHandler, contact *handlers.ContactHandler, activity *handlers.GitHubHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	s := v1.Group("/sections")
	s.Get("/hero", sections.Hero)
	s.Get("/skills", sections.Skills)
	s.Get("/experience", sections.Experience)
	s.Get("/projects", sections.Projects)
	s.Get("/certifications", sections.Certifications)
	s.Get("/articles", sections.Articles)
	s.Get("/testimonials", sections.Testimonials)
	s.Get("/contact", sections.ContactInfo)
	s.Get("/education", sections.Education)

	v1.Post("/testimonials", sections.SubmitTestimonial)
	v1.Post("/contact", contact.Send)
	v1.Post("/github/activity", activity.Activity)
}
