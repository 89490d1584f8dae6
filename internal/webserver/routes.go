package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, cfg Config, controllers Controllers) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Feedbox backend is running",
		})
	})

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", controllers.Auth.SignIn)
	authGroup.Post("/logout", controllers.Auth.SignOut)
	authGroup.Post("/magic-link/send", controllers.MagicLinks.Send)
	authGroup.Post("/magic-link/verify", controllers.MagicLinks.Verify)

	feedbackGroup := api.Group("/feedback")
	feedbackGroup.Post("/", controllers.Feedback.Submit)
	feedbackGroup.Get("/", AlwaysRequireAuthentication(cfg.JwtSecret), RequireAdmin, controllers.Feedback.List)
}
