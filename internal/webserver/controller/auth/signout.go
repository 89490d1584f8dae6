package auth

import (
	"github.com/gofiber/fiber/v2"
)

// SignOut logs out the user and removes their JWT
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "feedbox",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"status": "success",
	})
}
