package magiclink

import (
	"github.com/gofiber/fiber/v2"
)

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// Verify reports whether an email and token pair can still be redeemed,
// without consuming it. Wrong, expired and already used tokens get the very
// same response, so callers cannot probe which addresses hold live links.
func (m *Controller) Verify(c *fiber.Ctx) error {
	var request verifyRequest

	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if err := m.validate.Struct(request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired magic link")
	}

	link, err := m.repository.FindActiveByEmailAndToken(request.Email, request.Token)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired magic link")
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"message":    "Magic link is valid",
		"expires_at": link.ExpiresAt,
	})
}
