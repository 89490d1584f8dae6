package magiclink

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type sendRequest struct {
	Email string `json:"email" validate:"required,email,max=120"`
}

// Send issues a fresh magic link for the given address and mails it out.
// Any link still active for that address is superseded first, so at most one
// link per address can be redeemed at any time. The token only travels
// inside the email, never in the response.
func (m *Controller) Send(c *fiber.Ctx) error {
	var request sendRequest

	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if err := m.validate.Struct(request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect email address")
	}

	token, err := model.SecureToken(model.TokenLength)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	active, err := m.repository.FindActiveByEmail(request.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if active != nil {
		if err = m.repository.MarkUsed(active); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	link := &model.MagicLink{
		Uuid:      uuid.NewString(),
		Email:     request.Email,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(m.config.TTL),
	}
	if err = m.repository.Save(link); err != nil {
		return fiber.ErrInternalServerError
	}

	// The link stays redeemable even if delivery fails, so a retried send
	// for the same address supersedes it instead of piling up live links.
	if err = m.sender.Send(request.Email, "Your feedback link", m.composeBody(request.Email, token)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to send magic link email")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Magic link sent to your email",
	})
}

// composeBody builds the HTML body around the feedback URL. The email and
// token query parameter names are a contract with the frontend.
func (m *Controller) composeBody(email, token string) string {
	feedbackURL := fmt.Sprintf(
		"%s/feedback?email=%s&token=%s",
		m.config.FrontendURL,
		url.QueryEscape(email),
		token,
	)

	return fmt.Sprintf(`
		<p>Hello,</p>
		<p>Thank you for your interest in sharing your feedback. Please use the link below to submit it:</p>
		<p><a href="%s">Submit feedback</a></p>
		<p>This link can be used once and expires in %s hours.</p>
		<p>If you did not request it, you can safely ignore this email.</p>`,
		feedbackURL,
		strconv.FormatFloat(m.config.TTL.Hours(), 'f', -1, 64),
	)
}
