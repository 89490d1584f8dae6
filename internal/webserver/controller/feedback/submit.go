package feedback

import (
	"log"

	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Submit stores the first entry for an email or applies its one allowed
// edit. In magic link mode the link is consumed only after the write
// succeeded, so a failed write can be retried with the same link.
func (f *Controller) Submit(c *fiber.Ctx) error {
	var request submitRequest

	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	entry, verification := request.normalize()

	if errs := f.validatePayload(entry); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"errors": errs,
		})
	}

	link, verificationRef, err := f.verify(request, entry, verification)
	if err != nil {
		return err
	}

	existing, err := f.repository.FindByEmail(entry.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	stored := existing
	if existing == nil {
		stored = &model.Feedback{
			Uuid:            uuid.NewString(),
			FirstName:       entry.FirstName,
			LastName:        entry.LastName,
			Email:           entry.Email,
			Mobile:          entry.Mobile,
			Rating:          entry.Rating,
			Comment:         entry.Comment,
			VerificationRef: verificationRef,
			SubmissionCount: 1,
		}
		if err = f.repository.Create(stored); err != nil {
			return fiber.ErrInternalServerError
		}
	} else {
		if !existing.Editable() {
			return fiber.NewError(fiber.StatusForbidden, "feedback already edited once")
		}
		existing.FirstName = entry.FirstName
		existing.LastName = entry.LastName
		existing.Mobile = entry.Mobile
		existing.Rating = entry.Rating
		existing.Comment = entry.Comment
		existing.VerificationRef = verificationRef
		existing.SubmissionCount = 2
		if err = f.repository.Update(existing); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	if link != nil {
		if err = f.magicLinks.MarkUsed(link); err != nil {
			log.Printf("feedback %s stored but its magic link could not be marked as used: %s\n", stored.Uuid, err)
		}
	}

	return c.JSON(fiber.Map{
		"status":           "success",
		"message":          "Feedback submitted successfully",
		"feedback_id":      stored.Uuid,
		"submission_count": stored.SubmissionCount,
	})
}

// verify resolves the configured verification mode for a submission,
// returning the magic link to consume later, if any, and an opaque reference
// to record alongside the entry
func (f *Controller) verify(request submitRequest, entry payload, verification tokenValidation) (*model.MagicLink, string, error) {
	switch f.config.VerificationMode {
	case VerificationCaptcha:
		success, err := f.captcha.Verify(request.CaptchaToken)
		if err != nil {
			return nil, "", fiber.ErrInternalServerError
		}
		if !success {
			return nil, "", fiber.NewError(fiber.StatusBadRequest, "invalid captcha")
		}
		return nil, "captcha", nil
	case VerificationMagicLink:
		link, err := f.magicLinks.FindActiveByEmailAndToken(verification.Email, verification.Token)
		if err != nil {
			return nil, "", fiber.ErrInternalServerError
		}
		if link == nil {
			return nil, "", fiber.NewError(fiber.StatusBadRequest, "invalid or expired magic link")
		}
		if link.Email != entry.Email {
			return nil, "", fiber.NewError(fiber.StatusBadRequest, "email does not match the magic link email")
		}
		return link, link.Uuid, nil
	default:
		return nil, "", nil
	}
}
