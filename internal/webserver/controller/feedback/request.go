package feedback

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// payload holds the feedback fields shared by both accepted request shapes
type payload struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Mobile    string `json:"mobile" validate:"omitempty,max=15"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

// tokenValidation identifies the magic link a submission claims to redeem
type tokenValidation struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// submitRequest accepts either a flat body, with the feedback fields and the
// verification token at the top level, or a structured one with separate
// feedback_data and validation objects.
type submitRequest struct {
	payload
	CaptchaToken string `json:"captcha_token"`
	MagicToken   string `json:"magic_token"`

	FeedbackData *payload         `json:"feedback_data"`
	Validation   *tokenValidation `json:"validation"`
}

// normalize flattens both request shapes into a single payload and the
// verification pair to check it against
func (r submitRequest) normalize() (payload, tokenValidation) {
	entry := r.payload
	if r.FeedbackData != nil {
		entry = *r.FeedbackData
	}

	verification := tokenValidation{Email: entry.Email, Token: r.MagicToken}
	if r.Validation != nil {
		verification = *r.Validation
	}

	return entry, verification
}

// validatePayload checks the feedback fields before any store is touched,
// returning one message per offending field
func (f *Controller) validatePayload(entry payload) map[string]string {
	errs := map[string]string{}

	err := f.validate.Struct(entry)
	if err == nil {
		return errs
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs["payload"] = "invalid payload"
		return errs
	}

	for _, fieldError := range fieldErrors {
		field := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errs[field] = fmt.Sprintf("%s cannot be empty", field)
		case "email":
			errs[field] = "incorrect email address"
		case "min", "max":
			if field == "rating" {
				errs[field] = "rating must be between 1 and 5"
			} else {
				errs[field] = fmt.Sprintf("%s is too long", field)
			}
		default:
			errs[field] = fmt.Sprintf("%s is not valid", field)
		}
	}

	return errs
}
