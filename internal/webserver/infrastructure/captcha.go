package infrastructure

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// ReCaptcha checks challenge tokens against Google's verification endpoint.
// Only the boolean outcome is used, score and error codes are ignored.
type ReCaptcha struct {
	Secret string
}

type siteVerifyResponse struct {
	Success bool `json:"success"`
}

func (r *ReCaptcha) Verify(token string) (bool, error) {
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("secret", r.Secret)
	args.Set("response", token)

	agent := fiber.Post(siteVerifyURL)
	_, body, errs := agent.Form(args).Bytes()
	if len(errs) > 0 {
		log.Printf("error verifying captcha challenge: %s\n", errs[0])
		return false, errs[0]
	}

	var verification siteVerifyResponse
	if err := json.Unmarshal(body, &verification); err != nil {
		return false, err
	}

	return verification.Success, nil
}
