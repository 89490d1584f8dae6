package webserver

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Sender sends emails to the outside world
type Sender interface {
	Send(address, subject, body string) error
	From() string
}

// CaptchaVerifier checks a CAPTCHA challenge token against an external service
type CaptchaVerifier interface {
	Verify(token string) (bool, error)
}

type Config struct {
	// JwtSecret stores the secret to be used to sign JWTs
	JwtSecret []byte
	// FrontendURL is the base URL used to compose the links sent by email
	FrontendURL string
	// VerificationMode selects how feedback submissions are verified
	VerificationMode string
	// MagicLinkTTL is how long an issued magic link stays redeemable
	MagicLinkTTL time.Duration
	// SessionTimeout is the maximum admin session length
	SessionTimeout time.Duration
	// CorsOrigins lists the origins allowed to call the API, comma separated
	CorsOrigins string
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "feedbox",
		ErrorHandler: errorHandler,
	})

	// Credentialed CORS cannot be combined with a wildcard origin
	corsConfig := cors.ConfigDefault
	if cfg.CorsOrigins != "" {
		corsConfig = cors.Config{
			AllowOrigins:     cfg.CorsOrigins,
			AllowMethods:     "GET,POST,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: true,
		}
	}
	app.Use(cors.New(corsConfig))

	routes(app, cfg, controllers)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "internal server error"

	// Retrieve the custom status code and message if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code == fiber.StatusInternalServerError {
		log.Println(err)
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
