package webserver

import (
	"github.com/feedbox/feedbox/internal/webserver/controller/auth"
	"github.com/feedbox/feedbox/internal/webserver/controller/feedback"
	"github.com/feedbox/feedbox/internal/webserver/controller/magiclink"
	"github.com/feedbox/feedbox/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth       *auth.Controller
	MagicLinks *magiclink.Controller
	Feedback   *feedback.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender, captcha CaptchaVerifier) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	magicLinksRepository := &model.MagicLinkRepository{DB: db}
	feedbackRepository := &model.FeedbackRepository{DB: db}

	authController := auth.NewController(
		usersRepository,
		auth.Config{
			Secret:         cfg.JwtSecret,
			SessionTimeout: cfg.SessionTimeout,
		},
	)

	magicLinkController := magiclink.NewController(
		magicLinksRepository,
		sender,
		magiclink.Config{
			FrontendURL: cfg.FrontendURL,
			TTL:         cfg.MagicLinkTTL,
		},
	)

	feedbackController := feedback.NewController(
		feedbackRepository,
		magicLinksRepository,
		captcha,
		feedback.Config{
			VerificationMode: cfg.VerificationMode,
		},
	)

	return Controllers{
		Auth:       authController,
		MagicLinks: magicLinkController,
		Feedback:   feedbackController,
	}
}
