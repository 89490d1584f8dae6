package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/feedbox/feedbox/internal/webserver"
	"github.com/feedbox/feedbox/internal/webserver/infrastructure"
	"github.com/feedbox/feedbox/internal/webserver/model"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	run(cfg)
}

func run(cfg Config) {
	var sender webserver.Sender

	db := infrastructure.Connect(cfg.DbPath)

	sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
			FromName: cfg.SmtpFromName,
		}
	}

	webserverConfig := webserver.Config{
		JwtSecret:        cfg.JwtSecret,
		FrontendURL:      cfg.FrontendURL,
		VerificationMode: cfg.VerificationMode,
		MagicLinkTTL:     time.Duration(cfg.MagicLinkTTLHours) * time.Hour,
		SessionTimeout:   time.Duration(cfg.SessionTimeoutHours) * time.Hour,
		CorsOrigins:      cfg.CorsOrigins,
	}

	captcha := &infrastructure.ReCaptcha{Secret: cfg.CaptchaSecret}

	controllers := webserver.SetupControllers(webserverConfig, db, sender, captcha)
	app := webserver.New(webserverConfig, controllers)

	go sweepExpiredLinks(&model.MagicLinkRepository{DB: db}, time.Duration(cfg.CleanupIntervalMinutes)*time.Minute)

	fmt.Printf("Feedbox version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

// sweepExpiredLinks periodically removes magic links past their expiry date.
// Expired links are already unredeemable before the sweep runs, this only
// keeps the table from growing unbounded.
func sweepExpiredLinks(magicLinks *model.MagicLinkRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		removed, err := magicLinks.DeleteExpired(time.Now().UTC())
		if err != nil {
			continue
		}
		if removed > 0 {
			log.Println(fmt.Sprintf("Removed %d expired magic links", removed))
		}
	}
}
