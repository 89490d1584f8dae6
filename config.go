package main

// Config defines the application settings, read from the environment on start up
type Config struct {
	// Port defines the port number in which the webserver listens for requests
	Port string `env:"PORT" env-default:"3000"`
	// DbPath defines the location of the SQLite database file
	DbPath string `env:"DB_PATH" env-default:"feedbox.db"`
	// FrontendURL is the base URL of the frontend, used to compose the links sent by email
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret []byte `env:"JWT_SECRET" env-required:"true"`
	// VerificationMode selects how submissions are verified: captcha, magiclink or none
	VerificationMode string `env:"VERIFICATION_MODE" env-default:"magiclink"`
	// MagicLinkTTLHours is the number of hours a magic link stays redeemable
	MagicLinkTTLHours int `env:"MAGIC_LINK_TTL_HOURS" env-default:"24"`
	// CleanupIntervalMinutes sets how often expired magic links are removed from the database
	CleanupIntervalMinutes int `env:"CLEANUP_INTERVAL_MINUTES" env-default:"60"`
	// SessionTimeoutHours sets the maximum session length in hours
	SessionTimeoutHours int `env:"SESSION_TIMEOUT_HOURS" env-default:"24"`
	// SmtpServer points to the address of the send mail server
	SmtpServer string `env:"SMTP_SERVER"`
	// SmtpPort defines the port in which the mail server listens for requests
	SmtpPort int `env:"SMTP_PORT" env-default:"587"`
	// SmtpUser holds the user to authenticate against the SMTP server
	SmtpUser string `env:"SMTP_USER"`
	// SmtpPassword holds the password to authenticate against the SMTP server
	SmtpPassword string `env:"SMTP_PASSWORD"`
	// SmtpFromName is the sender name shown in outgoing emails
	SmtpFromName string `env:"SMTP_FROM_NAME" env-default:"Feedbox"`
	// CaptchaSecret is the server-side key used to verify CAPTCHA challenges
	CaptchaSecret string `env:"CAPTCHA_SECRET"`
	// CorsOrigins lists the origins allowed to call the API, comma separated
	CorsOrigins string `env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
}
