package magiclink

import (
	"time"

	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/go-playground/validator/v10"
)

type magicLinksRepository interface {
	Save(link *model.MagicLink) error
	FindActiveByEmail(email string) (*model.MagicLink, error)
	FindActiveByEmailAndToken(email, token string) (*model.MagicLink, error)
	MarkUsed(link *model.MagicLink) error
}

type linkEmail interface {
	Send(address, subject, body string) error
}

type Controller struct {
	repository magicLinksRepository
	sender     linkEmail
	validate   *validator.Validate
	config     Config
}

type Config struct {
	// FrontendURL is the base URL the emailed feedback links point to
	FrontendURL string
	// TTL is how long an issued link stays redeemable
	TTL time.Duration
}

func NewController(repository magicLinksRepository, sender linkEmail, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		sender:     sender,
		validate:   validator.New(),
		config:     cfg,
	}
}
