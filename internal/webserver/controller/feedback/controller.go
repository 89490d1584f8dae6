package feedback

import (
	"reflect"
	"strings"

	"github.com/feedbox/feedbox/internal/result"
	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/go-playground/validator/v10"
)

// Verification modes a deployment can run with
const (
	VerificationCaptcha   = "captcha"
	VerificationMagicLink = "magiclink"
	VerificationNone      = "none"
)

type feedbackRepository interface {
	FindByEmail(email string) (*model.Feedback, error)
	Create(feedback *model.Feedback) error
	Update(feedback *model.Feedback) error
	List(page, resultsPerPage int, sortBy, sortDirection string) (result.Paginated[[]model.Feedback], error)
}

type magicLinksRepository interface {
	FindActiveByEmailAndToken(email, token string) (*model.MagicLink, error)
	MarkUsed(link *model.MagicLink) error
}

type captchaVerifier interface {
	Verify(token string) (bool, error)
}

type Controller struct {
	repository feedbackRepository
	magicLinks magicLinksRepository
	captcha    captchaVerifier
	validate   *validator.Validate
	config     Config
}

type Config struct {
	// VerificationMode selects how submissions are verified
	VerificationMode string
}

func NewController(repository feedbackRepository, magicLinks magicLinksRepository, captcha captchaVerifier, cfg Config) *Controller {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Controller{
		repository: repository,
		magicLinks: magicLinks,
		captcha:    captcha,
		validate:   validate,
		config:     cfg,
	}
}
