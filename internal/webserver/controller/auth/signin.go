package auth

import (
	"time"

	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn checks the posted credentials and gives the user a JWT cookie
func (a *Controller) SignIn(c *fiber.Ctx) error {
	var request signInRequest

	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	// If email or password are incorrect, do not allow access.
	user, err := a.repository.FindByEmail(request.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || user.Password != model.Hash(request.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "wrong email or password")
	}

	// Send back JWT as a cookie.
	expiration := time.Now().UTC().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "feedbox",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"status": "success",
		"name":   user.Name,
		"email":  user.Email,
	})
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": model.Session{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Uuid:  user.Uuid,
			Role:  user.Role,
		},
		"exp": jwt.NewNumericDate(expiration),
	},
	)

	return token.SignedString(secret)
}
