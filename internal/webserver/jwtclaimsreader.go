package webserver

import (
	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func sessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		userDataMap := claims["userdata"].(map[string]interface{})
		if value, ok := userDataMap["ID"].(float64); ok {
			session.ID = uint(value)
		}
		if value, ok := userDataMap["Name"].(string); ok {
			session.Name = value
		}
		if value, ok := userDataMap["Email"].(string); ok {
			session.Email = value
		}
		if value, ok := userDataMap["Role"].(float64); ok {
			session.Role = int(value)
		}
		if value, ok := userDataMap["Uuid"].(string); ok {
			session.Uuid = value
		}

		session.Exp = claims["exp"].(float64)
	}

	return session
}
