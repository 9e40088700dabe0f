package auth

import (
	"strings"

	"evanails-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

type PinLoginRequest struct {
	Pin string `json:"pin"`
}

// POST /api/auth/pin
// The admin panel is gated by a single shared PIN. This is deliberately a
// plain string comparison, not a security boundary; the token it issues only
// keeps the dashboard tabs from hitting 401s on every call.
func PinLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PinLoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(body.Pin) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "PIN is required")
		}

		if body.Pin != cfg.AdminPin {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid PIN. Please try again.")
		}

		token, err := GenerateToken(cfg.JWTSecret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create token")
		}

		return c.JSON(fiber.Map{
			"token": token,
		})
	}
}
