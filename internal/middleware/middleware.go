package middleware

import (
	"Culinary-Alchemy/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}
