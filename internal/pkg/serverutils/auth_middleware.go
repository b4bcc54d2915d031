package serverutils

import (
	"strings"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BearerToken pulls the session token from the Authorization header. A
// "Bearer " prefix is accepted but not required.
func BearerToken(ctx *fiber.Ctx) string {
	header := strings.TrimSpace(ctx.Get("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// RequireAuth rejects requests without a valid session token and stores
// the authenticated user in ctx.Locals ("user_id" and "user").
func RequireAuth(auth service.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := auth.ValidateToken(ctx.Context(), BearerToken(ctx))
		if err != nil {
			return err
		}
		ctx.Locals("user_id", user.Id)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// OptionalAuth resolves the session token when one is presented but lets
// anonymous requests through.
func OptionalAuth(auth service.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := BearerToken(ctx)
		if token == "" {
			return ctx.Next()
		}
		user, err := auth.ValidateToken(ctx.Context(), token)
		if err != nil {
			// An invalid token on an optional route is treated as absent.
			return ctx.Next()
		}
		ctx.Locals("user_id", user.Id)
		return ctx.Next()
	}
}

// UserID returns the authenticated user id set by the auth middleware, or
// nil for anonymous requests.
func UserID(ctx *fiber.Ctx) *uuid.UUID {
	if id, ok := ctx.Locals("user_id").(uuid.UUID); ok {
		return &id
	}
	return nil
}

// User returns the authenticated user set by RequireAuth.
func User(ctx *fiber.Ctx) *entity.User {
	if user, ok := ctx.Locals("user").(*entity.User); ok {
		return user
	}
	return nil
}
