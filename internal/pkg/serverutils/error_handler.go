package serverutils

import (
	"errors"

	"ai-chatbot-be/internal/pkg/apperror"
	"ai-chatbot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler builds the app-wide fiber error handler. Application
// errors map to their HTTP status with the message exposed; anything else
// is logged and hidden behind a generic 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			if appErr.Kind == apperror.KindPersistence {
				log.Error("http", "persistence failure", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
				return ctx.Status(appErr.StatusCode()).JSON(fiber.Map{"error": "Internal server error"})
			}
			return ctx.Status(appErr.StatusCode()).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
