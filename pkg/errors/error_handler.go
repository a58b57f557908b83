package errors

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleError maps an APIError onto an HTTP status and a JSON body.
// Anything that is not an APIError becomes a generic 500.
func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := err.(*APIError); ok {
		if ae.Err != nil {
			log.Warn("request failed", zap.String("code", ae.Code), zap.Error(ae.Err))
		}

		var status int
		switch ae.Code {
		case "missing_param", "invalid_url", "no_file", "not_pdf":
			status = fiber.StatusBadRequest
		case "file_too_large":
			status = fiber.StatusRequestEntityTooLarge
		case "not_found":
			status = fiber.StatusNotFound
		default:
			status = fiber.StatusInternalServerError
		}

		body := fiber.Map{"error": ae.Message}
		if ae.Err != nil {
			body["details"] = ae.Err.Error()
		}
		return c.Status(status).JSON(body)
	}

	log.Error("unexpected error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Server error",
	})
}
