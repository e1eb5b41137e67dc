// error_utils.go
package utils

import (
	"Backend-Masons-Leads/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// SubmitResult answers the submit endpoint with its {success, message} body.
func SubmitResult(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.SubmitResponse{
		Success: status == fiber.StatusOK,
		Message: message,
	})
}
