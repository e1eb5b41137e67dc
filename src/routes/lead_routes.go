package routes

import (
	"Backend-Masons-Leads/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func LeadRoutes(router fiber.Router, ctrl *controllers.LeadController) {
	router.Post("/submit-form", ctrl.SubmitForm)
}
