package routes

import (
	"Backend-Masons-Leads/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(router fiber.Router, ctrl *controllers.AuthController) {
	router.Post("/admin/login", ctrl.Login)
}
