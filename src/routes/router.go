package routes

import (
	"Backend-Masons-Leads/src/controllers"
	"Backend-Masons-Leads/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything the routes need, built once in main.
type Handlers struct {
	Leads          *controllers.LeadController
	Photos         *controllers.PhotoController
	Auth           *controllers.AuthController
	PhotosPassword string
	Tokens         middleware.TokenParser
}

func InitRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	LeadRoutes(api, h.Leads)
	PhotoRoutes(api, h.Photos,
		middleware.PhotoAccess(h.PhotosPassword, h.Tokens),
		middleware.PhotoDownloadAccess(h.PhotosPassword, h.Tokens),
	)
	if h.Auth != nil {
		AuthRoutes(api, h.Auth)
	}

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
