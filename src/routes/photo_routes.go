package routes

import (
	"Backend-Masons-Leads/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func PhotoRoutes(router fiber.Router, ctrl *controllers.PhotoController, listAccess, downloadAccess fiber.Handler) {
	photos := router.Group("/photos")

	photos.Get("/", listAccess, ctrl.ListPhotos)
	photos.Get("/:gridFSId", downloadAccess, ctrl.GetPhoto)
}
