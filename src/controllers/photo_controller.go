package controllers

import (
	"context"
	"errors"
	"log"

	"Backend-Masons-Leads/src/models"
	"Backend-Masons-Leads/src/services/photos"

	"github.com/gofiber/fiber/v2"
)

type PhotoReader interface {
	ListFolders(ctx context.Context) ([]models.PhotoFolder, error)
	OpenPhoto(ctx context.Context, id string) ([]byte, error)
}

type PhotoController struct {
	svc PhotoReader
}

func NewPhotoController(svc PhotoReader) *PhotoController {
	return &PhotoController{svc: svc}
}

// ListPhotos godoc
// @Summary      List photo folders
// @Tags         photos
// @Produce      json
// @Param        password query string false "Shared gallery password"
// @Success      200  {object}  map[string][]models.PhotoFolder
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/photos [get]
func (pc *PhotoController) ListPhotos(c *fiber.Ctx) error {
	folders, err := pc.svc.ListFolders(c.UserContext())
	if err != nil {
		log.Println("[photos] error fetching folders:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch photos"})
	}
	return c.JSON(fiber.Map{"users": folders})
}

// GetPhoto godoc
// @Summary      Download one photo
// @Description  Always answers with image/jpeg regardless of the stored type
// @Tags         photos
// @Produce      jpeg
// @Param        gridFSId path string true "Stored photo ID"
// @Param        password query string false "Shared gallery password"
// @Success      200
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/photos/{gridFSId} [get]
func (pc *PhotoController) GetPhoto(c *fiber.Ctx) error {
	data, err := pc.svc.OpenPhoto(c.UserContext(), c.Params("gridFSId"))
	if err != nil {
		if errors.Is(err, photos.ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
		}
		log.Println("[photos] error fetching photo:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch photo"})
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(data)
}
