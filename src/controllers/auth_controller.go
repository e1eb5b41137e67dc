package controllers

import (
	"errors"

	"Backend-Masons-Leads/src/services/admins"
	"Backend-Masons-Leads/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminAuthenticator interface {
	Login(name, password string) (string, error)
}

type AuthController struct {
	svc AdminAuthenticator
}

func NewAuthController(svc AdminAuthenticator) *AuthController {
	return &AuthController{svc: svc}
}

type loginIn struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges admin credentials for a Bearer token accepted by the photo endpoints
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body loginIn true "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/admin/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in loginIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, err := ac.svc.Login(in.Name, in.Password)
	if err != nil {
		if errors.Is(err, admins.ErrInvalidCredentials) {
			return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{"token": token})
}
