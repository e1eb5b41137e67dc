package controllers

import (
	"context"
	"errors"
	"log"
	"strings"

	"Backend-Masons-Leads/src/services/leads"
	"Backend-Masons-Leads/src/services/photos"
	"Backend-Masons-Leads/src/utils"

	"github.com/gofiber/fiber/v2"
)

type LeadSubmitter interface {
	Submit(ctx context.Context, in leads.SubmitInput) error
}

type LeadController struct {
	svc LeadSubmitter
}

func NewLeadController(svc LeadSubmitter) *LeadController {
	return &LeadController{svc: svc}
}

// SubmitForm godoc
// @Summary      Submit a lead
// @Description  Accepts JSON or multipart form data; media-buying leads may attach images in "photos"
// @Tags         leads
// @Accept       json,mpfd
// @Produce      json
// @Param        body body leads.SubmitInput true "Lead fields"
// @Success      200  {object}  models.SubmitResponse
// @Failure      400  {object}  models.SubmitResponse
// @Failure      409  {object}  models.SubmitResponse
// @Failure      500  {object}  models.SubmitResponse
// @Router       /api/submit-form [post]
func (lc *LeadController) SubmitForm(c *fiber.Ctx) error {
	var in leads.SubmitInput
	if err := parseSubmitBody(c, &in); err != nil {
		log.Println("[leads] error parsing form:", err)
		return utils.SubmitResult(c, fiber.StatusInternalServerError, "Failed to submit form")
	}

	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			log.Println("[leads] error reading multipart form:", err)
			return utils.SubmitResult(c, fiber.StatusInternalServerError, "Failed to submit form")
		}
		for _, fh := range form.File["photos"] {
			in.Photos = append(in.Photos, photos.FromFileHeader(fh))
		}
	}

	err := lc.svc.Submit(c.UserContext(), in)

	var leadErr *leads.Error
	switch {
	case err == nil:
		return utils.SubmitResult(c, fiber.StatusOK, "Form submitted successfully")
	case errors.As(err, &leadErr) && errors.Is(err, leads.ErrValidation):
		return utils.SubmitResult(c, fiber.StatusBadRequest, leadErr.Message)
	case errors.As(err, &leadErr) && errors.Is(err, leads.ErrConflict):
		return utils.SubmitResult(c, fiber.StatusConflict, leadErr.Message)
	default:
		log.Println("[leads] error submitting form:", err)
		return utils.SubmitResult(c, fiber.StatusInternalServerError, "Failed to submit form")
	}
}

// parseSubmitBody treats a body without a Content-Type header as JSON.
func parseSubmitBody(c *fiber.Ctx, in *leads.SubmitInput) error {
	if len(c.Request().Header.ContentType()) == 0 {
		return c.App().Config().JSONDecoder(c.Body(), in)
	}
	return c.BodyParser(in)
}
