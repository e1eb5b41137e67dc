package leads

import (
	"fmt"
	"strings"

	"Backend-Masons-Leads/src/services/photos"

	"github.com/go-playground/validator/v10"
)

// SubmitInput is the union of every field any role's form may send.
type SubmitInput struct {
	UserType       string `json:"userType" form:"userType" validate:"max=32"`
	FullName       string `json:"fullName" form:"fullName" validate:"max=256"`
	Telegram       string `json:"telegram" form:"telegram" validate:"max=256"`
	TeamName       string `json:"teamName" form:"teamName" validate:"max=256"`
	Niche          string `json:"niche" form:"niche" validate:"max=512"`
	Vertical       string `json:"vertical" form:"vertical" validate:"max=512"`
	TrafficSources string `json:"trafficSources" form:"trafficSources" validate:"max=1024"`
	Brand          string `json:"brand" form:"brand" validate:"max=256"`
	Geolocation    string `json:"geolocation" form:"geolocation" validate:"max=512"`
	Contacts       string `json:"contacts" form:"contacts" validate:"max=512"`
	Service        string `json:"service" form:"service" validate:"max=256"`
	Terms          string `json:"terms" form:"terms" validate:"max=2048"`
	Description    string `json:"description" form:"description" validate:"max=4096"`

	Photos []photos.UploadedFile `json:"-" form:"-" validate:"-"`
}

const tagAtLeastOne = "at_least_one"

func (in SubmitInput) hasIdentity() bool {
	return in.FullName != "" || in.Brand != "" || in.Service != "" || in.Contacts != "" || in.Telegram != ""
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(SubmitInput)
		if !in.hasIdentity() {
			sl.ReportError(in.FullName, "fullName", "FullName", tagAtLeastOne, "")
		}
	}, SubmitInput{})
	return v
}

func validateInput(v *validator.Validate, in SubmitInput) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return validationError("Invalid input")
	}

	var tooLong []string
	for _, fe := range verrs {
		if fe.Tag() == tagAtLeastOne {
			return validationError("Please fill at least one required field")
		}
		tooLong = append(tooLong, fe.Field())
	}
	return validationError(fmt.Sprintf("Field too long: %s", strings.Join(tooLong, ", ")))
}
