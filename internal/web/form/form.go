// Package form parses and validates the HTML forms of the site.
//
// Every text field is trimmed on parse. Optional fields left blank become
// nil when converted to models, never "".
package form

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/linkshelf/linkshelf/internal/db/models"
)

var validate = validator.New() //nolint:gochecknoglobals

type (
	// Link is the admin form for creating and editing links.
	Link struct {
		Name        string `validate:"required"`
		URL         string `validate:"required"`
		Folder      string
		Subfolder   string
		Password    string
		Description string
		ImageURL    string
		Visible     bool
	}

	// Suggestion is the public suggestion form.
	Suggestion struct {
		Name        string `validate:"required"`
		URL         string `validate:"required"`
		Description string
		ImageURL    string
		Folder      string
		Subfolder   string
	}

	// Background is the appearance form.
	Background struct {
		URL string `validate:"required,url"`
	}

	// ErrorResponse describes one failed field.
	ErrorResponse struct {
		FailedField string
		Tag         string
		Value       interface{}
	}
)

// Validate validates data and returns one entry per failed field.
func Validate(data interface{}) []ErrorResponse {
	var out []ErrorResponse

	errs := validate.Struct(data)
	if errs == nil {
		return nil
	}

	validationErrors, ok := errs.(validator.ValidationErrors) //nolint:errorlint // never wrapped
	if !ok {
		return []ErrorResponse{{Tag: errs.Error()}}
	}

	for _, err := range validationErrors {
		out = append(out, ErrorResponse{
			FailedField: err.Field(),
			Tag:         err.Tag(),
			Value:       err.Value(),
		})
	}

	return out
}

// ParseLink reads the link form of the request.
func ParseLink(c *fiber.Ctx) Link {
	return Link{
		Name:        value(c, "name"),
		URL:         value(c, "url"),
		Folder:      value(c, "folder"),
		Subfolder:   value(c, "subfolder"),
		Password:    value(c, "password"),
		Description: value(c, "description"),
		ImageURL:    value(c, "image_url"),
		Visible:     checked(c, "visible"),
	}
}

// LinkFrom fills the form from a stored link, for the edit view.
func LinkFrom(l *models.Link) Link {
	return Link{
		Name:        l.Name,
		URL:         l.URL,
		Folder:      models.StringValue(l.Folder),
		Subfolder:   models.StringValue(l.Subfolder),
		Password:    models.StringValue(l.Password),
		Description: models.StringValue(l.Description),
		ImageURL:    models.StringValue(l.ImageURL),
		Visible:     l.Visible,
	}
}

// Model converts the form to a link. Blank optional fields become nil.
func (f Link) Model() *models.Link {
	return &models.Link{
		Name:        f.Name,
		URL:         f.URL,
		Visible:     f.Visible,
		Folder:      models.OptionalString(f.Folder),
		Subfolder:   models.OptionalString(f.Subfolder),
		Password:    models.OptionalString(f.Password),
		Description: models.OptionalString(f.Description),
		ImageURL:    models.OptionalString(f.ImageURL),
	}
}

// ParseSuggestion reads the suggestion form of the request.
func ParseSuggestion(c *fiber.Ctx) Suggestion {
	return Suggestion{
		Name:        value(c, "name"),
		URL:         value(c, "url"),
		Description: value(c, "description"),
		ImageURL:    value(c, "image_url"),
		Folder:      value(c, "folder"),
		Subfolder:   value(c, "subfolder"),
	}
}

// Model converts the form to a suggestion. Blank optional fields become nil.
func (f Suggestion) Model() *models.Suggestion {
	return &models.Suggestion{
		Name:        f.Name,
		URL:         f.URL,
		Description: models.OptionalString(f.Description),
		ImageURL:    models.OptionalString(f.ImageURL),
		Folder:      models.OptionalString(f.Folder),
		Subfolder:   models.OptionalString(f.Subfolder),
	}
}

// ParseBackground reads the appearance form of the request.
func ParseBackground(c *fiber.Ctx) Background {
	return Background{URL: value(c, "background_image")}
}

func value(c *fiber.Ctx, key string) string {
	return strings.TrimSpace(c.FormValue(key))
}

func checked(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(c.FormValue(key)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
