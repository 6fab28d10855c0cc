package usecase

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"blogpress/internal/entity"
	"blogpress/pkg/password"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type signupInput struct {
	Name     string `json:"name" validate:"min=2"`
	Email    string `json:"email" validate:"emailaddr"`
	Password string `json:"password" validate:"min=6,bcryptlen"`
}

type postInput struct {
	Title     string   `json:"title" validate:"min=3"`
	Content   string   `json:"content" validate:"min=10"`
	Thumbnail string   `json:"thumbnail" validate:"required,thumbnail"`
	Tags      []string `json:"tags" validate:"min=1,dive,category"`
}

// fieldMessages maps "field.rule" to the message returned to the client.
// A bare field key is the fallback for any rule on that field.
var fieldMessages = map[string]string{
	"name":               "Name must be at least 2 characters long",
	"email":              "Please enter a valid email address",
	"password":           "Password must be at least 6 characters long",
	"password.bcryptlen": "Password must be at most 72 bytes long",
	"title":              "Title must be at least 3 characters long",
	"content":            "Content must be at least 10 characters long",
	"thumbnail":          "Thumbnail must be a valid image file",
	"thumbnail.required": "Thumbnail image is required",
	"tags":               "Tags must be one of: Business, Gaming, Technology, Health, News",
	"tags.min":           "At least one tag is required",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= password.MaxLength
	})
	_ = v.RegisterValidation("thumbnail", func(fl validator.FieldLevel) bool {
		return hasImageExtension(fl.Field().String())
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).Valid()
	})

	return v
}

func hasImageExtension(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range entity.ThumbnailExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// validationError converts validator output into an entity.ValidationError,
// keeping the first failure per field.
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := fields[field]; seen {
			continue
		}
		if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
			fields[field] = msg
		} else if msg, ok := fieldMessages[field]; ok {
			fields[field] = msg
		} else {
			fields[field] = "Invalid value"
		}
	}
	return &entity.ValidationError{Fields: fields}
}
