package http

import (
	"errors"
	"net/http"

	"blogpress/internal/entity"

	"github.com/gin-gonic/gin"
)

// AdminResponse is the public view of an admin.
type AdminResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toAdminResponse(admin *entity.Admin) *AdminResponse {
	if admin == nil {
		return nil
	}
	return &AdminResponse{ID: admin.ID, Name: admin.Name, Email: admin.Email}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

// abortWithValidation writes the 400 envelope when err carries field errors
// and reports whether it did.
func abortWithValidation(c *gin.Context, err error) bool {
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Validation failed",
		Errors: verr.Fields,
	})
	return true
}
