package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps domain errors to HTTP statuses. Anything unrecognised is
// attached to the context for the request logger and reported as 500.
func respondError(c *gin.Context, err error) {
	var (
		verr     *domain.ValidationError
		conflict *domain.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"tickets": []string{conflict.Error()}})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// bindJSON decodes the body into dst and reports decoding or binding tag
// failures as field errors.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) *domain.ValidationError {
	verr := &domain.ValidationError{}

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			verr.Add(fieldPath(fe), fieldMessage(fe))
		}
	case errors.As(err, &typeErr):
		verr.Add(typeErr.Field, "incorrect type, expected "+typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		verr.Add(domain.NonFieldErrors, "JSON parse error: "+syntaxErr.Error())
	default:
		verr.Add(domain.NonFieldErrors, err.Error())
	}
	return verr
}

// fieldPath drops the top level struct name from the namespace, so
// "orderRequest.tickets[0].flight" becomes "tickets[0].flight".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "ensure this list has at least " + fe.Param() + " elements"
		}
		return "ensure this value is greater than or equal to " + fe.Param()
	case "max":
		return "ensure this field has no more than " + fe.Param() + " characters"
	case "gt":
		return "ensure this value is greater than " + fe.Param()
	default:
		return "invalid value (" + fe.Tag() + ")"
	}
}

// jsonTagName makes validator report fields by their JSON name.
func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
