package server

import (
	"errors"
	"net/http"
	"strings"

	branddomain "github.com/fakunet/backoffice/internal/brand/domain"
	categorydomain "github.com/fakunet/backoffice/internal/category/domain"
	mediadomain "github.com/fakunet/backoffice/internal/media/domain"
	messagedomain "github.com/fakunet/backoffice/internal/message/domain"
	productdomain "github.com/fakunet/backoffice/internal/product/domain"
	slidedomain "github.com/fakunet/backoffice/internal/slide/domain"
	"github.com/fakunet/backoffice/internal/store"
	"github.com/gin-gonic/gin"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrInternal           = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: validationErrorMessage(err),
		}
	case errors.Is(err, productdomain.ErrCodeExists):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "el código del producto ya existe",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{
			Type:    "invalid_credentials",
			Message: "credenciales inválidas",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, branddomain.ErrInvalidName),
		errors.Is(err, categorydomain.ErrInvalidName),
		errors.Is(err, slidedomain.ErrInvalidImageURL),
		errors.Is(err, productdomain.ErrInvalidCode),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidBrand),
		errors.Is(err, productdomain.ErrInvalidCategory),
		errors.Is(err, messagedomain.ErrMissingFields),
		errors.Is(err, mediadomain.ErrNoFile),
		errors.Is(err, mediadomain.ErrUnsupportedType),
		errors.Is(err, mediadomain.ErrTooLarge):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, branddomain.ErrNotFound),
		errors.Is(err, categorydomain.ErrNotFound),
		errors.Is(err, slidedomain.ErrNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, messagedomain.ErrNotFound),
		errors.Is(err, mediadomain.ErrNotFound):
		return true
	default:
		return false
	}
}

func validationErrorMessage(err error) string {
	switch {
	case errors.Is(err, productdomain.ErrInvalidCode),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidBrand),
		errors.Is(err, productdomain.ErrInvalidCategory):
		return "faltan campos obligatorios (código, nombre, marca, categoría)"
	case errors.Is(err, mediadomain.ErrUnsupportedType):
		return "invalid file type, allowed: images & pdf"
	case errors.Is(err, mediadomain.ErrTooLarge):
		return "file too large"
	default:
		return strings.ReplaceAll(err.Error(), "_", " ")
	}
}

// classifyErrorForLog feeds the request logger a coarse type/code pair.
func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	switch {
	case status >= http.StatusInternalServerError:
		return "internal_error", payload.Type
	case status == http.StatusNotFound:
		return "not_found", payload.Type
	case status == http.StatusConflict:
		return "conflict", payload.Type
	case status == http.StatusUnauthorized:
		return "unauthorized", payload.Type
	default:
		return "validation_error", payload.Type
	}
}
