package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/fairstyle/internal/blocklist"
	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	generationdomain "github.com/smallbiznis/fairstyle/internal/generation/domain"
	ledgerdomain "github.com/smallbiznis/fairstyle/internal/ledger/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrRateLimited    = errors.New("rate_limited")
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
			Message: validationMessage(err),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "too many requests",
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
		errors.Is(err, generationdomain.ErrEmptyPrompt),
		errors.Is(err, blocklist.ErrPromptBlocked),
		errors.Is(err, catalogdomain.ErrStylePaused):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, catalogdomain.ErrStyleNotFound),
		errors.Is(err, catalogdomain.ErrArtistNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, blocklist.ErrPromptBlocked):
		return "Prompt contains blocked or unlicensed names. Please revise."
	case errors.Is(err, generationdomain.ErrEmptyPrompt):
		return "Prompt must not be empty."
	case errors.Is(err, catalogdomain.ErrStylePaused):
		return "Style is paused and not accepting generations."
	default:
		return "invalid request"
	}
}

// classifyErrorForLog labels errors for the request log.
func classifyErrorForLog(err error) (string, string) {
	switch {
	case isValidationError(err):
		return "validation", err.Error()
	case isNotFoundError(err):
		return "not_found", err.Error()
	case errors.Is(err, ErrRateLimited):
		return "rate_limited", err.Error()
	case errors.Is(err, ledgerdomain.ErrPersistence),
		errors.Is(err, ledgerdomain.ErrDuplicateTxn):
		return "persistence", err.Error()
	default:
		return "internal", err.Error()
	}
}
