package errors

import (
	"errors"
	"net/http"
	"strings"

	"rentmap-backend/pkg/lbc"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var upstreamErr *lbc.UpstreamError
	if errors.As(err, &upstreamErr) {
		return &AppError{
			TechnicalMessage: upstreamErr.Error(),
			UserMessage:      MsgUpstreamFailed,
			Code:             ErrCodeUpstreamFailed,
			HTTPStatus:       upstreamErr.Status,
			OriginalError:    err,
		}
	}

	technicalMessage := err.Error()

	// Map specific error patterns to user-friendly errors
	switch {
	case strings.Contains(technicalMessage, "required") ||
		strings.Contains(technicalMessage, "must be") ||
		strings.Contains(technicalMessage, "exceeds maximum") ||
		strings.Contains(technicalMessage, "invalid email format"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidParameters,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "invalid email or password"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUnauthorized,
			Code:             ErrCodeUnauthorized,
			HTTPStatus:       http.StatusUnauthorized,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "database query failed"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
