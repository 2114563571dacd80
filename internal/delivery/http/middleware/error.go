package middleware

import (
	"errors"
	"log"

	"alignr/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is returned by handlers for failures the client should see.
// Statuses of 500 and above are reported without Message or Data.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware turns handler errors and panics into enveloped responses.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | rid=%v path=%s panic=%v", c.Locals(RequestIDKey), c.Path(), r)
				err = response.Envelope(c, fiber.StatusInternalServerError, "", nil)
			}
		}()

		if err = c.Next(); err == nil {
			return nil
		}

		out := classify(err)
		if out.status >= 500 {
			m.logger.Printf("request failed | rid=%v path=%s err=%v", c.Locals(RequestIDKey), c.Path(), err)
		}
		return response.Envelope(c, out.status, out.message, out.data)
	}
}

type failure struct {
	status  int
	message string
	data    interface{}
}

func classify(err error) failure {
	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		return visible(appErr.StatusCode, appErr.Message, appErr.Data)
	case errors.As(err, &fiberErr):
		return visible(fiberErr.Code, fiberErr.Message, nil)
	default:
		return failure{status: fiber.StatusInternalServerError}
	}
}

// visible keeps client errors as reported and strips everything else down to
// a bare 500.
func visible(status int, message string, data interface{}) failure {
	if status < 400 || status >= 500 {
		return failure{status: fiber.StatusInternalServerError}
	}
	return failure{status: status, message: message, data: data}
}
