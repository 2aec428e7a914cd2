package middleware

import (
	"errors"
	"log"

	"devconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the error handlers return; the error middleware turns it
// into the JSON envelope. Cause is logged server-side and never serialized.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
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

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorMiddleware is the terminal error boundary: it recovers panics and
// normalizes every error to the envelope. 5xx responses carry only a
// generic message; the underlying error stays in the server log.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("[HTTP] panic recovered: method=%s path=%s err=%v", c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.normalize(c, err)
		return response.Error(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) normalize(c fiber.Ctx, err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.logInternal(c, err)
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logInternal(c, err)
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, msg, nil
	}

	m.logInternal(c, err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func (m *ErrorMiddleware) logInternal(c fiber.Ctx, err error) {
	m.logger.Printf("[HTTP] internal error: method=%s path=%s err=%v", c.Method(), c.Path(), err)
}
