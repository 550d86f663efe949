package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// AppError is the single domain error type. Every rule violation carries a
// message and its HTTP-equivalent status so the transport layer can pass
// them through verbatim.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusNotFound,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusConflict,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusForbidden,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response. Domain errors keep
// their status and message, router-level errors (unmatched route, body
// limit) keep their fiber status; anything else degrades to a generic 500
// so storage details never leak to clients.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(status).JSON(ErrorResponse{
		Error:  message,
		Status: status,
	})
}
