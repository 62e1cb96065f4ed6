// Package server provides the HTTP API for the portfolio builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/llm"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/storage"
	"github.com/jonathan/portfolio-builder/internal/templates"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrExportNotFound indicates an unknown export id
type ErrExportNotFound struct {
	ID string
}

func (e *ErrExportNotFound) Error() string {
	return fmt.Sprintf("export not found: %s", e.ID)
}

// ErrForbidden indicates the caller does not own the resource
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "access denied"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		badCreds      *ErrInvalidCredentials
		mismatch      *ErrPasswordMismatch
		userNotFound  *ErrUserNotFound
		exportMissing *ErrExportNotFound
		forbidden     *ErrForbidden
		reqInvalid    *ErrValidation
		itemNotFound  *state.NotFoundError
		duplicateID   *state.DuplicateIDError
		stateInvalid  *state.ValidationError
		schemaInvalid *schemas.ValidationError
		unknownTmpl   *templates.UnknownTemplateError
		packaging     *export.PackagingError
		generation    *llm.GenerationError
	)

	switch {
	case errors.As(err, &emailExists), errors.As(err, &duplicateID), errors.Is(err, session.ErrBioInProgress):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &mismatch):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &userNotFound), errors.As(err, &exportMissing), errors.As(err, &itemNotFound),
		errors.As(err, &unknownTmpl), errors.Is(err, session.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &reqInvalid), errors.As(err, &stateInvalid), errors.As(err, &schemaInvalid),
		errors.Is(err, llm.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.As(err, &generation):
		return http.StatusServiceUnavailable
	case errors.As(err, &packaging):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
