// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/lms-admin/internal/storage"
)

// Response is the Admin UI envelope for successful calls.
type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// ErrorResponse is the Admin UI envelope for failed calls.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// BadRequestError marks failures caused by the request itself, such as an
// undecodable body or a malformed query parameter.
type BadRequestError struct {
	Err error
}

func (e *BadRequestError) Error() string { return e.Err.Error() }
func (e *BadRequestError) Unwrap() error { return e.Err }

func NewBadRequestError(err error) error {
	return &BadRequestError{Err: err}
}

// StatusFromError maps a service error onto an HTTP status code.
func StatusFromError(err error) int {
	var (
		badRequest  *BadRequestError
		validations validator.ValidationErrors
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &badRequest), errors.As(err, &validations):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey), errors.Is(err, storage.ErrForeignKeyViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// WriteResponse wraps data in the success envelope.
func WriteResponse(w http.ResponseWriter, status int, message string, data interface{}) error {
	return WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

// WriteError writes the error envelope, deriving the status from err.
func WriteError(w http.ResponseWriter, err error) error {
	status := StatusFromError(err)
	return WriteJSON(w, status, ErrorResponse{Status: status, Message: err.Error()})
}
