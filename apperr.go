/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package apperr provides the application error type shared by HTTP handlers,
// gRPC services and data-store adapters.
//
// An AppError carries a status (transport or application, see package
// status), a short machine-readable code and a human-readable message. At the
// transport boundary it projects itself into a status line plus a JSON body
// of the form {"error": <code>, "message": <message>}.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/status"
)

// AppError is the canonical application error.
//
// It carries:
//   - Status: transport or application status (see package status);
//   - Code: short, machine-readable code, e.g. "NOT_FOUND";
//   - Message: human-oriented description (what went wrong).
//
// AppError values are never mutated after construction; every constructor
// returns a fresh instance, so they can be safely shared across goroutines.
type AppError struct {
	// Status decides the transport status line of the response.
	Status status.Kind

	// Code is the value of the "error" field of the response body.
	// Any string is accepted, including the empty one.
	Code string

	// Message is the value of the "message" field of the response body.
	Message string
}

var _ apis.Responder = (*AppError)(nil)

// New constructs an AppError. No validation is performed on code or message.
func New(s status.Kind, errCode, message string) *AppError {
	return &AppError{Status: s, Code: errCode, Message: message}
}

// InternalServerError returns a 500 error with the fixed code
// "INTERNAL_SERVER_ERROR".
func InternalServerError(message string) *AppError {
	return New(status.Transport(http.StatusInternalServerError), code.Internal, message)
}

// NotFound returns a 404 error.
func NotFound(errCode, message string) *AppError {
	return New(status.Transport(http.StatusNotFound), errCode, message)
}

// BadRequest returns a 400 error.
func BadRequest(errCode, message string) *AppError {
	return New(status.Transport(http.StatusBadRequest), errCode, message)
}

// Unauthorized returns a 401 error with the fixed code "UNAUTHORIZED".
func Unauthorized(message string) *AppError {
	return New(status.Transport(http.StatusUnauthorized), code.Unauthorized, message)
}

// Conflict returns a 409 error.
func Conflict(errCode, message string) *AppError {
	return New(status.Transport(http.StatusConflict), errCode, message)
}

// FromError wraps any lower-level failure as an internal server error whose
// message is the failure's text. The original error's type is not kept.
//
// If err already is (or wraps) an *AppError, that AppError is returned as is.
// A nil err yields nil.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	return InternalServerError(err.Error())
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus returns the transport status for e using the default mapping:
// transport codes unchanged, application statuses as 500.
func (e *AppError) HTTPStatus() int {
	return e.Status.HTTPStatus()
}

// Body returns the wire body of e. The status is not part of it.
func (e *AppError) Body() apis.ErrorResponse {
	return apis.ErrorResponse{Error: e.Code, Message: e.Message}
}

// Response implements apis.Responder.
func (e *AppError) Response() (int, apis.ErrorResponse) {
	return e.HTTPStatus(), e.Body()
}
