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

package token

import (
	"errors"
	"net/http"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/status"
)

// Kind classifies a DecodeError.
type Kind int

const (
	// MalformedToken means the token has no payload segment.
	MalformedToken Kind = iota + 1
	// InvalidEncoding means the payload segment is not base64url without padding.
	InvalidEncoding
	// InvalidPayload means the decoded payload is not a claims object.
	InvalidPayload
)

func (k Kind) String() string {
	switch k {
	case MalformedToken:
		return "malformed token"
	case InvalidEncoding:
		return "invalid encoding"
	case InvalidPayload:
		return "invalid payload"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against a *DecodeError of the same Kind.
var (
	ErrMalformedToken  = errors.New("token: malformed token")
	ErrInvalidEncoding = errors.New("token: invalid encoding")
	ErrInvalidPayload  = errors.New("token: invalid payload")
)

// DecodeError is returned by DecodeUnverified.
type DecodeError struct {
	Kind Kind
	// Err is the underlying cause, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return "token: " + e.Kind.String()
	}
	return "token: " + e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *DecodeError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.Kind.sentinel()
}

// AppError projects e onto a 401 application error with code INVALID_TOKEN.
// The message is e's text. A nil e yields nil.
func (e *DecodeError) AppError() *apperr.AppError {
	if e == nil {
		return nil
	}
	return apperr.New(status.Transport(http.StatusUnauthorized), code.InvalidToken, e.Error())
}

func (k Kind) sentinel() error {
	switch k {
	case MalformedToken:
		return ErrMalformedToken
	case InvalidEncoding:
		return ErrInvalidEncoding
	case InvalidPayload:
		return ErrInvalidPayload
	default:
		return nil
	}
}
