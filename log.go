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

package apperr

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dirpx.dev/apperr/status"
)

// Category selects which AppError Log builds and at which level it logs.
type Category int

const (
	// CategoryApplication builds an error with an application status
	// (set with WithStatus, 0 when omitted).
	CategoryApplication Category = iota + 1
	// CategoryTransport builds an error with a transport status
	// (set with WithStatus, 500 when omitted).
	CategoryTransport
	// CategoryBadRequest builds a 400 error.
	CategoryBadRequest
	// CategoryNotFound builds a 404 error.
	CategoryNotFound
	// CategoryUnauthorized builds a 401 error; the code is always "UNAUTHORIZED".
	CategoryUnauthorized
	// CategoryConflict builds a 409 error.
	CategoryConflict
	// CategoryInternal builds a 500 error; the code is always
	// "INTERNAL_SERVER_ERROR". It is the only category logged at error level.
	CategoryInternal
)

// String returns the value written to the "category" log field.
func (c Category) String() string {
	switch c {
	case CategoryApplication:
		return "application_status"
	case CategoryTransport:
		return "transport_status"
	case CategoryBadRequest:
		return "bad_request"
	case CategoryNotFound:
		return "not_found"
	case CategoryUnauthorized:
		return "unauthorized"
	case CategoryConflict:
		return "conflict"
	case CategoryInternal:
		return "internal_server_error"
	default:
		return "unknown"
	}
}

var (
	sinkMu sync.RWMutex
	sink   *zerolog.Logger
)

// SetLogger replaces the process-wide sink used by Log.
func SetLogger(l zerolog.Logger) {
	sinkMu.Lock()
	sink = &l
	sinkMu.Unlock()
}

// Logger returns the process-wide sink used by Log. Until SetLogger is called
// this is the zerolog global logger (github.com/rs/zerolog/log).
func Logger() *zerolog.Logger {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	if sink != nil {
		return sink
	}
	l := log.Logger
	return &l
}

// Log builds the AppError for category c and emits one structured log entry
// describing it: warn level for every category except CategoryInternal, which
// logs at error level. An unknown category is treated as CategoryInternal.
//
// Logging never affects the result: whatever state the sink is in, Log
// returns the same error it would return with a working sink.
//
//	return apperr.Log(apperr.CategoryNotFound, "USER_NOT_FOUND", "no such user",
//	    apperr.WithInternal("lookup user:alice returned 0 rows"))
func Log(c Category, errCode, message string, opts ...Option) *AppError {
	var o logOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := build(c, errCode, message, o)

	lg := o.logger
	if lg == nil {
		lg = Logger()
	}
	emit(lg, c, e, o)
	return e
}

func build(c Category, errCode, message string, o logOptions) *AppError {
	switch c {
	case CategoryApplication:
		return New(status.Application(o.status), errCode, message)
	case CategoryTransport:
		n := o.status
		if !o.hasStatus {
			n = http.StatusInternalServerError
		}
		return New(status.Transport(n), errCode, message)
	case CategoryBadRequest:
		return BadRequest(errCode, message)
	case CategoryNotFound:
		return NotFound(errCode, message)
	case CategoryUnauthorized:
		return Unauthorized(message)
	case CategoryConflict:
		return Conflict(errCode, message)
	default:
		return InternalServerError(message)
	}
}

func emit(lg *zerolog.Logger, c Category, e *AppError, o logOptions) {
	// A broken sink must not take the caller down with it.
	defer func() { _ = recover() }()

	var ev *zerolog.Event
	switch c {
	case CategoryApplication, CategoryTransport, CategoryBadRequest,
		CategoryNotFound, CategoryUnauthorized, CategoryConflict:
		ev = lg.Warn()
	default:
		c = CategoryInternal
		ev = lg.Error()
	}

	ev = ev.Str("category", c.String()).
		Str("status", e.Status.String()).
		Str("error", e.Code).
		Str("message", e.Message)
	if o.hasInternal {
		ev = ev.Str("internal", o.internal)
	}
	ev.Msg("app error")
}
