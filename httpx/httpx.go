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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/apis"
)

// Writer is a thin adapter that turns an apis.Responder (usually an
// *apperr.AppError) into an HTTP response.
//
// When Mapper is set, the status of an *apperr.AppError is resolved through
// it; otherwise the responder's own Response status is used. A zero Writer
// is ready to use.
type Writer struct {
	Mapper apis.Mapper
}

// Write writes r as a JSON error response:
//
//	HTTP/1.1 404 Not Found
//	Content-Type: application/json
//
//	{"error":"USER_NOT_FOUND","message":"user alice does not exist"}
//
// A status outside the range net/http accepts is written as 500. Nil
// responders are ignored.
func (w Writer) Write(rw http.ResponseWriter, r apis.Responder) {
	if r == nil {
		return
	}
	if ae, ok := r.(*apperr.AppError); ok && ae == nil {
		return
	}

	code, body := r.Response()
	var ae *apperr.AppError
	if w.Mapper != nil && errors.As(r, &ae) {
		code = w.Mapper.HTTPStatus(ae.Status)
	}
	if code < 100 || code > 999 {
		code = http.StatusInternalServerError
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_ = json.NewEncoder(rw).Encode(body)
}

// WriteError writes any error. Errors carrying an apis.Responder in their
// chain are written through it; every other error becomes an internal server
// error whose message is the error text (see apperr.FromError).
func (w Writer) WriteError(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	var r apis.Responder
	if errors.As(err, &r) {
		w.Write(rw, r)
		return
	}
	w.Write(rw, apperr.FromError(err))
}

// WriteError writes err with a zero Writer (default status mapping).
func WriteError(rw http.ResponseWriter, err error) {
	Writer{}.WriteError(rw, err)
}
