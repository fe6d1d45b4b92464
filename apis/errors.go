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

package apis

// Responder is the response-conversion capability every transport boundary
// relies on: given itself, produce the transport status and the body to send.
//
// *apperr.AppError implements Responder using the default status mapping.
// Transport adapters (httpx, grpcx) accept a Responder rather than the
// concrete error type so that callers can plug in their own error shapes.
type Responder interface {
	error

	// Response returns the HTTP status for the status line and the
	// JSON-serializable body. The status is never repeated in the body.
	Response() (int, ErrorResponse)
}

// ErrorResponse is the wire shape of an error body:
//
//	{"error": "NOT_FOUND", "message": "user alice does not exist"}
//
// It is a pure projection of an application error without its status, since
// the status travels in the transport envelope (the HTTP status line).
type ErrorResponse struct {
	// Error is the short machine-readable code, e.g. "MISSING_FIELDS".
	Error string `json:"error"`

	// Message is the human-readable explanation, safe to show to users.
	Message string `json:"message"`
}
