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

package code

// Fixed codes
//
// InternalServerError and Unauthorized always carry these codes; the other
// apperr constructors take the code from the caller.
const (
	// Internal is the code of every apperr.InternalServerError.
	// Can be mapped to an HTTP 500.
	Internal = "INTERNAL_SERVER_ERROR"

	// Unauthorized is the code of every apperr.Unauthorized.
	// Can be mapped to an HTTP 401.
	Unauthorized = "UNAUTHORIZED"
)

// Payload / identifier codes
//
// Set by the validate, token and record helpers when they build errors.
const (
	// MissingFields indicates that one or more required payload fields were
	// absent or empty. Paired with a message listing the field names.
	MissingFields = "MISSING_FIELDS"

	// InvalidPayload indicates that a payload failed tag-driven validation.
	InvalidPayload = "INVALID_PAYLOAD"

	// InvalidToken indicates that a record-store token could not be decoded
	// (see token.DecodeError.AppError).
	InvalidToken = "INVALID_TOKEN"

	// InvalidRecordID indicates that a "table:key" identifier was malformed
	// (see record.ParseRequest).
	InvalidRecordID = "INVALID_RECORD_ID"
)
