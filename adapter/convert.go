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

package adapter

import (
	"dirpx.dev/apperr"
	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/mapper"
)

// ToResponse converts an application error into the transport status and the
// public {error, message} body, resolving the status through m.
//
// A nil m uses mapper.Default, which gives the same result as
// (*apperr.AppError).Response. A nil e yields (0, zero body).
func ToResponse(e *apperr.AppError, m apis.Mapper) (int, apis.ErrorResponse) {
	if e == nil {
		return 0, apis.ErrorResponse{}
	}
	if m == nil {
		m = mapper.Default()
	}
	return m.HTTPStatus(e.Status), e.Body()
}

// ToStatus resolves both transport statuses of e through m (nil means
// mapper.Default). It is intended for structured logging and tracing, where
// the HTTP and gRPC projections are recorded side by side.
func ToStatus(e *apperr.AppError, m apis.Mapper) apis.Status {
	if e == nil {
		return apis.Status{}
	}
	if m == nil {
		m = mapper.Default()
	}
	return m.Status(e.Status)
}
