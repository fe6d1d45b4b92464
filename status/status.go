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

package status

import (
	"fmt"
	"net/http"
)

// Kind is the status carried by an application error.
//
// It is a tagged union of two variants:
//   - Transport: a standard transport (HTTP) status code, e.g. 404;
//   - Application: an arbitrary numeric status that only has meaning inside
//     the application's own domain.
//
// Exactly one variant is active at a time. Kind is a small value type and is
// never mutated after construction, so it can be copied and shared freely.
//
// The zero value is Transport(0). It is not a meaningful status; always build
// a Kind through Transport or Application.
type Kind struct {
	code int
	app  bool
}

// Transport returns a Kind carrying a standard transport status code.
// The code is not validated: any integer is accepted and returned unchanged
// by HTTPStatus.
func Transport(code int) Kind {
	return Kind{code: code}
}

// Application returns a Kind carrying an application-defined numeric status.
func Application(n int) Kind {
	return Kind{code: n, app: true}
}

// IsTransport reports whether k holds the Transport variant.
func (k Kind) IsTransport() bool { return !k.app }

// IsApplication reports whether k holds the Application variant.
func (k Kind) IsApplication() bool { return k.app }

// Code returns the raw number held by the active variant.
func (k Kind) Code() int { return k.code }

// HTTPStatus maps k to a transport status code.
//
// Transport codes are returned unchanged. Application statuses map to
// 500 Internal Server Error; callers that need a different mapping should go
// through an apis.Mapper built with package mapper.
func (k Kind) HTTPStatus() int {
	if k.app {
		return http.StatusInternalServerError
	}
	return k.code
}

// String renders k for logs, e.g. "http 404" or "app 1001".
func (k Kind) String() string {
	if k.app {
		return fmt.Sprintf("app %d", k.code)
	}
	return fmt.Sprintf("http %d", k.code)
}

// ToHTTPStatus is the function form of Kind.HTTPStatus.
func ToHTTPStatus(k Kind) int {
	return k.HTTPStatus()
}
