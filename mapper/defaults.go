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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultGRPC defines the library's built-in gRPC mappings keyed by the
// resolved HTTP status. The values follow the canonical google.rpc.Code
// HTTP mapping. As with every rule here, callers may override them with
// WithTransportGRPC.
var defaultGRPC = map[int]codes.Code{
	// 4xx: client, protocol and resource issues.
	http.StatusBadRequest:         codes.InvalidArgument,    // Malformed input, missing fields.
	http.StatusUnauthorized:       codes.Unauthenticated,    // No or undecodable credentials.
	http.StatusForbidden:          codes.PermissionDenied,   // Authenticated but not allowed.
	http.StatusNotFound:           codes.NotFound,           // Target record does not exist.
	http.StatusConflict:           codes.Aborted,            // Uniqueness or version collision.
	http.StatusPreconditionFailed: codes.FailedPrecondition, // Resource not in the expected state.
	http.StatusTooManyRequests:    codes.ResourceExhausted,  // Rate limit or quota hit.
	// Note: 499 is a non-standard but widely used code (nginx) for "client closed request".
	499: codes.Canceled,

	// 5xx: server, dependency and transient issues.
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// classGRPC is the last resort when a resolved HTTP status has no rule at all.
func classGRPC(httpStatus int) codes.Code {
	switch {
	case httpStatus >= 400 && httpStatus < 500:
		return codes.FailedPrecondition
	case httpStatus >= 500 && httpStatus < 600:
		return codes.Internal
	default:
		return codes.Unknown
	}
}
