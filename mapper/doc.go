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

// Package mapper provides deterministic, immutable mappings from apperr
// status kinds (dirpx.dev/apperr/status) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// An apperr error carries either a transport status (an HTTP code) or an
// application status (a number only the application understands). The
// library default sends every application status to 500, which is rarely
// what an API wants to expose. Package mapper is the adapter that lets
// callers say otherwise:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers map individual application statuses, rewrite
//     transport statuses, and change the application fallback;
//   - dual: HTTP and gRPC are resolved with the same logic, gRPC always
//     keyed by the resolved HTTP status unless explicitly overridden.
//
// # Resolution model
//
// HTTP:
//
//  1. application status: exact override, then fallback (500 by default);
//  2. transport status: exact rewrite, then the code itself.
//
// gRPC:
//
//  1. exact override (per application number, or per resolved HTTP status);
//  2. library table keyed by the resolved HTTP status (400 -> InvalidArgument,
//     401 -> Unauthenticated, 404 -> NotFound, 409 -> Aborted, ...);
//  3. class fallback (4xx FailedPrecondition, 5xx Internal, otherwise Unknown).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithApplicationHTTP(1001, http.StatusTooManyRequests), // quota exhausted
//	    mapper.WithTransportGRPC(http.StatusConflict, int(codes.AlreadyExists)),
//	)
//	if err != nil {
//	    // out-of-range status, unknown gRPC code
//	}
//
//	st := m.Status(status.Application(1001))
//	// st.HTTP == 429, st.GRPC == codes.ResourceExhausted
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular kind was resolved, including which tier matched.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes. This makes it safe to share a single
// instance across handlers, goroutines, and requests.
package mapper
