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

type builder struct {
	// appHTTP holds exact HTTP statuses for application status numbers.
	appHTTP map[int]int
	// appGRPC holds exact gRPC statuses (as ints) for application status numbers.
	appGRPC map[int]int

	// transportHTTP rewrites transport codes; codes not listed pass through.
	transportHTTP map[int]int
	// transportGRPC holds per-HTTP-code gRPC overrides on top of defaultGRPC.
	transportGRPC map[int]int

	// fallbackHTTP is used for application statuses without an override.
	fallbackHTTP int
}

// newBuilder creates an empty builder. Overrides are usually few, so the
// maps are not pre-sized.
func newBuilder() *builder {
	return &builder{
		appHTTP:       make(map[int]int),
		appGRPC:       make(map[int]int),
		transportHTTP: make(map[int]int),
		transportGRPC: make(map[int]int),

		fallbackHTTP: http.StatusInternalServerError,
	}
}

// validHTTP reports whether v can be written on an HTTP status line.
func validHTTP(v int) bool {
	return v >= 100 && v <= 599
}

// validGRPC reports whether v is one of the canonical gRPC codes.
func validGRPC(v int) bool {
	return v >= int(codes.OK) && v <= int(codes.Unauthenticated)
}
