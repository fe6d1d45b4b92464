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
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/status"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to caller-provided structures remain.
//
// Build process overview:
//
//  1. Start from the library behavior (application fallback 500, transport
//     pass-through, defaultGRPC table).
//  2. Apply user-provided options.
//  3. Validate every configured HTTP status (100..599) and gRPC code.
//  4. Freeze all maps into fresh allocations.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: application fallback HTTP status %d out of range", b.fallbackHTTP)
	}
	for n, v := range b.appHTTP {
		if !validHTTP(v) {
			return nil, fmt.Errorf("mapper: HTTP status %d for application status %d out of range", v, n)
		}
	}
	for from, to := range b.transportHTTP {
		if !validHTTP(to) {
			return nil, fmt.Errorf("mapper: HTTP status %d for transport status %d out of range", to, from)
		}
	}
	for n, v := range b.appGRPC {
		if !validGRPC(v) {
			return nil, fmt.Errorf("mapper: unknown gRPC code %d for application status %d", v, n)
		}
	}
	for h, v := range b.transportGRPC {
		if !validGRPC(v) {
			return nil, fmt.Errorf("mapper: unknown gRPC code %d for HTTP status %d", v, h)
		}
	}

	m := &mapper{
		appHTTP:       freezeHTTP(b.appHTTP),
		appGRPC:       freezeGRPC(b.appGRPC),
		transportHTTP: freezeHTTP(b.transportHTTP),
		transportGRPC: freezeGRPC(b.transportGRPC),
		fallbackHTTP:  b.fallbackHTTP,
	}
	return m, nil
}

var defaultMapper apis.Mapper = &mapper{fallbackHTTP: http.StatusInternalServerError}

// Default returns the library mapping: transport statuses unchanged,
// application statuses to 500, gRPC codes from the built-in table.
func Default() apis.Mapper { return defaultMapper }

// mapper is an immutable mapper implementation that combines per-status
// overrides with the library defaults. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// appHTTP holds explicit HTTP statuses for application status numbers.
	appHTTP map[int]int

	// appGRPC holds explicit gRPC codes for application status numbers.
	appGRPC map[int]codes.Code

	// transportHTTP rewrites transport statuses. Codes not present pass through.
	transportHTTP map[int]int

	// transportGRPC holds gRPC codes per resolved HTTP status, consulted
	// before defaultGRPC.
	transportGRPC map[int]codes.Code

	// fallbackHTTP is used for application statuses without an override.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Application statuses: exact override, then the application fallback.
// Transport statuses: exact rewrite, then the code itself.
func (m *mapper) HTTPStatus(k status.Kind) int {
	v, _ := m.resolveHTTP(k)
	return v
}

// GRPCStatus resolves a gRPC status for the given kind.
//
// Resolution order:
//  1. exact override (per application number, or per resolved HTTP status);
//  2. library table keyed by the resolved HTTP status;
//  3. status class fallback (4xx FailedPrecondition, 5xx Internal, otherwise Unknown).
func (m *mapper) GRPCStatus(k status.Kind) codes.Code {
	v, _, _ := m.resolveGRPC(k)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(k status.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCStatus(k),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular kind.
//
// Example output:
//
//	kind="app 1001"
//	http: source=override -> 429
//	grpc: source=default http=429 -> RESOURCEEXHAUSTED(8)
//
// Notes:
//   - http source ∈ {override | passthrough | fallback}
//   - grpc source ∈ {override | default | class}
func (m *mapper) Explain(k status.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q\n", k)

	h, hsrc := m.resolveHTTP(k)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, h)

	g, gsrc, gh := m.resolveGRPC(k)
	if gsrc == "override" {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", gsrc, strings.ToUpper(g.String()), int(g))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s http=%d -> %s(%d)", gsrc, gh, strings.ToUpper(g.String()), int(g))
	}

	return b.String()
}

// resolveHTTP returns the HTTP status for k and the tier that produced it.
func (m *mapper) resolveHTTP(k status.Kind) (int, string) {
	if k.IsApplication() {
		if v, ok := m.appHTTP[k.Code()]; ok {
			return v, "override"
		}
		return m.fallbackHTTP, "fallback"
	}
	if v, ok := m.transportHTTP[k.Code()]; ok {
		return v, "override"
	}
	return k.Code(), "passthrough"
}

// resolveGRPC returns the gRPC code for k, the tier that produced it and the
// HTTP status the lookup was keyed by.
func (m *mapper) resolveGRPC(k status.Kind) (codes.Code, string, int) {
	h, _ := m.resolveHTTP(k)

	if k.IsApplication() {
		if v, ok := m.appGRPC[k.Code()]; ok {
			return v, "override", h
		}
	}
	if v, ok := m.transportGRPC[h]; ok {
		return v, "override", h
	}
	if v, ok := defaultGRPC[h]; ok {
		return v, "default", h
	}
	return classGRPC(h), "class", h
}

// freezeHTTP makes an immutable copy of an HTTP map so later mutations to
// the builder cannot affect the mapper.
func freezeHTTP(src map[int]int) map[int]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[int]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC map, converting builder-style
// int values into typed gRPC codes.
func freezeGRPC(src map[int]int) map[int]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[int]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
