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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/apperr/status"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("log entry is not JSON: %v (%q)", err, buf.String())
	}
	return m
}

func TestLog_CategoriesAndLevels(t *testing.T) {
	tests := []struct {
		name      string
		cat       Category
		errCode   string
		opts      []Option
		wantKind  status.Kind
		wantCode  string
		wantLevel string
	}{
		{"application", CategoryApplication, "QUOTA", []Option{WithStatus(1001)}, status.Application(1001), "QUOTA", "warn"},
		{"transport", CategoryTransport, "TEAPOT", []Option{WithStatus(418)}, status.Transport(418), "TEAPOT", "warn"},
		{"transport default", CategoryTransport, "X", nil, status.Transport(500), "X", "warn"},
		{"bad request", CategoryBadRequest, "MISSING_FIELDS", nil, status.Transport(400), "MISSING_FIELDS", "warn"},
		{"not found", CategoryNotFound, "USER_NOT_FOUND", nil, status.Transport(404), "USER_NOT_FOUND", "warn"},
		{"unauthorized", CategoryUnauthorized, "ignored", nil, status.Transport(401), "UNAUTHORIZED", "warn"},
		{"conflict", CategoryConflict, "EMAIL_TAKEN", nil, status.Transport(409), "EMAIL_TAKEN", "warn"},
		{"internal", CategoryInternal, "ignored", nil, status.Transport(500), "INTERNAL_SERVER_ERROR", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := zerolog.New(&buf)

			e := Log(tt.cat, tt.errCode, "user message", append(tt.opts, WithLogger(&lg))...)
			if e.Status != tt.wantKind {
				t.Fatalf("status = %v, want %v", e.Status, tt.wantKind)
			}
			if e.Code != tt.wantCode || e.Message != "user message" {
				t.Fatalf("unexpected error %+v", e)
			}

			m := decodeEntry(t, &buf)
			if m["level"] != tt.wantLevel {
				t.Fatalf("level = %v, want %s", m["level"], tt.wantLevel)
			}
			if m["category"] != tt.cat.String() {
				t.Fatalf("category = %v, want %s", m["category"], tt.cat)
			}
			if m["error"] != tt.wantCode || m["message"] != "user message" {
				t.Fatalf("entry fields mismatch: %v", m)
			}
			if m["status"] != tt.wantKind.String() {
				t.Fatalf("status field = %v, want %s", m["status"], tt.wantKind)
			}
			if _, ok := m["internal"]; ok {
				t.Fatal("internal must be omitted when not supplied")
			}
		})
	}
}

func TestLog_InternalMessageOnlyInLog(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf)

	e := Log(CategoryInternal, "", "something went wrong",
		WithInternal("pg: connection refused"), WithLogger(&lg))

	if e.Message != "something went wrong" {
		t.Fatalf("message leaked internal text: %q", e.Message)
	}
	m := decodeEntry(t, &buf)
	if m["internal"] != "pg: connection refused" {
		t.Fatalf("internal = %v", m["internal"])
	}
}

func TestLog_UnknownCategoryIsInternal(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf)

	e := Log(Category(99), "X", "msg", WithLogger(&lg))
	if e.HTTPStatus() != http.StatusInternalServerError || e.Code != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("unexpected error %+v", e)
	}
	if m := decodeEntry(t, &buf); m["level"] != "error" {
		t.Fatalf("level = %v, want error", m["level"])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type panickingWriter struct{}

func (panickingWriter) Write([]byte) (int, error) { panic("sink exploded") }

func TestLog_BrokenSinkDoesNotAffectResult(t *testing.T) {
	for _, w := range []io.Writer{failingWriter{}, panickingWriter{}} {
		lg := zerolog.New(w)
		e := Log(CategoryNotFound, "USER_NOT_FOUND", "no user", WithLogger(&lg))
		if e == nil || e.HTTPStatus() != http.StatusNotFound || e.Code != "USER_NOT_FOUND" {
			t.Fatalf("unexpected error %+v", e)
		}
	}
}

func TestLog_DisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf).Level(zerolog.Disabled)

	e := Log(CategoryConflict, "EMAIL_TAKEN", "email in use", WithLogger(&lg))
	if e.HTTPStatus() != http.StatusConflict {
		t.Fatalf("status = %d", e.HTTPStatus())
	}
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestSetLogger_ProcessWideSink(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(*prev) })

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	Log(CategoryBadRequest, "MISSING_FIELDS", "name")
	if m := decodeEntry(t, &buf); m["error"] != "MISSING_FIELDS" {
		t.Fatalf("entry not written to process-wide sink: %v", m)
	}
}
