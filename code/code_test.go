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

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "INTERNAL"},
		{"to upper", "NoT_fOuNd", "NOT_FOUND"},
		{"dash to underscore", "missing-fields", "MISSING_FIELDS"},
		{"dot to underscore", "token.invalid", "TOKEN_INVALID"},
		{"inner space", "record id", "RECORD_ID"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	valid := []string{Internal, Unauthorized, "BAD_REQUEST", "NOT_FOUND", "CONFLICT",
		MissingFields, InvalidPayload, InvalidToken, InvalidRecordID, "DATABASE", "E1"}
	for _, s := range valid {
		if !Canonical(s) {
			t.Fatalf("Canonical(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "A", "not_found", "NOT-FOUND", "_X", "X_", "1ABC", "NOT FOUND"}
	for _, s := range invalid {
		if Canonical(s) {
			t.Fatalf("Canonical(%q) = true, want false", s)
		}
	}
}
