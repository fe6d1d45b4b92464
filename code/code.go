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

import (
	"regexp"
	"strings"
)

// codeFmt is the canonical shape of a code: UPPER_SNAKE_CASE, starting with a
// letter and not ending with an underscore. This is the same shape gRPC
// ErrorInfo reasons use, which lets grpcx put codes there unchanged.
const codeFmt = `^[A-Z][A-Z0-9_]*[A-Z0-9]$`

var codeRe = regexp.MustCompile(codeFmt)

// Normalize brings an arbitrary string closer to the canonical code form.
//
// It only performs obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-', '.' and inner spaces with '_'.
//
// It does NOT guarantee that the result is canonical; check with Canonical.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
}

// Canonical reports whether s is already in canonical form.
//
// Codes are never validated on construction: apperr accepts any string,
// including the empty one. Canonical exists for adapters whose wire format
// constrains the code shape.
func Canonical(s string) bool {
	return codeRe.MatchString(s)
}
