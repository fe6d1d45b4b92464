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

// Package code holds the catalogue of well-known machine-readable error codes.
//
// A code is the short identifier that ends up in the "error" field of an
// error response, such as "NOT_FOUND" or "MISSING_FIELDS". Codes are plain
// strings: apperr accepts any value the caller chooses, and this package only
// names the ones the library itself produces, plus a couple of helpers for
// adapters that need the canonical UPPER_SNAKE_CASE shape.
package code
