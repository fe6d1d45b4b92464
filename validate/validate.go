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

package validate

import (
	"strings"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/code"
)

// NamedField pairs a field name with its value.
type NamedField struct {
	Name  string
	Value Optional
}

// Field returns a NamedField. A nil v is treated as absent.
func Field(name string, v Optional) NamedField {
	return NamedField{Name: name, Value: v}
}

// FindMissingOrEmpty returns the names of fields that are absent or blank,
// in input order. Duplicated names are reported as many times as they fail.
// The result is never nil.
func FindMissingOrEmpty(fields ...NamedField) []string {
	missing := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Value == nil || f.Value.Absent() || f.Value.Blank() {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Require returns a BAD_REQUEST error listing every missing or empty field,
// or nil when all fields are present.
//
//	if err := validate.Require(
//	    validate.Field("name", validate.String(req.Name)),
//	    validate.Field("email", validate.String(req.Email)),
//	); err != nil {
//	    return err
//	}
func Require(fields ...NamedField) *apperr.AppError {
	missing := FindMissingOrEmpty(fields...)
	if len(missing) == 0 {
		return nil
	}
	return apperr.BadRequest(code.MissingFields, "missing or empty fields: "+strings.Join(missing, ", "))
}
