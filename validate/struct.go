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
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/code"
)

var (
	structOnce sync.Once
	structV    *validator.Validate
)

// structValidator returns the shared validator. validator.Validate caches
// struct metadata and is safe for concurrent use.
func structValidator() *validator.Validate {
	structOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		structV = v
	})
	return structV
}

// Struct validates v against its `validate:"..."` struct tags and returns
// the JSON names of the failing fields, in struct order. Fields without a
// json tag are reported by their Go name.
//
// The error is non-nil only when v is not a struct or pointer to struct.
func Struct(v any) ([]string, error) {
	err := structValidator().Struct(v)
	if err == nil {
		return []string{}, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	failed := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		failed = append(failed, fe.Field())
	}
	return failed, nil
}

// StructError is Struct projected onto an AppError: nil when v is valid,
// BAD_REQUEST with code.InvalidPayload listing the failing fields otherwise.
// A non-struct v is a programming error and yields an internal server error.
func StructError(v any) *apperr.AppError {
	failed, err := Struct(v)
	if err != nil {
		return apperr.InternalServerError(err.Error())
	}
	if len(failed) == 0 {
		return nil
	}
	return apperr.BadRequest(code.InvalidPayload, "invalid fields: "+strings.Join(failed, ", "))
}
