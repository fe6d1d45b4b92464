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

// Package validate checks request payloads for missing or empty fields.
//
// Each field is handed to the validator through an Optional, a small
// capability interface that answers two questions: is a value present, and
// is the present value blank. The adapter is picked at compile time:
//
//	missing := validate.FindMissingOrEmpty(
//	    validate.Field("name", validate.String(req.Name)),   // *string
//	    validate.Field("count", validate.Value(req.Count)),  // *int
//	)
//
// Text adapters (String, Text, NullString) report an empty string as blank.
// Value never reports blank: a present number, bool or struct is never
// missing, whatever its value.
//
// For tag-driven DTO validation, Struct and StructError run
// github.com/go-playground/validator/v10 and report fields by their JSON
// names.
package validate
