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

package adapter

import "dirpx.dev/apperr"

// FromStoreError converts a failure reported by the record store (driver,
// connection, query) into an internal server error. Only the failure's text
// survives, prefixed with "Database error: ". A nil err yields nil.
func FromStoreError(err error) *apperr.AppError {
	if err == nil {
		return nil
	}
	return apperr.InternalServerError("Database error: " + err.Error())
}
