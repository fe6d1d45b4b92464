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

// Package record parses and renders record identifiers of the form
// "table:key".
//
// Exactly one colon separates the table from the key; there is no escaping,
// so neither part may contain a colon. Parse reports malformed input with a
// false result rather than an error, since a caller usually just treats
// such input as "no record".
package record
