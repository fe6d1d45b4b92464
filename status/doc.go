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

// Package status defines the status kind carried by apperr errors.
//
// A status is either a transport status (a standard HTTP code such as 404)
// or an application status (a number that only the application understands,
// such as 1001 for "quota exhausted"). Both forms must eventually be written
// to a transport, so every Kind can be projected to an HTTP code:
//
//	status.Transport(404).HTTPStatus()   // 404
//	status.Application(1001).HTTPStatus() // 500
//
// The default projection of application statuses is deliberately coarse.
// Package mapper builds adapters with per-status rules.
package status
