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

import "github.com/rs/zerolog"

// Option is a functional option for Log.
type Option func(*logOptions)

type logOptions struct {
	status      int
	hasStatus   bool
	internal    string
	hasInternal bool
	logger      *zerolog.Logger
}

// WithStatus sets the numeric status for CategoryApplication and
// CategoryTransport. It is ignored by the other categories, whose status is
// fixed.
func WithStatus(n int) Option {
	return func(o *logOptions) {
		o.status = n
		o.hasStatus = true
	}
}

// WithInternal attaches an internal diagnostic message. It is written to the
// log entry only and never reaches the returned error.
func WithInternal(msg string) Option {
	return func(o *logOptions) {
		o.internal = msg
		o.hasInternal = true
	}
}

// WithLogger sends the entry to l instead of the process-wide sink.
// A nil l is ignored.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *logOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
