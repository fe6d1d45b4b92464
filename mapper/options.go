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

package mapper

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithApplicationHTTP maps the application status n to the given HTTP
// status instead of the application fallback.
func WithApplicationHTTP(n int, http int) Option {
	return func(b *builder) { b.appHTTP[n] = http }
}

// WithApplicationGRPC maps the application status n to the given gRPC code.
// Without it, the gRPC code is derived from the resolved HTTP status.
func WithApplicationGRPC(n int, grpc int) Option {
	return func(b *builder) { b.appGRPC[n] = grpc }
}

// WithTransportHTTP rewrites the transport status from into to.
// Transport statuses without a rewrite are passed through unchanged.
func WithTransportHTTP(from int, to int) Option {
	return func(b *builder) { b.transportHTTP[from] = to }
}

// WithTransportGRPC sets the gRPC code used for the given resolved HTTP
// status, on top of the library defaults.
func WithTransportGRPC(http int, grpc int) Option {
	return func(b *builder) { b.transportGRPC[http] = grpc }
}

// WithApplicationFallback sets the HTTP status used for application statuses
// that have no explicit mapping. The library default is 500.
func WithApplicationFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}
