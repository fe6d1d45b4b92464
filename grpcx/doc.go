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

// Package grpcx is the gRPC response boundary for apperr errors.
//
// Server side, UnaryServerInterceptor and StreamServerInterceptor turn
// *apperr.AppError results into gRPC statuses whose code comes from an
// apis.Mapper and whose details hold a google.rpc.ErrorInfo. Client side,
// FromStatus rebuilds the application error from such a status.
package grpcx
