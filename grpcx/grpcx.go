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

package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/mapper"
	"dirpx.dev/apperr/status"
)

// Domain is the google.rpc.ErrorInfo domain attached to every status built
// by this package.
const Domain = "apperr"

// Metadata keys of the ErrorInfo detail.
const (
	MetaError      = "error"       // raw code, unchanged
	MetaHTTPStatus = "http_status" // resolved HTTP status
	MetaKind       = "status_kind" // "transport" or "application"
	MetaCode       = "status_code" // number held by the status kind
)

const (
	kindTransport   = "transport"
	kindApplication = "application"
)

// ToStatus converts a non-nil application error into a gRPC status.
//
// The gRPC code is resolved through m (nil means mapper.Default) and the
// message is the error's message. A google.rpc.ErrorInfo detail carries
// the code and status kind so that FromStatus can rebuild the error on the
// client side. ErrorInfo.Reason holds the code when it is canonical
// (see code.Canonical) and "UNKNOWN" otherwise; the raw code is always in
// the "error" metadata key.
func ToStatus(e *apperr.AppError, m apis.Mapper) *gstatus.Status {
	if m == nil {
		m = mapper.Default()
	}
	st := m.Status(e.Status)
	gc := st.GRPC
	if gc == gcodes.OK {
		// An OK status would turn the error into a success on the wire.
		gc = gcodes.Unknown
	}

	kind := kindTransport
	if e.Status.IsApplication() {
		kind = kindApplication
	}
	info := &errdetails.ErrorInfo{
		Reason: reasonOf(e.Code),
		Domain: Domain,
		Metadata: map[string]string{
			MetaError:      e.Code,
			MetaHTTPStatus: strconv.Itoa(st.HTTP),
			MetaKind:       kind,
			MetaCode:       strconv.Itoa(e.Status.Code()),
		},
	}

	p := &spb.Status{Code: int32(gc), Message: e.Message}
	// Try to attach the detail. If it fails, return the bare status.
	if detail, err := anypb.New(info); err == nil {
		p.Details = []*anypb.Any{detail}
	}
	return gstatus.FromProto(p)
}

// FromStatus rebuilds an application error from a gRPC error produced by
// ToStatus. It reports false when err carries no ErrorInfo of this Domain.
func FromStatus(err error) (*apperr.AppError, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || st == nil {
		return nil, false
	}
	info, ok := errorInfo(st)
	if !ok {
		return nil, false
	}

	md := info.GetMetadata()
	n, convErr := strconv.Atoi(md[MetaCode])
	if convErr != nil {
		return nil, false
	}
	k := status.Transport(n)
	if md[MetaKind] == kindApplication {
		k = status.Application(n)
	}
	return apperr.New(k, md[MetaError], st.Message()), true
}

// ExtractErrorInfo pulls the apperr ErrorInfo detail out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	return errorInfo(st)
}

func errorInfo(st *gstatus.Status) (*errdetails.ErrorInfo, bool) {
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

func reasonOf(c string) string {
	if code.Canonical(c) {
		return c
	}
	if n := code.Normalize(c); code.Canonical(n) {
		return n
	}
	return "UNKNOWN"
}

// convert maps err to the error returned on the wire: application errors
// anywhere in the chain become statuses, everything else is left alone.
func convert(err error, m apis.Mapper) error {
	var ae *apperr.AppError
	if !errors.As(err, &ae) || ae == nil {
		// Not ours, return as-is.
		return err
	}
	return ToStatus(ae, m).Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *apperr.AppError results into gRPC statuses with an ErrorInfo detail.
// The provided apis.Mapper (nil means mapper.Default) resolves gRPC codes.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	if m == nil {
		m = mapper.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(err, m)
	}
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper) grpc.StreamServerInterceptor {
	if m == nil {
		m = mapper.Default()
	}
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return convert(err, m)
		}
		return nil
	}
}
