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
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/mapper"
	"dirpx.dev/apperr/status"
)

func TestToStatus_CodeMessageAndDetail(t *testing.T) {
	st := ToStatus(apperr.NotFound("USER_NOT_FOUND", "user alice does not exist"), nil)
	if st.Code() != gcodes.NotFound {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	if st.Message() != "user alice does not exist" {
		t.Fatalf("message = %q", st.Message())
	}

	info, ok := ExtractErrorInfo(st.Err())
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetReason() != "USER_NOT_FOUND" || info.GetDomain() != Domain {
		t.Fatalf("unexpected info %v", info)
	}
	md := info.GetMetadata()
	if md[MetaHTTPStatus] != "404" || md[MetaKind] != "transport" || md[MetaCode] != "404" {
		t.Fatalf("unexpected metadata %v", md)
	}
}

func TestToStatus_NonCanonicalCode(t *testing.T) {
	tests := []struct {
		code       string
		wantReason string
	}{
		{"user-not-found", "USER_NOT_FOUND"},
		{"", "UNKNOWN"},
		{"!!", "UNKNOWN"},
	}
	for _, tc := range tests {
		info, ok := ExtractErrorInfo(ToStatus(apperr.BadRequest(tc.code, "m"), nil).Err())
		if !ok {
			t.Fatalf("%q: ErrorInfo detail missing", tc.code)
		}
		if info.GetReason() != tc.wantReason {
			t.Fatalf("%q: reason = %q, want %q", tc.code, info.GetReason(), tc.wantReason)
		}
		if info.GetMetadata()[MetaError] != tc.code {
			t.Fatalf("%q: raw code not kept: %v", tc.code, info.GetMetadata())
		}
	}
}

func TestToStatus_CustomMapper(t *testing.T) {
	m, err := mapper.New(mapper.WithApplicationHTTP(1001, http.StatusTooManyRequests))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	st := ToStatus(apperr.New(status.Application(1001), "QUOTA", "quota exhausted"), m)
	if st.Code() != gcodes.ResourceExhausted {
		t.Fatalf("code = %v, want ResourceExhausted", st.Code())
	}
}

func TestToStatus_NeverOK(t *testing.T) {
	m, err := mapper.New(mapper.WithTransportGRPC(http.StatusOK, int(gcodes.OK)))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	st := ToStatus(apperr.New(status.Transport(200), "ODD", "error with a 200 status"), m)
	if st.Code() == gcodes.OK || st.Err() == nil {
		t.Fatal("an error must never map to OK")
	}
}

func TestFromStatus_RoundTrip(t *testing.T) {
	for _, orig := range []*apperr.AppError{
		apperr.Conflict("EMAIL_TAKEN", "email in use"),
		apperr.New(status.Application(1001), "QUOTA", "quota exhausted"),
		apperr.Unauthorized("token expired"),
	} {
		got, ok := FromStatus(ToStatus(orig, nil).Err())
		if !ok {
			t.Fatalf("FromStatus(%v) not ok", orig)
		}
		if *got != *orig {
			t.Fatalf("round trip: got %+v, want %+v", got, orig)
		}
	}
}

func TestFromStatus_ForeignErrors(t *testing.T) {
	if _, ok := FromStatus(errors.New("plain")); ok {
		t.Fatal("plain error must not convert")
	}
	if _, ok := FromStatus(gstatus.Error(gcodes.NotFound, "no detail")); ok {
		t.Fatal("status without ErrorInfo must not convert")
	}
	if _, ok := ExtractErrorInfo(nil); ok {
		t.Fatal("nil error has no ErrorInfo")
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	icpt := UnaryServerInterceptor(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

	// Success passes through.
	resp, err := icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Fatalf("success path: resp=%v err=%v", resp, err)
	}

	// Wrapped AppError becomes a status.
	_, err = icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, fmt.Errorf("get user: %w", apperr.NotFound("USER_NOT_FOUND", "no user"))
	})
	if st, _ := gstatus.FromError(err); st.Code() != gcodes.NotFound {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	if _, ok := ExtractErrorInfo(err); !ok {
		t.Fatal("ErrorInfo detail missing")
	}

	// Foreign errors are returned as-is.
	plain := errors.New("plain")
	_, err = icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, plain
	})
	if err != plain {
		t.Fatalf("foreign error must pass through, got %v", err)
	}
}

func TestStreamServerInterceptor(t *testing.T) {
	icpt := StreamServerInterceptor(nil)
	info := &grpc.StreamServerInfo{FullMethod: "/users.v1.Users/Watch"}

	err := icpt(nil, nil, info, func(srv any, ss grpc.ServerStream) error {
		return apperr.Unauthorized("no token")
	})
	if st, _ := gstatus.FromError(err); st.Code() != gcodes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", st.Code())
	}

	err = icpt(nil, nil, info, func(srv any, ss grpc.ServerStream) error { return nil })
	if err != nil {
		t.Fatalf("success path: %v", err)
	}
}
