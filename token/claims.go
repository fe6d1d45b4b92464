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

package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a database access token. A is the shape of the
// access claims carried under "AC".
//
// Times are seconds since the Unix epoch.
type Claims[A any] struct {
	IssuedAt  uint64 `json:"iat"`
	NotBefore uint64 `json:"nbf"`
	Expiry    uint64 `json:"exp"`
	Issuer    string `json:"iss"`
	TokenID   string `json:"jti"`
	Namespace string `json:"NS"`
	Database  string `json:"DB"`
	Access    A      `json:"AC"`
	SubjectID string `json:"ID"`
}

var _ jwt.Claims = Claims[struct{}]{}

// wireNames lists every claim in wire order. Keys are matched exactly.
var wireNames = [...]string{"iat", "nbf", "exp", "iss", "jti", "NS", "DB", "AC", "ID"}

// UnmarshalJSON decodes a claims object. Every claim must be present under
// its exact wire name with a compatible, non-null value; "AC" may be null
// only when A is a pointer, interface, map or slice. Unknown members are
// ignored.
func (c *Claims[A]) UnmarshalJSON(b []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}

	var v Claims[A]
	dsts := [...]func(json.RawMessage) error{
		decodeInto(&v.IssuedAt),
		decodeInto(&v.NotBefore),
		decodeInto(&v.Expiry),
		decodeInto(&v.Issuer),
		decodeInto(&v.TokenID),
		decodeInto(&v.Namespace),
		decodeInto(&v.Database),
		decodeInto(&v.Access),
		decodeInto(&v.SubjectID),
	}
	for i, name := range wireNames {
		raw, ok := members[name]
		if !ok {
			return fmt.Errorf("missing claim %q", name)
		}
		if err := dsts[i](raw); err != nil {
			return fmt.Errorf("claim %q: %w", name, err)
		}
	}

	*c = v
	return nil
}

var errNullClaim = errors.New("null value")

func decodeInto[T any](dst *T) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) && !nullable[T]() {
			return errNullClaim
		}
		return json.Unmarshal(raw, dst)
	}
}

func nullable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// IssuedTime returns the "iat" claim as a time.
func (c Claims[A]) IssuedTime() time.Time { return unix(c.IssuedAt) }

// NotBeforeTime returns the "nbf" claim as a time.
func (c Claims[A]) NotBeforeTime() time.Time { return unix(c.NotBefore) }

// ExpiryTime returns the "exp" claim as a time.
func (c Claims[A]) ExpiryTime() time.Time { return unix(c.Expiry) }

// GetExpirationTime implements jwt.Claims.
func (c Claims[A]) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(c.ExpiryTime()), nil
}

// GetIssuedAt implements jwt.Claims.
func (c Claims[A]) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(c.IssuedTime()), nil
}

// GetNotBefore implements jwt.Claims.
func (c Claims[A]) GetNotBefore() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(c.NotBeforeTime()), nil
}

// GetIssuer implements jwt.Claims.
func (c Claims[A]) GetIssuer() (string, error) { return c.Issuer, nil }

// GetSubject implements jwt.Claims. The subject is the "ID" claim.
func (c Claims[A]) GetSubject() (string, error) { return c.SubjectID, nil }

// GetAudience implements jwt.Claims. These tokens carry no audience.
func (c Claims[A]) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

func unix(sec uint64) time.Time {
	const maxSec = 1<<63 - 1
	if sec > maxSec {
		sec = maxSec
	}
	return time.Unix(int64(sec), 0)
}
