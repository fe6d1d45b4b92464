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
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var segmentParser = jwt.NewParser()

// DecodeUnverified returns the claims carried by tok without verifying it.
//
// The token is split on "." and the second segment is decoded as base64url
// without padding, then as a claims object. Failures are reported as a
// *DecodeError matching ErrMalformedToken, ErrInvalidEncoding or
// ErrInvalidPayload respectively.
//
// No signature, expiry, not-before or issuer check is made: an expired or
// forged token decodes just like a valid one.
func DecodeUnverified[A any](tok string) (*Claims[A], error) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 {
		return nil, &DecodeError{Kind: MalformedToken}
	}

	payload, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return nil, &DecodeError{Kind: InvalidEncoding, Err: err}
	}

	c := new(Claims[A])
	if err := json.Unmarshal(payload, c); err != nil {
		return nil, &DecodeError{Kind: InvalidPayload, Err: err}
	}
	return c, nil
}
