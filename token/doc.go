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

// Package token inspects the claims of database access tokens.
//
// DecodeUnverified reads the payload segment of a three-part token and
// returns its claims. It does not check the signature, the validity window
// or the issuer. A successful decode says nothing about whether the token
// is authentic or still valid, so the result must never be used to grant
// access. Use it for diagnostics, routing and logging only.
//
// Claims implements jwt.Claims, so a caller that holds the signing key can
// pass it to github.com/golang-jwt/jwt/v5 for real verification:
//
//	var c token.Claims[Access]
//	_, err := jwt.ParseWithClaims(raw, &c, keyFunc)
package token
