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

package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/code"
)

// ErrInvalidRecordID is returned when text is not of the form "table:key".
var ErrInvalidRecordID = errors.New("record: invalid record id")

// ID addresses a single record of a table.
type ID struct {
	Table string
	Key   string
}

// Parse splits s into table and key. It reports false when s is empty,
// has no colon or has more than one.
func Parse(s string) (ID, bool) {
	if s == "" || strings.Count(s, ":") != 1 {
		return ID{}, false
	}
	table, key, _ := strings.Cut(s, ":")
	return ID{Table: table, Key: key}, true
}

// ParseRequest is Parse for identifiers taken from a request: malformed
// input yields a BAD_REQUEST error with code INVALID_RECORD_ID.
func ParseRequest(s string) (ID, *apperr.AppError) {
	id, ok := Parse(s)
	if !ok {
		return ID{}, apperr.BadRequest(code.InvalidRecordID, fmt.Sprintf("invalid record id %q", s))
	}
	return id, nil
}

// MustParse is like Parse but panics on malformed input.
// It simplifies safe initialization of package-level fixtures.
func MustParse(s string) ID {
	id, ok := Parse(s)
	if !ok {
		panic("record: MustParse(" + s + "): invalid record id")
	}
	return id
}

// SerializeKey returns the key portion only, for stores that track the
// table separately.
func (id ID) SerializeKey() string { return id.Key }

// String renders id as "table:key".
func (id ID) String() string { return id.Table + ":" + id.Key }

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	v, ok := Parse(string(b))
	if !ok {
		return ErrInvalidRecordID
	}
	*id = v
	return nil
}

// KeyOnly is an ID that JSON-encodes as its key alone.
//
//	type Post struct {
//	    Author record.KeyOnly `json:"author"` // "alice", not "user:alice"
//	}
type KeyOnly ID

// MarshalJSON encodes the key as a JSON string.
func (k KeyOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(ID(k).SerializeKey())
}
