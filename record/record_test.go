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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/apperr/code"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   ID
		wantOK bool
	}{
		{"user:alice", ID{Table: "user", Key: "alice"}, true},
		{"post:01HZX3", ID{Table: "post", Key: "01HZX3"}, true},
		{":alice", ID{Table: "", Key: "alice"}, true},
		{"user:", ID{Table: "user", Key: ""}, true},
		{":", ID{}, true},
		{"", ID{}, false},
		{"no-colon", ID{}, false},
		{"a:b:c", ID{}, false},
		{"::", ID{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeKey_RoundTrip(t *testing.T) {
	id, ok := Parse("user:alice")
	require.True(t, ok)
	assert.Equal(t, "alice", id.SerializeKey())
	assert.Equal(t, "user", id.Table)
	assert.Equal(t, "user:alice", id.String())
}

func TestParseRequest(t *testing.T) {
	id, err := ParseRequest("user:alice")
	require.Nil(t, err)
	assert.Equal(t, ID{Table: "user", Key: "alice"}, id)

	for _, in := range []string{"", "no-colon", "a:b:c"} {
		id, err := ParseRequest(in)
		require.NotNil(t, err, in)
		assert.Equal(t, ID{}, id)
		assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
		assert.Equal(t, code.InvalidRecordID, err.Code)
		assert.Contains(t, err.Message, "invalid record id")
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, ID{Table: "user", Key: "alice"}, MustParse("user:alice"))
	assert.Panics(t, func() { MustParse("a:b:c") })
}

func TestText(t *testing.T) {
	var doc struct {
		Owner ID `json:"owner"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"owner":"user:alice"}`), &doc))
	assert.Equal(t, ID{Table: "user", Key: "alice"}, doc.Owner)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"user:alice"}`, string(b))

	var id ID
	assert.ErrorIs(t, id.UnmarshalText([]byte("no-colon")), ErrInvalidRecordID)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"owner":"a:b:c"}`), &doc), ErrInvalidRecordID)
}

func TestKeyOnly(t *testing.T) {
	post := struct {
		Author KeyOnly `json:"author"`
	}{Author: KeyOnly(MustParse("user:alice"))}

	b, err := json.Marshal(post)
	require.NoError(t, err)
	assert.JSONEq(t, `{"author":"alice"}`, string(b))
}
