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

package validate

import "database/sql"

// Optional is a field value as seen by the validator.
type Optional interface {
	// Absent reports whether no value is present.
	Absent() bool
	// Blank reports whether the present value counts as empty.
	// It is only consulted when Absent is false.
	Blank() bool
}

// String adapts an optional string: absent when p is nil, blank when *p is "".
func String(p *string) Optional { return textField[string]{p: p} }

// Text adapts an optional value of a named string type, e.g. *Email.
func Text[S ~string](p *S) Optional { return textField[S]{p: p} }

// Value adapts an optional non-text value: absent when p is nil, never blank.
func Value[T any](p *T) Optional { return valueField[T]{p: p} }

// NullString adapts a sql.NullString: absent when !Valid, blank when String is "".
func NullString(ns sql.NullString) Optional { return nullString(ns) }

type textField[S ~string] struct{ p *S }

func (f textField[S]) Absent() bool { return f.p == nil }
func (f textField[S]) Blank() bool  { return f.p != nil && *f.p == "" }

type valueField[T any] struct{ p *T }

func (f valueField[T]) Absent() bool { return f.p == nil }
func (valueField[T]) Blank() bool    { return false }

type nullString sql.NullString

func (n nullString) Absent() bool { return !n.Valid }
func (n nullString) Blank() bool  { return n.Valid && n.String == "" }
