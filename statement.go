/* Copyright 2026 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package partial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingKey represents the error that is returned when an entity
	// has no key property, or a key property without a value.
	ErrMissingKey = errors.New("entity must have a key property with a value")
)

// Placeholder represents the bind parameter style of a statement.
type Placeholder int

const (
	// PlaceholderQuestion binds parameters with '?', as MySQL and SQLite do.
	PlaceholderQuestion Placeholder = iota
	// PlaceholderDollar binds parameters with '$1', '$2', and so on, as
	// PostgreSQL does.
	PlaceholderDollar
)

func (p Placeholder) bind(position int) string {
	if p == PlaceholderDollar {
		return "$" + strconv.Itoa(position)
	}
	return "?"
}

// Statement represents a partial update statement for a single entity.
type Statement struct {
	// Query is the SQL text of the statement.
	Query string
	// Args are the bind parameters of the statement, in order.
	Args []any
	// Columns are the properties written by the statement.
	Columns []string
	// Skipped are the non-key properties left untouched by the statement.
	Skipped []string
}

// Empty indicates if the statement writes nothing.
func (s Statement) Empty() bool {
	return len(s.Columns) == 0
}

// buildStatement assembles an update statement for the provided properties,
// writing the non-key properties that the provided decision selects.
func buildStatement(
	table string,
	p Placeholder,
	props []Property,
	isUpdate func(name string, value any) bool,
) (s Statement, err error) {
	var keys []Property
	var set []Property
	for _, prop := range props {
		if prop.Key {
			if IsAbsent(prop.Value) {
				err = fmt.Errorf("%w: %s has no value", ErrMissingKey, prop.Name)
				return
			}
			keys = append(keys, prop)
			continue
		}
		if isUpdate(prop.Name, prop.Value) {
			set = append(set, prop)
		} else {
			s.Skipped = append(s.Skipped, prop.Name)
		}
	}
	if len(keys) == 0 {
		err = ErrMissingKey
		return
	}
	if len(set) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	for i, prop := range set {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(prop.Name)
		b.WriteString(" = ")
		b.WriteString(p.bind(len(s.Args) + 1))
		s.Args = append(s.Args, prop.Value)
		s.Columns = append(s.Columns, prop.Name)
	}
	b.WriteString(" WHERE ")
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(key.Name)
		b.WriteString(" = ")
		b.WriteString(p.bind(len(s.Args) + 1))
		s.Args = append(s.Args, key.Value)
	}
	s.Query = b.String()
	return
}
