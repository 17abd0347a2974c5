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

package partial_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/freerware/partial"
	"github.com/stretchr/testify/assert"
)

type failingValuer struct{}

func (failingValuer) Value() (any, error) { return nil, errors.New("whoa") }

func TestIsAbsent(t *testing.T) {
	// test cases.
	var (
		nilPtr   *string
		nilMap   map[string]int
		nilSlice []byte
		nilFunc  func()
		nilChan  chan int
		nilNull  *sql.NullString
	)
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "Nil", value: nil, expected: true},
		{name: "NilPointer", value: nilPtr, expected: true},
		{name: "NilMap", value: nilMap, expected: true},
		{name: "NilSlice", value: nilSlice, expected: true},
		{name: "NilFunc", value: nilFunc, expected: true},
		{name: "NilChan", value: nilChan, expected: true},
		{name: "NilValuerPointer", value: nilNull, expected: true},
		{name: "InvalidNullString", value: sql.NullString{}, expected: true},
		{name: "InvalidNullTime", value: sql.NullTime{}, expected: true},
		{name: "InvalidNullStringPointer", value: &sql.NullString{}, expected: true},
		{name: "ValidNullString", value: sql.NullString{Valid: true}, expected: false},
		{name: "ValidNullTime", value: sql.NullTime{Time: time.Unix(0, 0), Valid: true}, expected: false},
		{name: "FailingValuer", value: failingValuer{}, expected: false},
		{name: "EmptyString", value: "", expected: false},
		{name: "Zero", value: 0, expected: false},
		{name: "False", value: false, expected: false},
		{name: "EmptySlice", value: []byte{}, expected: false},
		{name: "Pointer", value: ptr(""), expected: false},
		{name: "Struct", value: User{}, expected: false},
	}
	// execute test cases.
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// action + assert.
			assert.Equal(t, test.expected, partial.IsAbsent(test.value))
		})
	}
}
