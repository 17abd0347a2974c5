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
	"testing"

	"github.com/freerware/partial"
	"github.com/stretchr/testify/suite"
)

type PropertyTestSuite struct {
	suite.Suite
}

func TestPropertyTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyTestSuite))
}

func (s *PropertyTestSuite) TestPropertiesOf() {
	// arrange.
	name := ptr("ann")
	u := User{
		Audit:    Audit{Version: 2},
		ID:       28,
		Name:     name,
		Password: "secret",
		internal: "hidden",
	}

	// action.
	props, err := partial.PropertiesOf(u)

	// assert.
	s.Require().NoError(err)
	s.Equal([]partial.Property{
		{Name: "version", Value: 2},
		{Name: "id", Value: 28, Key: true},
		{Name: "name", Value: name},
		{Name: "email", Value: (*string)(nil)},
		{Name: "bio", Value: (*string)(nil)},
	}, props)
}

func (s *PropertyTestSuite) TestPropertiesOf_Pointer() {
	// arrange.
	m := &Membership{GroupID: 1, UserID: 2, Role: "admin"}

	// action.
	props, err := partial.PropertiesOf(m)

	// assert.
	s.Require().NoError(err)
	s.Equal([]partial.Property{
		{Name: "group_id", Value: 1, Key: true},
		{Name: "user_id", Value: 2, Key: true},
		{Name: "role", Value: "admin"},
	}, props)
}

func (s *PropertyTestSuite) TestPropertiesOf_UntaggedFields() {
	// arrange.
	entity := struct {
		ID    int `db:",key"`
		Title string
	}{ID: 1, Title: "partial"}

	// action.
	props, err := partial.PropertiesOf(entity)

	// assert.
	s.Require().NoError(err)
	s.Equal([]partial.Property{
		{Name: "ID", Value: 1, Key: true},
		{Name: "Title", Value: "partial"},
	}, props)
}

func (s *PropertyTestSuite) TestPropertiesOf_EmbeddedPointer() {
	// test cases.
	type Entity struct {
		*Anonymous
		ID int `db:"id,key"`
	}
	tests := []struct {
		name     string
		entity   Entity
		expected []partial.Property
	}{
		{
			name:   "Nil",
			entity: Entity{ID: 1},
			expected: []partial.Property{
				{Name: "id", Value: 1, Key: true},
			},
		},
		{
			name:   "NotNil",
			entity: Entity{Anonymous: &Anonymous{Name: "ann"}, ID: 1},
			expected: []partial.Property{
				{Name: "name", Value: "ann"},
				{Name: "id", Value: 1, Key: true},
			},
		},
	}
	// execute test cases.
	for _, test := range tests {
		s.Run(test.name, func() {
			// action.
			props, err := partial.PropertiesOf(test.entity)

			// assert.
			s.Require().NoError(err)
			s.Equal(test.expected, props)
		})
	}
}

func (s *PropertyTestSuite) TestPropertiesOf_Unsupported() {
	// test cases.
	var nilUser *User
	tests := []struct {
		name   string
		entity any
	}{
		{name: "Nil", entity: nil},
		{name: "NilPointer", entity: nilUser},
		{name: "String", entity: "user"},
		{name: "Map", entity: map[string]any{"id": 1}},
	}
	// execute test cases.
	for _, test := range tests {
		s.Run(test.name, func() {
			// action.
			_, err := partial.PropertiesOf(test.entity)

			// assert.
			s.ErrorIs(err, partial.ErrUnsupportedEntity)
		})
	}
}
