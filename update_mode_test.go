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

type UpdateModeTestSuite struct {
	suite.Suite
}

func TestUpdateModeTestSuite(t *testing.T) {
	suite.Run(t, new(UpdateModeTestSuite))
}

func (s *UpdateModeTestSuite) TestUpdateMode_ZeroValue() {
	// arrange.
	var mode partial.UpdateMode

	// assert.
	s.Equal(partial.UpdateModeMiddle, mode)
}

func (s *UpdateModeTestSuite) TestUpdateMode_String() {
	s.Equal("MAX", partial.UpdateModeMax.String())
	s.Equal("MIN", partial.UpdateModeMin.String())
	s.Equal("MIDDLE", partial.UpdateModeMiddle.String())
	s.Equal("UpdateMode(7)", partial.UpdateMode(7).String())
}

func (s *UpdateModeTestSuite) TestUpdateMode_Valid() {
	s.True(partial.UpdateModeMax.Valid())
	s.True(partial.UpdateModeMin.Valid())
	s.True(partial.UpdateModeMiddle.Valid())
	s.False(partial.UpdateMode(-1).Valid())
	s.False(partial.UpdateMode(3).Valid())
}

func (s *UpdateModeTestSuite) TestParseUpdateMode() {
	// test cases.
	tests := []struct {
		name     string
		input    string
		expected partial.UpdateMode
		err      error
	}{
		{name: "Max", input: "MAX", expected: partial.UpdateModeMax},
		{name: "Min", input: "min", expected: partial.UpdateModeMin},
		{name: "Middle", input: " Middle ", expected: partial.UpdateModeMiddle},
		{name: "Unknown", input: "most", expected: partial.UpdateModeMiddle, err: partial.ErrUnknownUpdateMode},
		{name: "Empty", input: "", expected: partial.UpdateModeMiddle, err: partial.ErrUnknownUpdateMode},
	}
	// execute test cases.
	for _, test := range tests {
		s.Run(test.name, func() {
			// action.
			actual, err := partial.ParseUpdateMode(test.input)

			// assert.
			if test.err != nil {
				s.Require().Error(err)
				s.ErrorIs(err, test.err)
			} else {
				s.Require().NoError(err)
			}
			s.Equal(test.expected, actual)
		})
	}
}

func (s *UpdateModeTestSuite) TestUpdateMode_MarshalText() {
	// action.
	text, err := partial.UpdateModeMin.MarshalText()

	// assert.
	s.Require().NoError(err)
	s.Equal("MIN", string(text))
}

func (s *UpdateModeTestSuite) TestUpdateMode_MarshalText_Unknown() {
	// action.
	_, err := partial.UpdateMode(9).MarshalText()

	// assert.
	s.ErrorIs(err, partial.ErrUnknownUpdateMode)
}

func (s *UpdateModeTestSuite) TestUpdateMode_UnmarshalText() {
	// arrange.
	mode := partial.UpdateModeMin

	// action.
	err := mode.UnmarshalText([]byte("max"))

	// assert.
	s.Require().NoError(err)
	s.Equal(partial.UpdateModeMax, mode)
}

func (s *UpdateModeTestSuite) TestUpdateMode_UnmarshalText_Unknown() {
	// arrange.
	mode := partial.UpdateModeMin

	// action.
	err := mode.UnmarshalText([]byte("all"))

	// assert.
	s.ErrorIs(err, partial.ErrUnknownUpdateMode)
	s.Equal(partial.UpdateModeMin, mode)
}
