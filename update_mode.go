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
	// ErrUnknownUpdateMode represents the error that is returned when
	// parsing a name that doesn't match any update mode.
	ErrUnknownUpdateMode = errors.New("unknown update mode")
)

// UpdateMode represents the policy that governs which properties of an
// entity participate in a partial update.
type UpdateMode int

// The update modes supported by an update decision. The zero value is
// UpdateModeMiddle.
const (
	// UpdateModeMiddle updates present values unless they are excluded, and
	// absent values only when they are included.
	UpdateModeMiddle UpdateMode = iota
	// UpdateModeMax updates every property that isn't excluded.
	UpdateModeMax
	// UpdateModeMin updates only the properties that are included.
	UpdateModeMin
)

var updateModeNames = map[UpdateMode]string{
	UpdateModeMiddle: "MIDDLE",
	UpdateModeMax:    "MAX",
	UpdateModeMin:    "MIN",
}

// ParseUpdateMode provides the update mode with the provided name. Names
// are matched case-insensitively.
func ParseUpdateMode(name string) (UpdateMode, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for mode, modeName := range updateModeNames {
		if modeName == n {
			return mode, nil
		}
	}
	return UpdateModeMiddle, fmt.Errorf("%w: %q", ErrUnknownUpdateMode, name)
}

// Valid indicates if the update mode is one of the defined modes.
func (m UpdateMode) Valid() bool {
	_, ok := updateModeNames[m]
	return ok
}

// String provides the string representation of the update mode.
func (m UpdateMode) String() string {
	if name, ok := updateModeNames[m]; ok {
		return name
	}
	return "UpdateMode(" + strconv.Itoa(int(m)) + ")"
}

// MarshalText encodes the update mode as its name.
func (m UpdateMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUpdateMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes the update mode from its name.
func (m *UpdateMode) UnmarshalText(text []byte) error {
	mode, err := ParseUpdateMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
