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
	"fmt"
	"strings"
)

// TypeName represents an entity's type, such as "store.User".
type TypeName string

// TypeNameOf provides the type name for the provided entity. Pointers are
// named after the type they point to, so an entity and a pointer to it
// share a type name.
func TypeNameOf(entity any) TypeName {
	return TypeName(strings.TrimLeft(fmt.Sprintf("%T", entity), "*"))
}

// String provides the string representation of the type name.
func (t TypeName) String() string {
	return string(t)
}
