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

import "sort"

// PropertySet represents a collection of property names.
type PropertySet map[string]struct{}

// Add places the provided names in the set.
func (ps PropertySet) Add(names ...string) {
	for _, name := range names {
		ps[name] = struct{}{}
	}
}

// Contains indicates if the provided name is in the set.
func (ps PropertySet) Contains(name string) bool {
	_, ok := ps[name]
	return ok
}

// Len provides the number of names in the set.
func (ps PropertySet) Len() int {
	return len(ps)
}

// Names provides the names in the set in ascending order.
func (ps PropertySet) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
