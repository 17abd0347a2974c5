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

// UpdateDecision determines which properties of an entity are written
// during a partial update.
//
// An update decision is meant to be built and queried within a single
// update operation and is not safe for concurrent use.
type UpdateDecision[T any] struct {
	bean    T
	include PropertySet
	exclude PropertySet
	mode    UpdateMode
}

// NewUpdateDecision creates an update decision for the provided entity
// using UpdateModeMiddle.
func NewUpdateDecision[T any](bean T) *UpdateDecision[T] {
	return NewUpdateDecisionWithMode(bean, UpdateModeMiddle)
}

// NewUpdateDecisionWithMode creates an update decision for the provided
// entity using the provided update mode.
func NewUpdateDecisionWithMode[T any](bean T, mode UpdateMode) *UpdateDecision[T] {
	return &UpdateDecision[T]{
		bean:    bean,
		include: make(PropertySet),
		exclude: make(PropertySet),
		mode:    mode,
	}
}

// SetUpdateMode replaces the update mode.
func (d *UpdateDecision[T]) SetUpdateMode(mode UpdateMode) *UpdateDecision[T] {
	d.mode = mode
	return d
}

// Include marks the provided property for inclusion.
func (d *UpdateDecision[T]) Include(name string) *UpdateDecision[T] {
	d.include.Add(name)
	return d
}

// Exclude marks the provided property for exclusion.
func (d *UpdateDecision[T]) Exclude(name string) *UpdateDecision[T] {
	d.exclude.Add(name)
	return d
}

// IsUpdate indicates if the property with the provided name and current
// value should be written.
//
//   - UpdateModeMax writes every property that is not excluded.
//   - UpdateModeMin writes only included properties.
//   - UpdateModeMiddle writes present values that are not excluded, and
//     absent values that are included.
func (d *UpdateDecision[T]) IsUpdate(name string, value any) bool {
	switch d.mode {
	case UpdateModeMax:
		return !d.exclude.Contains(name)
	case UpdateModeMin:
		return d.include.Contains(name)
	case UpdateModeMiddle:
		if IsAbsent(value) {
			return d.include.Contains(name)
		}
		return !d.exclude.Contains(name)
	}
	return false
}

// Bean provides the entity the decision was created for.
func (d *UpdateDecision[T]) Bean() T {
	return d.bean
}

// UpdateMode provides the active update mode.
func (d *UpdateDecision[T]) UpdateMode() UpdateMode {
	return d.mode
}

// IncludeProperties provides the included property names. The returned set
// is the one consulted by IsUpdate, so changes made to it are observed by
// later decisions.
func (d *UpdateDecision[T]) IncludeProperties() PropertySet {
	return d.include
}

// ExcludeProperties provides the excluded property names. The returned set
// is the one consulted by IsUpdate, so changes made to it are observed by
// later decisions.
func (d *UpdateDecision[T]) ExcludeProperties() PropertySet {
	return d.exclude
}
