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

import "context"

// Updater represents an alterer of entities that writes only the properties
// selected by each entity's update decision.
type Updater[T any] interface {

	// Update modifies the entities of the provided decisions within a
	// persistent store.
	Update(context.Context, ...*UpdateDecision[T]) error
}
