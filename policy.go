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
	"io"

	"gopkg.in/yaml.v3"
)

// Policy represents a reusable update decision configuration.
type Policy struct {
	// Mode is the update mode to apply.
	Mode UpdateMode `yaml:"mode"`
	// Include are the property names to include.
	Include []string `yaml:"include,omitempty"`
	// Exclude are the property names to exclude.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Policies represents the policies for entities keyed by their type name.
type Policies map[TypeName]Policy

// LoadPolicies reads policies from the provided YAML document, such as:
//
//	store.User:
//	  mode: middle
//	  include: [bio]
//	  exclude: [password]
func LoadPolicies(r io.Reader) (Policies, error) {
	policies := Policies{}
	if err := yaml.NewDecoder(r).Decode(&policies); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to load update policies: %w", err)
	}
	return policies, nil
}

// For provides the policy for the provided entity.
func (p Policies) For(entity any) (Policy, bool) {
	policy, ok := p[TypeNameOf(entity)]
	return policy, ok
}

// ApplyPolicy configures the provided decision with the provided policy.
// The policy's names are added to those already present.
func ApplyPolicy[T any](d *UpdateDecision[T], p Policy) *UpdateDecision[T] {
	d.SetUpdateMode(p.Mode)
	for _, name := range p.Include {
		d.Include(name)
	}
	for _, name := range p.Exclude {
		d.Exclude(name)
	}
	return d
}
