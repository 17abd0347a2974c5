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
	"reflect"
	"strings"
)

const (
	propertyTag    = "db"
	propertyKeyOpt = "key"
	propertySkip   = "-"
)

var (
	// ErrUnsupportedEntity represents the error that is returned when
	// properties are requested for an entity that isn't a struct or a
	// non-nil pointer to one.
	ErrUnsupportedEntity = errors.New("entity must be a struct or a pointer to a struct")
)

// Property represents a named attribute of an entity and its current value.
type Property struct {
	// Name is the property name, taken from the 'db' struct tag when present.
	Name string
	// Value is the current value of the property.
	Value any
	// Key indicates if the property identifies the entity.
	Key bool
}

// PropertiesOf provides the properties of the provided entity in field
// declaration order.
//
// Fields are named by their 'db' struct tag, falling back to the field
// name. A tag of "-" skips the field and the "key" option marks an identity
// property, as in `db:"id,key"`. Anonymous struct fields are flattened.
func PropertiesOf(entity any) ([]Property, error) {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrUnsupportedEntity, TypeNameOf(entity))
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEntity, TypeNameOf(entity))
	}
	return properties(v, nil), nil
}

func properties(v reflect.Value, props []Property) []Property {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, hasTag := field.Tag.Lookup(propertyTag)
		if tag == propertySkip || !field.IsExported() {
			continue
		}

		// flatten embedded structs that aren't named explicitly.
		if field.Anonymous && !hasTag {
			fv := v.Field(i)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				props = properties(fv, props)
				continue
			}
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		props = append(props, Property{
			Name:  name,
			Value: v.Field(i).Interface(),
			Key:   hasOption(opts, propertyKeyOpt),
		})
	}
	return props
}

func hasOption(opts, opt string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(o) == opt {
			return true
		}
	}
	return false
}
