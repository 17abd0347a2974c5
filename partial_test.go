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
	"database/sql/driver"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

type Audit struct {
	Version int `db:"version"`
}

type User struct {
	Audit
	ID       int     `db:"id,key"`
	Name     *string `db:"name"`
	Email    *string `db:"email"`
	Bio      *string `db:"bio"`
	Password string  `db:"-"`
	internal string
}

type Membership struct {
	GroupID int    `db:"group_id,key"`
	UserID  int    `db:"user_id,key"`
	Role    string `db:"role"`
}

type Anonymous struct {
	Name string `db:"name"`
}

func ptr(s string) *string { return &s }

type Keyless struct {
	ID   *int   `db:"id,key"`
	Name string `db:"name"`
}

// Exploding panics when its payload is converted for the database.
type Exploding struct {
	ID      int     `db:"id,key"`
	Payload payload `db:"payload"`
}

type payload struct {
	calls *int
}

func (p payload) Value() (driver.Value, error) {
	*p.calls++
	if *p.calls > 1 {
		panic("payload exploded")
	}
	return "payload", nil
}
