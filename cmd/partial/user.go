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

package main

import (
	"context"
	"database/sql"
	"fmt"
)

const usersTable = "users"

// User represents a row of the users table.
type User struct {
	ID    int64   `db:"id,key"`
	Name  *string `db:"name"`
	Email *string `db:"email"`
	Bio   *string `db:"bio"`
}

// prepare creates the users table and the user with the provided ID when
// they don't exist yet.
func prepare(ctx context.Context, db *sql.DB, id int64) error {
	const schema = `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT,
		email TEXT,
		bio TEXT
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("unable to create users table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO users (id) VALUES (?)`, id); err != nil {
		return fmt.Errorf("unable to create user %d: %w", id, err)
	}
	return nil
}

type row struct {
	id    int64
	name  sql.NullString
	email sql.NullString
	bio   sql.NullString
}

func (r row) String() string {
	return fmt.Sprintf("id=%d name=%s email=%s bio=%s",
		r.id, column(r.name), column(r.email), column(r.bio))
}

func column(s sql.NullString) string {
	if !s.Valid {
		return "NULL"
	}
	return s.String
}

func load(ctx context.Context, db *sql.DB, id int64) (r row, err error) {
	err = db.QueryRowContext(ctx,
		`SELECT id, name, email, bio FROM users WHERE id = ?`, id,
	).Scan(&r.id, &r.name, &r.email, &r.bio)
	return
}
