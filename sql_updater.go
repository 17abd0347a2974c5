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
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/uber-go/tally/v4"
	"go.uber.org/multierr"
)

// Metric scope name definitions.
const (
	update           = "update"
	updateSuccess    = "update.success"
	updateFailure    = "update.failure"
	statementSkipped = "statement.skipped"
	propertySelected = "property.selected"
	propertySkipped  = "property.skipped"
	rollback         = "rollback"
	rollbackSuccess  = "rollback.success"
	rollbackFailure  = "rollback.failure"
	retryAttempt     = "retry.attempt"
)

var (
	sqlUpdaterTag = map[string]string{
		"updater_type": "sql",
	}
)

var (
	// ErrMissingDB represents the error that is returned when an SQL
	// updater is created without a database.
	ErrMissingDB = errors.New("must provide a database")

	// ErrMissingTable represents the error that is returned when an SQL
	// updater is created without a table name.
	ErrMissingTable = errors.New("must provide a table")

	// ErrNoDecisions represents the error that is returned when an update is
	// requested without any update decisions.
	ErrNoDecisions = errors.New("must provide at least one update decision")
)

// SQLUpdater writes partial updates of entities to a table of an SQL store,
// all within a single transaction.
type SQLUpdater[T any] struct {
	db           *sql.DB
	table        string
	logger       UpdaterLogger
	scope        tally.Scope
	placeholder  Placeholder
	retryOptions []retry.Option
}

var _ Updater[struct{}] = (*SQLUpdater[struct{}])(nil)

// NewSQLUpdater constructs an updater that writes entities of type T to the
// provided table.
func NewSQLUpdater[T any](db *sql.DB, table string, opts ...UpdaterOption) (*SQLUpdater[T], error) {
	if db == nil {
		return nil, ErrMissingDB
	}
	if table == "" {
		return nil, ErrMissingTable
	}

	options := updaterOptions(opts)
	if options.RetryAttempts < 1 {
		options.RetryAttempts = 1
	}
	u := &SQLUpdater[T]{
		db:          db,
		table:       table,
		logger:      options.Logger,
		scope:       options.Scope.SubScope("updater").Tagged(sqlUpdaterTag),
		placeholder: options.Placeholder,
	}
	u.retryOptions = []retry.Option{
		retry.Attempts(uint(options.RetryAttempts)),
		retry.Delay(options.RetryDelay),
		retry.MaxJitter(options.RetryMaximumJitter),
		retry.DelayType(options.RetryType.convert()),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			u.logger.Warn("attempted retry", "attempt", int(attempt+1), "error", err)
			u.scope.Counter(retryAttempt).Inc(1)
		}),
	}
	return u, nil
}

// Statement provides the update statement for the entity of the provided
// decision. The statement is empty when the decision selects no property.
func (u *SQLUpdater[T]) Statement(d *UpdateDecision[T]) (Statement, error) {
	props, err := PropertiesOf(d.Bean())
	if err != nil {
		return Statement{}, err
	}
	return buildStatement(u.table, u.placeholder, props, d.IsUpdate)
}

func (u *SQLUpdater[T]) rollback(tx *sql.Tx) (err error) {

	//setup timer.
	stop := u.scope.Timer(rollback).Start().Stop

	//capture metrics.
	defer func() {
		stop()
		if err != nil {
			u.scope.Counter(rollbackFailure).Inc(1)
		} else {
			u.scope.Counter(rollbackSuccess).Inc(1)
		}
	}()
	err = tx.Rollback()
	return
}

func (u *SQLUpdater[T]) update(ctx context.Context, statements []Statement) (err error) {

	//start transaction.
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		u.logger.Error(err.Error(), "table", u.table)
		return
	}

	//rollback if there is a panic.
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("panic: unable to update entities",
				"table", u.table,
				"panic", fmt.Sprintf("%v", r),
				"rollbackError", u.rollback(tx))
			panic(r)
		}
	}()

	for _, s := range statements {
		u.logger.Debug("attempting to update entity", "table", u.table, "columns", s.Columns)
		if _, err = tx.ExecContext(ctx, s.Query, s.Args...); err != nil {
			err = multierr.Combine(err, u.rollback(tx))
			u.logger.Error(err.Error(), "table", u.table, "query", s.Query)
			return
		}
	}

	if err = tx.Commit(); err != nil {
		// a failed commit rolls the transaction back implicitly.
		u.scope.Counter(rollbackSuccess).Inc(1)
		u.logger.Error(err.Error(), "table", u.table)
	}
	return
}

// Update writes the properties selected by the provided decisions. Every
// statement is built before the store is touched, decisions that select
// nothing are skipped, and the remaining statements are applied atomically.
func (u *SQLUpdater[T]) Update(ctx context.Context, decisions ...*UpdateDecision[T]) (err error) {

	//setup timer.
	stop := u.scope.Timer(update).Start().Stop
	defer func() {
		stop()
		if r := recover(); r != nil {
			u.scope.Counter(updateFailure).Inc(1)
			panic(r)
		}
		if err != nil {
			u.scope.Counter(updateFailure).Inc(1)
			return
		}
		u.scope.Counter(updateSuccess).Inc(1)
	}()

	if len(decisions) == 0 {
		err = ErrNoDecisions
		return
	}

	statements := make([]Statement, 0, len(decisions))
	for _, d := range decisions {
		if d == nil {
			continue
		}
		typeName := TypeNameOf(d.Bean()).String()

		var s Statement
		if s, err = u.Statement(d); err != nil {
			u.logger.Error(err.Error(), "typeName", typeName)
			return
		}
		if n := len(s.Columns); n > 0 {
			u.scope.Counter(propertySelected).Inc(int64(n))
		}
		if n := len(s.Skipped); n > 0 {
			u.scope.Counter(propertySkipped).Inc(int64(n))
		}
		if s.Empty() {
			u.scope.Counter(statementSkipped).Inc(1)
			u.logger.Debug("no properties selected for update",
				"typeName", typeName,
				"mode", d.UpdateMode().String())
			continue
		}
		statements = append(statements, s)
	}
	if len(statements) == 0 {
		return
	}

	opts := append([]retry.Option{retry.Context(ctx)}, u.retryOptions...)
	if err = retry.Do(func() error { return u.update(ctx, statements) }, opts...); err != nil {
		return
	}
	u.logger.Info("successfully updated entities",
		"table", u.table,
		"statementCount", len(statements))
	return
}
