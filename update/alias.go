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

// Package update provides short names for partial update decisions and the
// updaters that act on them.
package update

import (
	"database/sql"

	"github.com/freerware/partial"
)

/* Errors. */

var (
	// ErrUnknownMode represents the error that is returned when parsing a
	// name that doesn't match any update mode.
	ErrUnknownMode = partial.ErrUnknownUpdateMode
	// ErrMissingKey represents the error that is returned when an entity
	// has no key property, or a key property without a value.
	ErrMissingKey = partial.ErrMissingKey
	// ErrUnsupportedEntity represents the error that is returned when
	// properties are requested for an entity that isn't a struct.
	ErrUnsupportedEntity = partial.ErrUnsupportedEntity
	// ErrNoDecisions represents the error that is returned when an update
	// is requested without any update decisions.
	ErrNoDecisions = partial.ErrNoDecisions
)

/* Decisions. */

// Decision determines which properties of an entity are written.
type Decision[T any] = partial.UpdateDecision[T]

// Mode represents the policy that governs which properties are written.
type Mode = partial.UpdateMode

// PropertySet represents a collection of property names.
type PropertySet = partial.PropertySet

const (
	// Middle writes present values unless excluded, and absent values only
	// when included.
	Middle = partial.UpdateModeMiddle
	// Max writes every property that isn't excluded.
	Max = partial.UpdateModeMax
	// Min writes only included properties.
	Min = partial.UpdateModeMin
)

// New creates a decision for the provided entity using Middle.
func New[T any](bean T) *Decision[T] {
	return partial.NewUpdateDecision(bean)
}

// NewWithMode creates a decision for the provided entity and mode.
func NewWithMode[T any](bean T, mode Mode) *Decision[T] {
	return partial.NewUpdateDecisionWithMode(bean, mode)
}

var (
	// ParseMode provides the mode with the provided name.
	ParseMode = partial.ParseUpdateMode
	// IsAbsent indicates if the provided value carries no value at all.
	IsAbsent = partial.IsAbsent
)

/* Policies. */

// Policy represents a reusable decision configuration.
type Policy = partial.Policy

// Policies represents the policies for entities keyed by their type name.
type Policies = partial.Policies

// LoadPolicies reads policies from a YAML document.
var LoadPolicies = partial.LoadPolicies

// Apply configures the provided decision with the provided policy.
func Apply[T any](d *Decision[T], p Policy) *Decision[T] {
	return partial.ApplyPolicy(d, p)
}

/* Updaters. */

// Updater represents an alterer of entities.
type Updater[T any] = partial.Updater[T]

// SQLUpdater writes partial updates of entities to an SQL table.
type SQLUpdater[T any] = partial.SQLUpdater[T]

// Statement represents a partial update statement for a single entity.
type Statement = partial.Statement

// NewSQL constructs an updater that writes entities to the provided table.
func NewSQL[T any](db *sql.DB, table string, opts ...Option) (*SQLUpdater[T], error) {
	return partial.NewSQLUpdater[T](db, table, opts...)
}

/* Options. */

// Option applies an option to the provided configuration.
type Option = partial.UpdaterOption

// Options represents the configuration options for an updater.
type Options = partial.UpdaterOptions

// Logger represents a type responsible for performing logging behaviors.
type Logger = partial.UpdaterLogger

// RetryDelayType represents the type of retry delay to perform.
type RetryDelayType = partial.UpdaterRetryDelayType

// Placeholder represents the bind parameter style of a statement.
type Placeholder = partial.Placeholder

const (
	// RetryDelayTypeFixed maintains a constant delay between retries.
	RetryDelayTypeFixed = partial.UpdaterRetryDelayTypeFixed
	// RetryDelayTypeBackOff increases the delay between retries.
	RetryDelayTypeBackOff = partial.UpdaterRetryDelayTypeBackOff
	// RetryDelayTypeRandom utilizes a random delay between retries.
	RetryDelayTypeRandom = partial.UpdaterRetryDelayTypeRandom
	// PlaceholderQuestion binds parameters with '?'.
	PlaceholderQuestion = partial.PlaceholderQuestion
	// PlaceholderDollar binds parameters with '$1', '$2', and so on.
	PlaceholderDollar = partial.PlaceholderDollar
)

var (
	// ZapLogger specifies the option to provide a Zap logger.
	ZapLogger = partial.UpdaterWithZapLogger
	// StandardLogger specifies the option to provide a standard library logger.
	StandardLogger = partial.UpdaterWithStandardLogger
	// StructuredLogger specifies the option to provide a 'log/slog' logger.
	StructuredLogger = partial.UpdaterWithStructuredLogger
	// LogrusLogger specifies the option to provide a Logrus logger.
	LogrusLogger = partial.UpdaterWithLogrusLogger
	// CustomLogger specifies the option to provide a custom logger.
	CustomLogger = partial.UpdaterWithLogger
	// Scope specifies the option to provide a tally metric scope.
	Scope = partial.UpdaterTallyMetricScope
	// RetryAttempts defines the number of attempts to perform.
	RetryAttempts = partial.UpdaterRetryAttempts
	// RetryDelay defines the delay to utilize during retries.
	RetryDelay = partial.UpdaterRetryDelay
	// RetryMaximumJitter defines the maximum jitter for random retry delays.
	RetryMaximumJitter = partial.UpdaterRetryMaximumJitter
	// RetryType defines the type of retry to perform.
	RetryType = partial.UpdaterRetryType
	// PlaceholderStyle defines the bind parameter style of statements.
	PlaceholderStyle = partial.UpdaterPlaceholder
)
