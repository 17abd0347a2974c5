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
	"log"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/freerware/partial/internal/adapters"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// UpdaterOptions represents the configuration options for an updater.
type UpdaterOptions struct {
	// Logger is the logger the updater utilizes.
	Logger UpdaterLogger
	// Scope is the metric scope the updater utilizes.
	Scope tally.Scope
	// RetryAttempts is the number of times an update is attempted.
	RetryAttempts int
	// RetryDelay is the delay between attempts.
	RetryDelay time.Duration
	// RetryMaximumJitter is the maximum jitter for random retry delays.
	RetryMaximumJitter time.Duration
	// RetryType is the type of delay between attempts.
	RetryType UpdaterRetryDelayType
	// Placeholder is the bind parameter style of generated statements.
	Placeholder Placeholder
}

func updaterOptions(options []UpdaterOption) UpdaterOptions {
	// set defaults.
	o := UpdaterOptions{
		Logger:             adapters.NewNopLogger(),
		Scope:              tally.NoopScope,
		RetryAttempts:      3,
		RetryType:          UpdaterRetryDelayTypeFixed,
		RetryDelay:         50 * time.Millisecond,
		RetryMaximumJitter: 50 * time.Millisecond,
		Placeholder:        PlaceholderQuestion,
	}
	// apply options.
	for _, opt := range options {
		opt(&o)
	}
	return o
}

// UpdaterOption applies an option to the provided configuration.
type UpdaterOption func(*UpdaterOptions)

// UpdaterRetryDelayType represents the type of retry delay to perform.
type UpdaterRetryDelayType int

func (t UpdaterRetryDelayType) convert() retry.DelayTypeFunc {
	types := map[UpdaterRetryDelayType]retry.DelayTypeFunc{
		UpdaterRetryDelayTypeFixed:   retry.FixedDelay,
		UpdaterRetryDelayTypeBackOff: retry.BackOffDelay,
		UpdaterRetryDelayTypeRandom:  retry.RandomDelay,
	}
	if converted, ok := types[t]; ok {
		return converted
	}
	return retry.FixedDelay
}

const (
	// UpdaterRetryDelayTypeFixed represents a retry type that maintains a
	// constant delay between retry iterations.
	UpdaterRetryDelayTypeFixed UpdaterRetryDelayType = iota
	// UpdaterRetryDelayTypeBackOff represents a retry type that increases
	// delay between retry iterations.
	UpdaterRetryDelayTypeBackOff
	// UpdaterRetryDelayTypeRandom represents a retry type that utilizes a
	// random delay between retry iterations.
	UpdaterRetryDelayTypeRandom
)

var (
	// UpdaterWithZapLogger specifies the option to provide a Zap logger for
	// the updater.
	UpdaterWithZapLogger = func(l *zap.Logger) UpdaterOption {
		return UpdaterWithLogger(adapters.NewZapLogger(l))
	}

	// UpdaterWithStandardLogger specifies the option to provide a logger as
	// defined in the 'log' standard library package for the updater.
	UpdaterWithStandardLogger = func(l *log.Logger) UpdaterOption {
		return UpdaterWithLogger(adapters.NewStandardLogger(l))
	}

	// UpdaterWithStructuredLogger specifies the option to provide a
	// structured logger as defined in the 'log/slog' standard library
	// package for the updater.
	UpdaterWithStructuredLogger = func(l *slog.Logger) UpdaterOption {
		return UpdaterWithLogger(adapters.NewStructuredLogger(l))
	}

	// UpdaterWithLogrusLogger specifies the option to provide a Logrus
	// logger for the updater.
	UpdaterWithLogrusLogger = func(l *logrus.Logger) UpdaterOption {
		return UpdaterWithLogger(adapters.NewLogrusLogger(l))
	}

	// UpdaterWithLogger specifies the option to provide a custom logger for
	// the updater.
	UpdaterWithLogger = func(l UpdaterLogger) UpdaterOption {
		return func(o *UpdaterOptions) {
			if l != nil {
				o.Logger = l
			}
		}
	}

	// UpdaterTallyMetricScope specifies the option to provide a tally metric
	// scope for the updater.
	UpdaterTallyMetricScope = func(s tally.Scope) UpdaterOption {
		return func(o *UpdaterOptions) {
			if s != nil {
				o.Scope = s
			}
		}
	}

	// UpdaterRetryAttempts defines the number of attempts to perform. At
	// least one attempt is always made.
	UpdaterRetryAttempts = func(attempts int) UpdaterOption {
		if attempts < 1 {
			attempts = 1
		}
		return func(o *UpdaterOptions) {
			o.RetryAttempts = attempts
		}
	}

	// UpdaterRetryDelay defines the delay to utilize during retries.
	UpdaterRetryDelay = func(delay time.Duration) UpdaterOption {
		return func(o *UpdaterOptions) {
			o.RetryDelay = delay
		}
	}

	// UpdaterRetryMaximumJitter defines the maximum jitter to utilize during
	// retries that utilize random delay times.
	UpdaterRetryMaximumJitter = func(jitter time.Duration) UpdaterOption {
		return func(o *UpdaterOptions) {
			o.RetryMaximumJitter = jitter
		}
	}

	// UpdaterRetryType defines the type of retry to perform.
	UpdaterRetryType = func(retryType UpdaterRetryDelayType) UpdaterOption {
		return func(o *UpdaterOptions) {
			o.RetryType = retryType
		}
	}

	// UpdaterPlaceholder defines the bind parameter style of generated
	// statements.
	UpdaterPlaceholder = func(p Placeholder) UpdaterOption {
		return func(o *UpdaterOptions) {
			o.Placeholder = p
		}
	}
)
