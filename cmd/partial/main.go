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

// Command partial applies a partial update to a row of a SQLite 'users'
// table, writing only the columns selected by the update mode and the
// included or excluded properties.
//
//	partial --dsn users.db --id 1 --email ann@example.com
//	partial --dsn users.db --id 1 --mode min --include bio
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/freerware/partial"
	"github.com/spf13/cobra"
	"github.com/uber-go/tally/v4"
	tstatsd "github.com/uber-go/tally/v4/statsd"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type flags struct {
	dsn     string
	id      int64
	name    string
	email   string
	bio     string
	mode    string
	include []string
	exclude []string
	policy  string
	statsd  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "partial",
		Short: "Apply a partial update to a user",
		Long: `Applies a partial update to a row of the 'users' table.

Properties whose flag is not set are absent. Under the MIDDLE mode absent
properties are written (as NULL) only when included, while provided values
are written unless excluded. MAX writes everything that isn't excluded and
MIN writes only what is included.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.dsn, "dsn", "partial.db", "SQLite data source name")
	fl.Int64Var(&f.id, "id", 1, "identifier of the user to update")
	fl.StringVar(&f.name, "name", "", "new name of the user")
	fl.StringVar(&f.email, "email", "", "new email of the user")
	fl.StringVar(&f.bio, "bio", "", "new bio of the user")
	fl.StringVar(&f.mode, "mode", partial.UpdateModeMiddle.String(), "update mode: max, min, or middle")
	fl.StringSliceVar(&f.include, "include", nil, "properties to include")
	fl.StringSliceVar(&f.exclude, "exclude", nil, "properties to exclude")
	fl.StringVar(&f.policy, "policy", "", "YAML file of update policies")
	fl.StringVar(&f.statsd, "statsd", "", "statsd address to report metrics to")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, f *flags) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := zap.NewNop()
	if f.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return
		}
	}
	defer logger.Sync()

	scope, closer, err := metricScope(f.statsd)
	if err != nil {
		return
	}
	defer func() { err = multierr.Append(err, closer.Close()) }()

	db, err := sql.Open("sqlite", f.dsn)
	if err != nil {
		return
	}
	defer func() { err = multierr.Append(err, db.Close()) }()
	db.SetMaxOpenConns(1)

	if err = prepare(ctx, db, f.id); err != nil {
		return
	}

	u := User{
		ID:    f.id,
		Name:  value(cmd, "name", f.name),
		Email: value(cmd, "email", f.email),
		Bio:   value(cmd, "bio", f.bio),
	}
	d, err := decision(cmd, f, u)
	if err != nil {
		return
	}

	updater, err := partial.NewSQLUpdater[User](db, usersTable,
		partial.UpdaterWithZapLogger(logger),
		partial.UpdaterTallyMetricScope(scope),
	)
	if err != nil {
		return
	}
	if err = updater.Update(ctx, d); err != nil {
		return
	}

	row, err := load(ctx, db, f.id)
	if err != nil {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), row)
	return
}

// decision builds the update decision for the provided user. A policy for
// the user is applied first, and the mode flag overrides the policy's mode
// only when set explicitly.
func decision(cmd *cobra.Command, f *flags, u User) (*partial.UpdateDecision[User], error) {
	mode, err := partial.ParseUpdateMode(f.mode)
	if err != nil {
		return nil, err
	}
	d := partial.NewUpdateDecisionWithMode(u, mode)

	if f.policy != "" {
		file, err := os.Open(f.policy)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		policies, err := partial.LoadPolicies(file)
		if err != nil {
			return nil, err
		}
		if p, ok := policies.For(u); ok {
			partial.ApplyPolicy(d, p)
			if cmd.Flags().Changed("mode") {
				d.SetUpdateMode(mode)
			}
		}
	}

	for _, name := range f.include {
		d.Include(name)
	}
	for _, name := range f.exclude {
		d.Exclude(name)
	}
	return d, nil
}

// value provides the flag's value, or nil when the flag wasn't set.
func value(cmd *cobra.Command, flag, v string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// metricScope provides the metric scope for the command, reporting to
// statsd when an address is provided.
func metricScope(addr string) (tally.Scope, io.Closer, error) {
	opts := tally.ScopeOptions{Prefix: "partial"}
	if addr == "" {
		scope, closer := tally.NewRootScope(opts, 0)
		return scope, closer, nil
	}

	statter, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address:       addr,
		UseBuffered:   true,
		FlushInterval: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	opts.Reporter = tstatsd.NewReporter(statter, tstatsd.Options{SampleRate: 1.0})
	scope, closer := tally.NewRootScope(opts, time.Second)
	return scope, closerFunc(func() error {
		return multierr.Combine(closer.Close(), statter.Close())
	}), nil
}
