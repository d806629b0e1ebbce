/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package conformance

import (
	"context"
	"fmt"
	"time"

	"github.com/petfriends-qa/conformance/pkg/petfriends"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// cleanupTimeout bounds cleanups, which run even when the run context is done.
const cleanupTimeout = 30 * time.Second

// Result is the outcome of one scenario.
type Result struct {
	Scenario string
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Report aggregates results.
type Report struct {
	Results []Result
}

// Passed is true when every scenario passed.
func (r *Report) Passed() bool {
	for i := range r.Results {
		if r.Results[i].Outcome != OutcomePassed {
			return false
		}
	}

	return true
}

// Counts tallies results by outcome.
func (r *Report) Counts() map[Outcome]int {
	counts := map[Outcome]int{}

	for i := range r.Results {
		counts[r.Results[i].Outcome]++
	}

	return counts
}

// Runner executes scenarios one at a time.
type Runner struct {
	client petfriends.Interface
	config *Config
	photos *Photos
}

// NewRunner returns a runner bound to a client.
func NewRunner(client petfriends.Interface, config *Config, photos *Photos) *Runner {
	return &Runner{
		client: client,
		config: config,
		photos: photos,
	}
}

// Run executes the scenarios in order, bounded by the test timeout.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) *Report {
	if r.config.TestTimeout > 0 {
		c, cancel := context.WithTimeout(ctx, r.config.TestTimeout)
		defer cancel()

		ctx = c
	}

	report := &Report{
		Results: make([]Result, 0, len(scenarios)),
	}

	for _, scenario := range scenarios {
		report.Results = append(report.Results, r.RunScenario(ctx, scenario))
	}

	return report
}

// RunScenario executes a single scenario and its cleanups.
func (r *Runner) RunScenario(ctx context.Context, scenario Scenario) (result Result) {
	logger := log.FromContext(ctx).WithValues("scenario", scenario.Name)
	ctx = log.IntoContext(ctx, logger)

	env := NewEnv(r.client, r.config, r.photos)

	start := time.Now()

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
		defer cancel()

		env.Cleanup(cleanupCtx)

		result.Duration = time.Since(start)

		if result.Outcome == OutcomePassed {
			logger.Info("scenario passed", "duration", result.Duration)
		} else {
			logger.Info("scenario did not pass", "outcome", result.Outcome, "error", result.Err.Error(), "duration", result.Duration)
		}
	}()

	logger.V(1).Info("running scenario", "description", scenario.Description)

	err := runProtected(ctx, scenario, env)

	return Result{
		Scenario: scenario.Name,
		Outcome:  Classify(err),
		Err:      err,
	}
}

// runProtected turns a panicking scenario into a failure.
func runProtected(ctx context.Context, scenario Scenario, env *Env) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = failf("scenario panicked: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", petfriends.ErrServiceUnreachable, err)
	}

	return scenario.Run(ctx, env)
}
