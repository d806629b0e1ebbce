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
	"errors"
	"fmt"

	"github.com/petfriends-qa/conformance/pkg/petfriends"
)

// Scenario is a single named check against the service.  A scenario
// authenticates on its own and never relies on another having run.
type Scenario struct {
	// Name is unique within the catalogue, e.g. "pets/delete-owned".
	Name string

	// Description says what behaviour is checked.
	Description string

	// Run executes the scenario.  A nil error is a pass.
	Run func(ctx context.Context, env *Env) error
}

// Env is what a scenario runs against.
type Env struct {
	// Client talks to the service under test.
	Client petfriends.Interface

	// Config holds credentials and tunables.
	Config *Config

	// Photos resolves sample images.
	Photos *Photos

	cleanups []func(ctx context.Context)
}

// NewEnv returns an environment for a single scenario run.
func NewEnv(client petfriends.Interface, config *Config, photos *Photos) *Env {
	return &Env{
		Client: client,
		Config: config,
		Photos: photos,
	}
}

// DeferCleanup registers a function run after the scenario, whatever its
// outcome.  Cleanups run in reverse order of registration.
func (e *Env) DeferCleanup(f func(ctx context.Context)) {
	e.cleanups = append(e.cleanups, f)
}

// Cleanup runs and clears the registered cleanups.
func (e *Env) Cleanup(ctx context.Context) {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i](ctx)
	}

	e.cleanups = nil
}

// Authenticate obtains a key with the valid credentials.  Failing to do so
// makes every dependent check meaningless, so it is a fixture error.
func (e *Env) Authenticate(ctx context.Context) (petfriends.AuthKey, error) {
	resp, err := e.Client.GetAPIKey(ctx, e.Config.Email, e.Config.Password)
	if err != nil {
		return petfriends.AuthKey{}, fixtureErr("authenticate", err)
	}

	if !resp.OK() {
		return petfriends.AuthKey{}, fixtureErrf("authenticate", "key request returned status %d", resp.StatusCode)
	}

	key, err := resp.Key()
	if err != nil {
		return petfriends.AuthKey{}, fixtureErr("authenticate", err)
	}

	return key, nil
}

// Photo returns the path of a sample image.
func (e *Env) Photo(name string) (string, error) {
	path, err := e.Photos.Path(name)
	if err != nil {
		return "", fixtureErr("photo", err)
	}

	return path, nil
}

// AssertionError is an observed response that does not meet expectations.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// failf returns an assertion failure.
func failf(format string, args ...any) error {
	return &AssertionError{
		Message: fmt.Sprintf(format, args...),
	}
}

// FixtureError is a precondition the scenario could not establish.  It is
// reported separately from assertion failures because the behaviour under
// test was never observed.
type FixtureError struct {
	Fixture string
	Err     error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %s unsatisfiable: %v", e.Fixture, e.Err)
}

func (e *FixtureError) Unwrap() error {
	return e.Err
}

func fixtureErr(fixture string, err error) error {
	return &FixtureError{
		Fixture: fixture,
		Err:     err,
	}
}

func fixtureErrf(fixture, format string, args ...any) error {
	return fixtureErr(fixture, fmt.Errorf(format, args...))
}

// Outcome classifies a scenario result.
type Outcome string

const (
	OutcomePassed       Outcome = "passed"
	OutcomeFailed       Outcome = "failed"
	OutcomeFixtureError Outcome = "fixture-error"
	OutcomeUnreachable  Outcome = "unreachable"
)

// Classify maps a scenario error to its outcome.  Transport failures win
// over everything else, since nothing else can be trusted after one.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomePassed
	}

	if errors.Is(err, petfriends.ErrServiceUnreachable) || errors.Is(err, context.DeadlineExceeded) {
		return OutcomeUnreachable
	}

	var fixtureError *FixtureError
	if errors.As(err, &fixtureError) {
		return OutcomeFixtureError
	}

	return OutcomeFailed
}
