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
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Exit codes, in order of precedence when outcomes are mixed.
const (
	ExitPassed       = 0
	ExitFailed       = 1
	ExitFixtureError = 2
	ExitUnreachable  = 3
)

// ExitCode maps the aggregate result to a process exit code.  Assertion
// failures dominate, as they are the only outcome that says something
// about the service's behaviour.
func (r *Report) ExitCode() int {
	counts := r.Counts()

	switch {
	case counts[OutcomeFailed] > 0:
		return ExitFailed
	case counts[OutcomeUnreachable] > 0:
		return ExitUnreachable
	case counts[OutcomeFixtureError] > 0:
		return ExitFixtureError
	}

	return ExitPassed
}

// Write prints one line per scenario then a summary.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, result := range r.Results {
		detail := ""
		if result.Err != nil {
			detail = result.Err.Error()
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", result.Outcome, result.Scenario, result.Duration.Round(time.Millisecond), detail); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	counts := r.Counts()

	_, err := fmt.Fprintf(w, "\n%d scenarios: %d passed, %d failed, %d fixture errors, %d unreachable\n",
		len(r.Results), counts[OutcomePassed], counts[OutcomeFailed], counts[OutcomeFixtureError], counts[OutcomeUnreachable])

	return err
}
