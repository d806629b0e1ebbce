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
	"net/http"
	"unicode/utf8"

	"github.com/petfriends-qa/conformance/pkg/petfriends"
)

// maxSnippet bounds how much of a payload is quoted in a failure.
const maxSnippet = 200

func snippet(resp *petfriends.Response) string {
	body := string(resp.Raw)

	if utf8.RuneCountInString(body) <= maxSnippet {
		return body
	}

	return string([]rune(body)[:maxSnippet]) + "..."
}

// expectStatus checks the status code, and for a successful response that
// it matches the API description when validation is enabled.
func expectStatus(resp *petfriends.Response, want int) error {
	if resp.StatusCode != want {
		return failf("%s: expected status %d, got %d: %s", resp.TraceID, want, resp.StatusCode, snippet(resp))
	}

	if resp.SchemaErr != nil {
		return failf("%s: response does not match API description: %v", resp.TraceID, resp.SchemaErr)
	}

	return nil
}

func expectOK(resp *petfriends.Response) error {
	return expectStatus(resp, http.StatusOK)
}

func expectField(resp *petfriends.Response, key, want string) error {
	if !resp.Has(key) {
		return failf("%s: expected field %q in %s", resp.TraceID, key, snippet(resp))
	}

	if got := resp.String(key); got != want {
		return failf("%s: expected %s %q, got %q", resp.TraceID, key, want, got)
	}

	return nil
}

func expectErrorIndicator(resp *petfriends.Response) error {
	if !resp.HasError() {
		return failf("%s: expected an error message in %s", resp.TraceID, snippet(resp))
	}

	return nil
}
