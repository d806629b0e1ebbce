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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/test/api"
)

// scenarioNamed looks a scenario up in the catalogue.
func scenarioNamed(name string) conformance.Scenario {
	selected, err := conformance.Select(conformance.Catalogue(), name)
	Expect(err).NotTo(HaveOccurred())
	Expect(selected).To(HaveLen(1))

	return selected[0]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

var _ = Describe("Error Handling", func() {
	Context("When the service is unreachable", func() {
		var unreachable *petfriends.Client

		BeforeEach(func() {
			s := httptest.NewServer(http.NotFoundHandler())
			url := s.URL
			s.Close()

			unreachable = petfriends.New(url, nil)
		})

		It("should return a transport error rather than a status", func() {
			resp, err := unreachable.GetAPIKey(ctx, config.Email, config.Password)
			Expect(err).To(MatchError(petfriends.ErrServiceUnreachable))
			Expect(resp).To(BeNil())
		})

		It("should classify the scenario as unreachable", func() {
			result := conformance.NewRunner(unreachable, config.Config, photos).RunScenario(ctx, scenarioNamed("auth/valid-credentials"))
			Expect(result.Outcome).To(Equal(conformance.OutcomeUnreachable))
		})
	})

	Context("When the service does not answer in time", func() {
		It("should classify the scenario as unreachable", func() {
			release := make(chan struct{})

			s := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				select {
				case <-release:
				case <-r.Context().Done():
				}
			}))
			DeferCleanup(s.Close)
			DeferCleanup(func() { close(release) })

			slow := petfriends.New(s.URL, &petfriends.Options{
				Timeout: 100 * time.Millisecond,
			})

			result := conformance.NewRunner(slow, config.Config, photos).RunScenario(ctx, scenarioNamed("auth/invalid-email"))
			Expect(result.Outcome).To(Equal(conformance.OutcomeUnreachable))
		})
	})

	Context("When a fixture cannot be established", func() {
		var broken *petfriends.Client

		BeforeEach(func() {
			// Issues keys and lists nothing, but refuses to create pets.
			s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch {
				case r.URL.Path == "/api/key":
					writeJSON(w, http.StatusOK, map[string]string{"key": "broken"})
				case r.Method == http.MethodGet && r.URL.Path == "/api/pets":
					writeJSON(w, http.StatusOK, map[string]any{"pets": []any{}})
				default:
					writeJSON(w, http.StatusBadRequest, map[string]string{"error": "creation disabled"})
				}
			}))
			DeferCleanup(s.Close)

			broken = petfriends.New(s.URL, nil)
		})

		It("should report a fixture error, not an assertion failure", func() {
			for _, name := range []string{"pets/delete-owned", "pets/update-owned", "pets/add-photo"} {
				result := conformance.NewRunner(broken, config.Config, photos).RunScenario(ctx, scenarioNamed(name))
				Expect(result.Outcome).To(Equal(conformance.OutcomeFixtureError), name)

				var fixture *conformance.FixtureError
				Expect(result.Err).To(BeAssignableToTypeOf(fixture))
			}
		})

		It("should panic when used from a spec", func() {
			brokenEnv := api.NewEnv(ctx, broken, config, photos)
			key := api.Authenticate(ctx, brokenEnv)

			Expect(func() { api.EnsureOwnedPet(ctx, brokenEnv, key) }).To(PanicWith(BeAssignableToTypeOf(&conformance.FixtureError{})))
		})
	})
})
