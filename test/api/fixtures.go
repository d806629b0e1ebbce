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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/petfriends"
)

// NewEnv returns a scenario environment whose cleanups run when the current
// spec ends.
func NewEnv(ctx context.Context, client petfriends.Interface, config *TestConfig, photos *conformance.Photos) *conformance.Env {
	env := conformance.NewEnv(client, config.Config, photos)

	DeferCleanup(func() {
		env.Cleanup(context.WithoutCancel(ctx))
	})

	return env
}

// must panics on a fixture failure, which Ginkgo reports distinctly from an
// assertion failure.
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

// Authenticate returns a key for the valid credentials.
func Authenticate(ctx context.Context, env *conformance.Env) petfriends.AuthKey {
	return must(env.Authenticate(ctx))
}

// PhotoPath returns the path of a sample image.
func PhotoPath(env *conformance.Env, name string) string {
	return must(env.Photo(name))
}

// CreatePetWithCleanup creates a pet and schedules its deletion.
func CreatePetWithCleanup(ctx context.Context, env *conformance.Env, key petfriends.AuthKey, builder *PetPayloadBuilder) *petfriends.Pet {
	pet := must(conformance.CreateOwnedPet(ctx, env, key, builder.Build(), builder.Photo()))

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)

	return pet
}

// EnsureOwnedPet returns a pet owned by the key holder, creating one when
// there is none.
func EnsureOwnedPet(ctx context.Context, env *conformance.Env, key petfriends.AuthKey) *petfriends.Pet {
	pet := must(conformance.EnsureOwnedPet(ctx, env, key))

	GinkgoWriter.Printf("Using owned pet with ID: %s\n", pet.ID)

	return pet
}

// ListMyPets lists owned pets, asserting the call succeeds.
func ListMyPets(ctx context.Context, client petfriends.Interface, key petfriends.AuthKey) *petfriends.PetList {
	resp, err := client.ListPets(ctx, key, petfriends.FilterMyPets)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	list, err := resp.Pets()
	Expect(err).NotTo(HaveOccurred())

	return list
}

// VerifyPetPresence verifies that pets are listed as owned.
func VerifyPetPresence(ctx context.Context, client petfriends.Interface, key petfriends.AuthKey, expectedPetIDs ...string) {
	petIDs := ListMyPets(ctx, client, key).IDs()

	for _, expectedID := range expectedPetIDs {
		Expect(petIDs).To(ContainElement(expectedID), "Expected pet ID %s to be present in the list", expectedID)
	}
}

// VerifyPetAbsence verifies that pets are not listed as owned.
func VerifyPetAbsence(ctx context.Context, client petfriends.Interface, key petfriends.AuthKey, petIDs ...string) {
	listed := ListMyPets(ctx, client, key).IDs()

	for _, petID := range petIDs {
		Expect(listed).NotTo(ContainElement(petID), "Expected pet ID %s to be absent from the list", petID)
	}
}

// ExpectStatus asserts the call reached the service and returned status.
func ExpectStatus(resp *petfriends.Response, err error, status int) *petfriends.Response {
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(status), "trace %s: %s", resp.TraceID, string(resp.Raw))
	Expect(resp.SchemaErr).NotTo(HaveOccurred())

	return resp
}

// ExpectScenario runs a catalogue scenario as a spec.  Fixture errors panic,
// everything else is an assertion.
func ExpectScenario(ctx context.Context, runner *conformance.Runner, scenario conformance.Scenario) {
	result := runner.RunScenario(ctx, scenario)

	switch result.Outcome {
	case conformance.OutcomePassed:
	case conformance.OutcomeFixtureError:
		panic(result.Err)
	case conformance.OutcomeFailed, conformance.OutcomeUnreachable:
		Fail(result.Err.Error())
	}
}
