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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should issue a non-empty key", func() {
				resp, err := client.GetAPIKey(ctx, config.Email, config.Password)
				api.ExpectStatus(resp, err, http.StatusOK)

				Expect(resp.Body).To(HaveKey("key"))

				key, err := resp.Key()
				Expect(err).NotTo(HaveOccurred())
				Expect(key.Key).NotTo(BeEmpty())
			})

			It("should issue a key accepted by every operation", func() {
				key := api.Authenticate(ctx, env)

				resp, err := client.ListPets(ctx, key, petfriends.FilterAll)
				api.ExpectStatus(resp, err, http.StatusOK)
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject an unknown email", func() {
				resp, err := client.GetAPIKey(ctx, config.InvalidEmail, config.Password)
				api.ExpectStatus(resp, err, http.StatusForbidden)
			})

			It("should reject a wrong password", func() {
				resp, err := client.GetAPIKey(ctx, config.Email, config.InvalidPassword)
				api.ExpectStatus(resp, err, http.StatusForbidden)
			})
		})
	})

	Context("When using an invalid key", func() {
		var (
			invalid petfriends.AuthKey
			pet     *petfriends.Pet
			key     petfriends.AuthKey
		)

		BeforeEach(func() {
			invalid = petfriends.AuthKey{Key: conformance.InvalidKey}
			key = api.Authenticate(ctx, env)
			pet = api.EnsureOwnedPet(ctx, env, key)
		})

		It("should forbid listing pets", func() {
			resp, err := client.ListPets(ctx, invalid, petfriends.FilterAll)
			api.ExpectStatus(resp, err, http.StatusForbidden)
		})

		It("should forbid creating a pet", func() {
			payload := api.NewPetPayload()

			resp, err := client.AddNewPet(ctx, invalid, payload.Build(), api.PhotoPath(env, payload.Photo()))
			api.ExpectStatus(resp, err, http.StatusForbidden)
		})

		It("should forbid updating a pet", func() {
			resp, err := client.UpdatePetInfo(ctx, invalid, pet.ID, api.NewPetPayload().Build())
			api.ExpectStatus(resp, err, http.StatusForbidden)
		})

		It("should forbid deleting a pet and leave it in place", func() {
			resp, err := client.DeletePet(ctx, invalid, pet.ID)
			api.ExpectStatus(resp, err, http.StatusForbidden)

			api.VerifyPetPresence(ctx, client, key, pet.ID)
		})

		It("should forbid setting a photo", func() {
			resp, err := client.AddPetPhoto(ctx, invalid, pet.ID, api.PhotoPath(env, conformance.PhotoDog))
			api.ExpectStatus(resp, err, http.StatusForbidden)
		})
	})
})
