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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/constants"
	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/test/api"
)

// longName is one character over the limit.
func longName() string {
	return strings.Repeat("A", constants.MaxPetNameLength+1)
}

var _ = Describe("Pet Management", func() {
	var key petfriends.AuthKey

	BeforeEach(func() {
		key = api.Authenticate(ctx, env)
	})

	Context("When listing pets", func() {
		Describe("Given at least one pet exists", func() {
			BeforeEach(func() {
				api.EnsureOwnedPet(ctx, env, key)
			})

			It("should return a non-empty list of all pets", func() {
				resp, err := client.ListPets(ctx, key, petfriends.FilterAll)
				api.ExpectStatus(resp, err, http.StatusOK)

				list, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Pets).NotTo(BeEmpty())
			})
		})

		Describe("Given a newly created pet", func() {
			It("should be listed under my pets", func() {
				pet := api.CreatePetWithCleanup(ctx, env, key, api.NewPetPayload().WithoutPhoto())

				api.VerifyPetPresence(ctx, client, key, pet.ID)
			})
		})
	})

	Context("When creating a pet", func() {
		Describe("Given valid data and a photo", func() {
			It("should echo the pet name", func() {
				payload := api.NewPetPayload().
					WithName("Обезьян").
					WithAnimalType("шимпанзе").
					WithAge(4).
					WithPhoto(conformance.PhotoCat)

				resp, err := client.AddNewPet(ctx, key, payload.Build(), api.PhotoPath(env, payload.Photo()))
				api.ExpectStatus(resp, err, http.StatusOK)

				pet, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())

				DeferCleanup(func() {
					_, _ = client.DeletePet(ctx, key, pet.ID)
				})

				Expect(pet.Name).To(Equal("Обезьян"))
				Expect(pet.AnimalType).To(Equal("шимпанзе"))
				Expect(pet.PetPhoto).NotTo(BeEmpty())
			})
		})

		Describe("Given valid data without a photo", func() {
			It("should echo every field", func() {
				payload := api.NewPetPayload().WithAge(5).WithoutPhoto()

				pet := api.CreatePetWithCleanup(ctx, env, key, payload)

				Expect(pet.Name).To(Equal(payload.Build().Name))
				Expect(pet.AnimalType).To(Equal(payload.Build().AnimalType))
				Expect(pet.Age.Int()).To(Equal(5))
				Expect(pet.PetPhoto).To(BeEmpty())
			})
		})

		Describe("Given a single invalid field", func() {
			DescribeTable("should reject the pet",
				func(payload *api.PetPayloadBuilder, errorIndicator bool) {
					var photo string

					if payload.Photo() != "" {
						photo = api.PhotoPath(env, payload.Photo())
					}

					resp, err := client.AddNewPet(ctx, key, payload.Build(), photo)
					Expect(err).NotTo(HaveOccurred())

					if id := resp.String("id"); resp.OK() && id != "" {
						DeferCleanup(func() {
							_, _ = client.DeletePet(ctx, key, id)
						})
					}

					Expect(resp.StatusCode).To(Equal(http.StatusBadRequest), "trace %s", resp.TraceID)

					if errorIndicator {
						Expect(resp.HasError()).To(BeTrue(), "expected an error message in %s", string(resp.Raw))
					}
				},
				Entry("with an empty name", api.NewPetPayload().WithName("").WithAnimalType("dog").WithAge(2).WithPhoto(conformance.PhotoDog), false),
				Entry("with an empty animal type", api.NewPetPayload().WithName("Барбос").WithAnimalType("").WithPhoto(conformance.PhotoDog), false),
				Entry("with a name one character too long", api.NewPetPayload().WithName(longName()).WithAnimalType("dog").WithAge(4).WithoutPhoto(), true),
				Entry("with a negative age", api.NewPetPayload().WithName("Бобик").WithAnimalType("dog").WithRawAge("-5").WithoutPhoto(), true),
			)
		})

		Describe("Given a name at the maximum length", func() {
			It("should accept the pet", func() {
				name := longName()[1:]

				pet := api.CreatePetWithCleanup(ctx, env, key, api.NewPetPayload().WithName(name).WithoutPhoto())

				Expect(pet.Name).To(Equal(name))
			})
		})
	})

	Context("When updating a pet", func() {
		Describe("Given the pet is owned", func() {
			It("should apply the new name", func() {
				pet := api.EnsureOwnedPet(ctx, env, key)

				resp, err := client.UpdatePetInfo(ctx, key, pet.ID, api.NewPetPayload().WithName("Барс").WithAnimalType("кот").WithAge(2).Build())
				api.ExpectStatus(resp, err, http.StatusOK)

				Expect(resp.String("name")).To(Equal("Барс"))
			})
		})

		Describe("Given the pet does not exist", func() {
			It("should reject the update", func() {
				resp, err := client.UpdatePetInfo(ctx, key, conformance.UnknownPetID, api.NewPetPayload().WithName("Рекс").WithAnimalType("собака").WithAge(5).Build())
				api.ExpectStatus(resp, err, http.StatusBadRequest)
			})
		})
	})

	Context("When deleting a pet", func() {
		Describe("Given the pet is owned", func() {
			It("should remove it from my pets", func() {
				pet := api.EnsureOwnedPet(ctx, env, key)

				resp, err := client.DeletePet(ctx, key, pet.ID)
				api.ExpectStatus(resp, err, http.StatusOK)

				api.VerifyPetAbsence(ctx, client, key, pet.ID)
			})
		})
	})

	Context("When setting a photo", func() {
		Describe("Given the pet is owned", func() {
			It("should report the same photo when listed", func() {
				pet := api.EnsureOwnedPet(ctx, env, key)

				resp, err := client.AddPetPhoto(ctx, key, pet.ID, api.PhotoPath(env, conformance.PhotoDog))
				api.ExpectStatus(resp, err, http.StatusOK)

				photo := resp.String("pet_photo")
				Expect(photo).NotTo(BeEmpty())

				listed, ok := api.ListMyPets(ctx, client, key).Find(pet.ID)
				Expect(ok).To(BeTrue())
				Expect(listed.PetPhoto).To(Equal(photo))
			})
		})
	})
})
