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

package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/petfriends"

	"k8s.io/utils/ptr"
)

// GenerateTestName returns a pet name unique to this run.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, time.Now().Format("150405.000000"))
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet   petfriends.NewPet
	photo *string
}

// NewPetPayload creates a new pet payload builder with valid defaults and a
// photo.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: petfriends.NewPet{
			Name:       GenerateTestName("testautomation"),
			AnimalType: "кот",
			Age:        "3",
		},
		photo: ptr.To(conformance.PhotoCat),
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

// WithAnimalType sets the species.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.pet.AnimalType = animalType
	return b
}

// WithAge sets the age in years.
func (b *PetPayloadBuilder) WithAge(age int) *PetPayloadBuilder {
	b.pet.Age = strconv.Itoa(age)
	return b
}

// WithRawAge sets the age verbatim, for malformed values.
func (b *PetPayloadBuilder) WithRawAge(age string) *PetPayloadBuilder {
	b.pet.Age = age
	return b
}

// WithPhoto sets the sample image to upload.
func (b *PetPayloadBuilder) WithPhoto(name string) *PetPayloadBuilder {
	b.photo = ptr.To(name)
	return b
}

// WithoutPhoto creates the pet without an image.
func (b *PetPayloadBuilder) WithoutPhoto() *PetPayloadBuilder {
	b.photo = nil
	return b
}

// Photo returns the sample image name, empty when there is none.
func (b *PetPayloadBuilder) Photo() string {
	return ptr.Deref(b.photo, "")
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() petfriends.NewPet {
	return b.pet
}
