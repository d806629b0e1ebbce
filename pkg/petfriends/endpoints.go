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

package petfriends

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Authentication endpoints.
func (e *Endpoints) GetAPIKey() string {
	return "/api/key"
}

// Pet endpoints.
func (e *Endpoints) ListPets(filter Filter) (string, error) {
	fragment, err := runtime.StyleParamWithLocation("form", true, "filter", runtime.ParamLocationQuery, string(filter))
	if err != nil {
		return "", fmt.Errorf("encoding filter parameter: %w", err)
	}

	query, err := url.ParseQuery(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing filter parameter: %w", err)
	}

	return "/api/pets?" + query.Encode(), nil
}

func (e *Endpoints) AddNewPet() string {
	return "/api/pets"
}

func (e *Endpoints) CreatePetSimple() string {
	return "/api/create_pet_simple"
}

func (e *Endpoints) UpdatePet(petID string) (string, error) {
	return petPath("/api/pets/%s", petID)
}

func (e *Endpoints) DeletePet(petID string) (string, error) {
	return petPath("/api/pets/%s", petID)
}

func (e *Endpoints) SetPetPhoto(petID string) (string, error) {
	return petPath("/api/pets/set_photo/%s", petID)
}

func petPath(format, petID string) (string, error) {
	param, err := runtime.StyleParamWithLocation("simple", false, "pet_id", runtime.ParamLocationPath, petID)
	if err != nil {
		return "", fmt.Errorf("encoding pet_id parameter: %w", err)
	}

	return fmt.Sprintf(format, param), nil
}
