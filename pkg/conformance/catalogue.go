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
	"net/http"
	"path"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petfriends-qa/conformance/pkg/constants"
	"github.com/petfriends-qa/conformance/pkg/petfriends"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// UnknownPetID is never issued by the service.
	UnknownPetID = "invalid_pet_id_123"

	// InvalidKey is never issued by the service.
	InvalidKey = "invalid_auth_key"
)

var (
	// ErrNoScenario is raised when a selector matches nothing.
	ErrNoScenario = errors.New("no scenario matches")
)

// Catalogue returns every scenario, in execution order.
func Catalogue() []Scenario {
	return []Scenario{
		{
			Name:        "auth/valid-credentials",
			Description: "valid credentials are exchanged for a non-empty key",
			Run:         validCredentials,
		},
		{
			Name:        "auth/invalid-email",
			Description: "an unknown email is rejected with 403",
			Run: func(ctx context.Context, env *Env) error {
				return rejectedCredentials(ctx, env, env.Config.InvalidEmail, env.Config.Password)
			},
		},
		{
			Name:        "auth/invalid-password",
			Description: "a wrong password is rejected with 403",
			Run: func(ctx context.Context, env *Env) error {
				return rejectedCredentials(ctx, env, env.Config.Email, env.Config.InvalidPassword)
			},
		},
		{
			Name:        "pets/list-all",
			Description: "listing all pets returns a non-empty collection",
			Run:         listAll,
		},
		{
			Name:        "pets/list-mine",
			Description: "a new pet is listed under my_pets",
			Run:         listMine,
		},
		{
			Name:        "pets/create-with-photo",
			Description: "a pet created with a photo echoes its name",
			Run:         createWithPhoto,
		},
		{
			Name:        "pets/create-simple",
			Description: "a pet created without a photo echoes its fields",
			Run:         createSimple,
		},
		{
			Name:        "pets/create-empty-name",
			Description: "a pet with an empty name is rejected with 400",
			Run: func(ctx context.Context, env *Env) error {
				return rejectedCreate(ctx, env, petfriends.NewPet{Name: "", AnimalType: "dog", Age: "2"}, PhotoDog, false)
			},
		},
		{
			Name:        "pets/create-empty-type",
			Description: "a pet with an empty animal type is rejected with 400",
			Run: func(ctx context.Context, env *Env) error {
				return rejectedCreate(ctx, env, petfriends.NewPet{Name: "Барбос", AnimalType: "", Age: "3"}, PhotoDog, false)
			},
		},
		{
			Name:        "pets/create-long-name",
			Description: "a pet with a name over the maximum length is rejected with an error",
			Run: func(ctx context.Context, env *Env) error {
				name := strings.Repeat("A", constants.MaxPetNameLength+1)

				return rejectedCreate(ctx, env, petfriends.NewPet{Name: name, AnimalType: "dog", Age: "4"}, "", true)
			},
		},
		{
			Name:        "pets/create-negative-age",
			Description: "a pet with a negative age is rejected with an error",
			Run: func(ctx context.Context, env *Env) error {
				return rejectedCreate(ctx, env, petfriends.NewPet{Name: "Бобик", AnimalType: "dog", Age: "-5"}, "", true)
			},
		},
		{
			Name:        "pets/delete-owned",
			Description: "a deleted pet is gone from my_pets",
			Run:         deleteOwned,
		},
		{
			Name:        "pets/update-owned",
			Description: "an owned pet can be renamed",
			Run:         updateOwned,
		},
		{
			Name:        "pets/update-unknown-id",
			Description: "updating an unknown pet is rejected with 400",
			Run:         updateUnknown,
		},
		{
			Name:        "pets/add-photo",
			Description: "a photo set on a pet is what my_pets reports",
			Run:         addPhoto,
		},
		{
			Name:        "auth/invalid-key-list",
			Description: "listing with an unknown key is forbidden",
			Run:         invalidKeyList,
		},
		{
			Name:        "auth/invalid-key-create",
			Description: "creating with an unknown key is forbidden",
			Run:         invalidKeyCreate,
		},
		{
			Name:        "auth/invalid-key-update",
			Description: "updating with an unknown key is forbidden",
			Run:         invalidKeyUpdate,
		},
		{
			Name:        "auth/invalid-key-delete",
			Description: "deleting with an unknown key is forbidden and the pet survives",
			Run:         invalidKeyDelete,
		},
		{
			Name:        "auth/invalid-key-photo",
			Description: "setting a photo with an unknown key is forbidden",
			Run:         invalidKeyPhoto,
		},
	}
}

// Select returns the scenarios whose names match any of the patterns, in
// catalogue order.  Patterns use path.Match syntax, so "auth/*" selects the
// authentication scenarios.  No patterns selects everything.
func Select(scenarios []Scenario, patterns ...string) ([]Scenario, error) {
	if len(patterns) == 0 {
		return scenarios, nil
	}

	var (
		selected []Scenario
		used     []string
	)

	for _, scenario := range scenarios {
		matched := false

		for _, pattern := range patterns {
			ok, err := path.Match(pattern, scenario.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid scenario pattern %q: %w", pattern, err)
			}

			if ok {
				matched = true

				used = append(used, pattern)
			}
		}

		if matched {
			selected = append(selected, scenario)
		}
	}

	for pattern := range set.New[string](patterns...).Difference(set.New[string](used...)).All() {
		return nil, fmt.Errorf("%w: %s", ErrNoScenario, pattern)
	}

	return selected, nil
}

func validCredentials(ctx context.Context, env *Env) error {
	resp, err := env.Client.GetAPIKey(ctx, env.Config.Email, env.Config.Password)
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	if _, err := resp.Key(); err != nil {
		return failf("%s: expected a key: %v", resp.TraceID, err)
	}

	return nil
}

func rejectedCredentials(ctx context.Context, env *Env, email, password string) error {
	resp, err := env.Client.GetAPIKey(ctx, email, password)
	if err != nil {
		return err
	}

	return expectStatus(resp, http.StatusForbidden)
}

func listAll(ctx context.Context, env *Env) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	// A fresh service may hold no pets at all.
	if _, err := EnsureOwnedPet(ctx, env, key); err != nil {
		return err
	}

	resp, err := env.Client.ListPets(ctx, key, petfriends.FilterAll)
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	all, err := resp.Pets()
	if err != nil {
		return failf("%s: %v", resp.TraceID, err)
	}

	if len(all.Pets) == 0 {
		return failf("%s: expected at least one pet", resp.TraceID)
	}

	return nil
}

func listMine(ctx context.Context, env *Env) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	created, err := CreateOwnedPet(ctx, env, key, petfriends.NewPet{Name: "Мурзик", AnimalType: "кот", Age: "1"}, "")
	if err != nil {
		return err
	}

	resp, err := env.Client.ListPets(ctx, key, petfriends.FilterMyPets)
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	mine, err := resp.Pets()
	if err != nil {
		return failf("%s: %v", resp.TraceID, err)
	}

	missing := set.New[string](created.ID).Difference(set.New[string](mine.IDs()...))

	for id := range missing.All() {
		return failf("%s: created pet %s missing from my_pets", resp.TraceID, id)
	}

	return nil
}

// createAndCheck creates a pet, schedules its removal and checks the echo.
func createAndCheck(ctx context.Context, env *Env, pet petfriends.NewPet, photo string) (*petfriends.Response, error) {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var resp *petfriends.Response

	if photo == "" {
		resp, err = env.Client.CreatePetSimple(ctx, key, pet)
	} else {
		path, perr := env.Photo(photo)
		if perr != nil {
			return nil, perr
		}

		resp, err = env.Client.AddNewPet(ctx, key, pet, path)
	}

	if err != nil {
		return nil, err
	}

	if id := resp.String("id"); id != "" {
		scheduleDelete(env, key, id)
	}

	if err := expectOK(resp); err != nil {
		return nil, err
	}

	if err := expectField(resp, "name", pet.Name); err != nil {
		return nil, err
	}

	return resp, nil
}

func createWithPhoto(ctx context.Context, env *Env) error {
	_, err := createAndCheck(ctx, env, petfriends.NewPet{Name: "Обезьян", AnimalType: "шимпанзе", Age: "4"}, PhotoCat)

	return err
}

func createSimple(ctx context.Context, env *Env) error {
	pet := petfriends.NewPet{Name: "Кекс", AnimalType: "кот", Age: "5"}

	resp, err := createAndCheck(ctx, env, pet, "")
	if err != nil {
		return err
	}

	if err := expectField(resp, "animal_type", pet.AnimalType); err != nil {
		return err
	}

	created, err := resp.Pet()
	if err != nil {
		return failf("%s: %v", resp.TraceID, err)
	}

	if string(created.Age) != pet.Age {
		return failf("%s: expected age %s, got %s", resp.TraceID, pet.Age, created.Age)
	}

	if created.PetPhoto != "" {
		return failf("%s: expected no photo, got one", resp.TraceID)
	}

	return nil
}

// rejectedCreate checks a create with one invalid field is refused.  Should
// the service accept it anyway, the pet is cleaned up.
func rejectedCreate(ctx context.Context, env *Env, pet petfriends.NewPet, photo string, indicator bool) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	var path string

	if photo != "" {
		if path, err = env.Photo(photo); err != nil {
			return err
		}
	}

	resp, err := env.Client.AddNewPet(ctx, key, pet, path)
	if err != nil {
		return err
	}

	if id := resp.String("id"); resp.OK() && id != "" {
		scheduleDelete(env, key, id)
	}

	if err := expectStatus(resp, http.StatusBadRequest); err != nil {
		return err
	}

	if indicator {
		return expectErrorIndicator(resp)
	}

	return nil
}

func deleteOwned(ctx context.Context, env *Env) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	pet, err := EnsureOwnedPet(ctx, env, key)
	if err != nil {
		return err
	}

	log.FromContext(ctx).Info("deleting pet", "pet", describePet(pet))

	resp, err := env.Client.DeletePet(ctx, key, pet.ID)
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	return expectAbsent(ctx, env, key, pet.ID)
}

func updateOwned(ctx context.Context, env *Env) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	pet, err := EnsureOwnedPet(ctx, env, key)
	if err != nil {
		return err
	}

	resp, err := env.Client.UpdatePetInfo(ctx, key, pet.ID, petfriends.NewPet{Name: "Барс", AnimalType: "кот", Age: "2"})
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	return expectField(resp, "name", "Барс")
}

func updateUnknown(ctx context.Context, env *Env) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	resp, err := env.Client.UpdatePetInfo(ctx, key, UnknownPetID, petfriends.NewPet{Name: "Рекс", AnimalType: "собака", Age: "5"})
	if err != nil {
		return err
	}

	return expectStatus(resp, http.StatusBadRequest)
}

func addPhoto(ctx context.Context, env *Env) error {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return err
	}

	pet, err := EnsureOwnedPet(ctx, env, key)
	if err != nil {
		return err
	}

	photo, err := env.Photo(PhotoDog)
	if err != nil {
		return err
	}

	resp, err := env.Client.AddPetPhoto(ctx, key, pet.ID, photo)
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	if resp.String("pet_photo") == "" {
		return failf("%s: expected pet_photo to be set", resp.TraceID)
	}

	// Read back by id, list order is not guaranteed.
	listed, err := expectPresent(ctx, env, key, pet.ID)
	if err != nil {
		return err
	}

	if listed.PetPhoto != resp.String("pet_photo") {
		return failf("%s: pet_photo for %s differs between update and my_pets", resp.TraceID, pet.ID)
	}

	return nil
}

func invalidKey() petfriends.AuthKey {
	return petfriends.AuthKey{Key: InvalidKey}
}

func invalidKeyList(ctx context.Context, env *Env) error {
	resp, err := env.Client.ListPets(ctx, invalidKey(), petfriends.FilterAll)
	if err != nil {
		return err
	}

	return expectStatus(resp, http.StatusForbidden)
}

func invalidKeyCreate(ctx context.Context, env *Env) error {
	photo, err := env.Photo(PhotoCat)
	if err != nil {
		return err
	}

	resp, err := env.Client.AddNewPet(ctx, invalidKey(), petfriends.NewPet{Name: "Обезьян", AnimalType: "шимпанзе", Age: "4"}, photo)
	if err != nil {
		return err
	}

	return expectStatus(resp, http.StatusForbidden)
}

// ownedPetForInvalidKey finds a real pet so the key is the only invalid
// input.
func ownedPetForInvalidKey(ctx context.Context, env *Env) (petfriends.AuthKey, *petfriends.Pet, error) {
	key, err := env.Authenticate(ctx)
	if err != nil {
		return petfriends.AuthKey{}, nil, err
	}

	pet, err := EnsureOwnedPet(ctx, env, key)
	if err != nil {
		return petfriends.AuthKey{}, nil, err
	}

	return key, pet, nil
}

func invalidKeyUpdate(ctx context.Context, env *Env) error {
	_, pet, err := ownedPetForInvalidKey(ctx, env)
	if err != nil {
		return err
	}

	resp, err := env.Client.UpdatePetInfo(ctx, invalidKey(), pet.ID, petfriends.NewPet{Name: "Барс", AnimalType: "кот", Age: "2"})
	if err != nil {
		return err
	}

	return expectStatus(resp, http.StatusForbidden)
}

func invalidKeyDelete(ctx context.Context, env *Env) error {
	key, pet, err := ownedPetForInvalidKey(ctx, env)
	if err != nil {
		return err
	}

	resp, err := env.Client.DeletePet(ctx, invalidKey(), pet.ID)
	if err != nil {
		return err
	}

	if err := expectStatus(resp, http.StatusForbidden); err != nil {
		return err
	}

	_, err = expectPresent(ctx, env, key, pet.ID)

	return err
}

func invalidKeyPhoto(ctx context.Context, env *Env) error {
	_, pet, err := ownedPetForInvalidKey(ctx, env)
	if err != nil {
		return err
	}

	photo, err := env.Photo(PhotoDog)
	if err != nil {
		return err
	}

	resp, err := env.Client.AddPetPhoto(ctx, invalidKey(), pet.ID, photo)
	if err != nil {
		return err
	}

	return expectStatus(resp, http.StatusForbidden)
}
