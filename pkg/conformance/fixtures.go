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
	"fmt"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petfriends-qa/conformance/pkg/petfriends"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// fixturePet is created when the account owns no pets.
//
//nolint:gochecknoglobals
var fixturePet = petfriends.NewPet{
	Name:       "Суперкот",
	AnimalType: "кот",
	Age:        "3",
}

// listPets lists pets and decodes them, any failure is a fixture error as
// callers need the list to set up the behaviour under test.
func listPets(ctx context.Context, env *Env, key petfriends.AuthKey, filter petfriends.Filter) (*petfriends.PetList, error) {
	resp, err := env.Client.ListPets(ctx, key, filter)
	if err != nil {
		return nil, fixtureErr("list pets", err)
	}

	if !resp.OK() {
		return nil, fixtureErrf("list pets", "list returned status %d", resp.StatusCode)
	}

	list, err := resp.Pets()
	if err != nil {
		return nil, fixtureErr("list pets", err)
	}

	return list, nil
}

// CreateOwnedPet creates a pet and schedules its deletion after the
// scenario.  photo names a sample image, empty creates the pet without one.
func CreateOwnedPet(ctx context.Context, env *Env, key petfriends.AuthKey, pet petfriends.NewPet, photo string) (*petfriends.Pet, error) {
	var (
		resp *petfriends.Response
		err  error
	)

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
		return nil, fixtureErr("create pet", err)
	}

	if !resp.OK() {
		return nil, fixtureErrf("create pet", "create returned status %d: %s", resp.StatusCode, snippet(resp))
	}

	created, err := resp.Pet()
	if err != nil {
		return nil, fixtureErr("create pet", err)
	}

	if created.ID == "" {
		return nil, fixtureErrf("create pet", "created pet has no id")
	}

	log.FromContext(ctx).Info("created fixture pet", "id", created.ID, "name", created.Name)

	scheduleDelete(env, key, created.ID)

	return created, nil
}

// scheduleDelete removes a pet after the scenario.  The pet may already be
// gone, so the result is only logged.
func scheduleDelete(env *Env, key petfriends.AuthKey, id string) {
	env.DeferCleanup(func(ctx context.Context) {
		logger := log.FromContext(ctx)

		resp, err := env.Client.DeletePet(ctx, key, id)
		if err != nil {
			logger.Info("failed to delete fixture pet", "id", id, "error", err.Error())
			return
		}

		logger.V(1).Info("deleted fixture pet", "id", id, "status", resp.StatusCode)
	})
}

// EnsureOwnedPet returns a pet owned by the key holder, creating one when
// the account has none.  A pet that cannot be created, or does not show up
// once created, is a fixture error.
func EnsureOwnedPet(ctx context.Context, env *Env, key petfriends.AuthKey) (*petfriends.Pet, error) {
	mine, err := listPets(ctx, env, key, petfriends.FilterMyPets)
	if err != nil {
		return nil, err
	}

	if len(mine.Pets) > 0 {
		return &mine.Pets[0], nil
	}

	created, err := CreateOwnedPet(ctx, env, key, fixturePet, PhotoCat)
	if err != nil {
		return nil, err
	}

	mine, err = listPets(ctx, env, key, petfriends.FilterMyPets)
	if err != nil {
		return nil, err
	}

	pet, ok := mine.Find(created.ID)
	if !ok {
		return nil, fixtureErrf("owned pet", "created pet %s missing from my_pets", created.ID)
	}

	return pet, nil
}

// expectAbsent checks that none of the ids are listed as owned.  A listing
// failure here is part of the behaviour under test, not a fixture.
func expectAbsent(ctx context.Context, env *Env, key petfriends.AuthKey, ids ...string) error {
	resp, err := env.Client.ListPets(ctx, key, petfriends.FilterMyPets)
	if err != nil {
		return err
	}

	if err := expectOK(resp); err != nil {
		return err
	}

	mine, err := resp.Pets()
	if err != nil {
		return failf("decoding my_pets: %v", err)
	}

	reappeared := set.New[string](mine.IDs()...).Intersection(set.New[string](ids...))

	for id := range reappeared.All() {
		return failf("%s: deleted pet %s still listed in my_pets", resp.TraceID, id)
	}

	return nil
}

// expectPresent checks that the id is listed as owned and returns it.
func expectPresent(ctx context.Context, env *Env, key petfriends.AuthKey, id string) (*petfriends.Pet, error) {
	resp, err := env.Client.ListPets(ctx, key, petfriends.FilterMyPets)
	if err != nil {
		return nil, err
	}

	if err := expectOK(resp); err != nil {
		return nil, err
	}

	mine, err := resp.Pets()
	if err != nil {
		return nil, failf("decoding my_pets: %v", err)
	}

	pet, ok := mine.Find(id)
	if !ok {
		return nil, failf("%s: pet %s missing from my_pets", resp.TraceID, id)
	}

	return pet, nil
}

func describePet(pet *petfriends.Pet) string {
	return fmt.Sprintf("%s (%s, %s, %s)", pet.ID, pet.Name, pet.AnimalType, pet.Age)
}
