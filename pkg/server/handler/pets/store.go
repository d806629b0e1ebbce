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

package pets

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrPetNotFound is raised when the pet does not exist.
	ErrPetNotFound = errors.New("pet not found")

	// ErrNotOwner is raised when a caller modifies a pet they do not own.
	ErrNotOwner = errors.New("pet is owned by another user")
)

// Write holds the fields a caller may set.
type Write struct {
	Name       string
	AnimalType string
	Age        string
}

// Pet is a stored pet record.
type Pet struct {
	ID         string
	OwnerID    string
	Name       string
	AnimalType string
	Age        string
	// Photo is a data URI, empty when no photo was set.
	Photo     string
	CreatedAt time.Time
}

// Store is an in-memory pet repository.  It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	pets map[string]*Pet
	// order holds ids newest first, which is the order lists are served in.
	order []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		pets: map[string]*Pet{},
	}
}

// Create adds a pet owned by ownerID.
func (s *Store) Create(ownerID string, write Write, photo string) Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet := &Pet{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Name:       write.Name,
		AnimalType: write.AnimalType,
		Age:        write.Age,
		Photo:      photo,
		CreatedAt:  time.Now().UTC(),
	}

	s.pets[pet.ID] = pet
	s.order = slices.Insert(s.order, 0, pet.ID)

	return *pet
}

// List returns pets newest first, restricted to ownerID unless it is empty.
func (s *Store) List(ownerID string) []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Pet, 0, len(s.order))

	for _, id := range s.order {
		pet := s.pets[id]

		if ownerID != "" && pet.OwnerID != ownerID {
			continue
		}

		result = append(result, *pet)
	}

	return result
}

// Get returns a pet by id.
func (s *Store) Get(id string) (Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pet, ok := s.pets[id]
	if !ok {
		return Pet{}, ErrPetNotFound
	}

	return *pet, nil
}

// lookupOwned must be called with the lock held.
func (s *Store) lookupOwned(ownerID, id string) (*Pet, error) {
	pet, ok := s.pets[id]
	if !ok {
		return nil, ErrPetNotFound
	}

	if pet.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return pet, nil
}

// Update replaces the writable fields of a pet owned by ownerID.
func (s *Store) Update(ownerID, id string, write Write) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, err := s.lookupOwned(ownerID, id)
	if err != nil {
		return Pet{}, err
	}

	pet.Name = write.Name
	pet.AnimalType = write.AnimalType
	pet.Age = write.Age

	return *pet, nil
}

// SetPhoto replaces the photo of a pet owned by ownerID.
func (s *Store) SetPhoto(ownerID, id, photo string) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, err := s.lookupOwned(ownerID, id)
	if err != nil {
		return Pet{}, err
	}

	pet.Photo = photo

	return *pet, nil
}

// Delete removes a pet owned by ownerID.
func (s *Store) Delete(ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupOwned(ownerID, id); err != nil {
		return err
	}

	delete(s.pets, id)

	s.order = slices.DeleteFunc(s.order, func(x string) bool {
		return x == id
	})

	return nil
}
