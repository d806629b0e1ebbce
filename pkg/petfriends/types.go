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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/petfriends-qa/conformance/pkg/constants"
)

// Filter selects which pets a list call returns.
type Filter string

const (
	// FilterAll returns every pet visible to the caller.
	FilterAll Filter = ""

	// FilterMyPets returns only pets owned by the caller.
	FilterMyPets Filter = constants.MyPetsFilter
)

// AuthKey is the opaque token issued by the key endpoint.
type AuthKey struct {
	Key string `json:"key"`
}

// Credentials identify an account.
type Credentials struct {
	Email    string
	Password string
}

// NewPet holds the writable pet fields.
type NewPet struct {
	Name       string
	AnimalType string
	Age        string
}

// Age is a pet age as reported by the service.  The service is not
// consistent about encoding it as a string or a number, so both are accepted.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Age(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("age is neither a string nor a number: %w", err)
	}

	*a = Age(n.String())

	return nil
}

// Int returns the age as an integer.
func (a Age) Int() (int, error) {
	return strconv.Atoi(string(a))
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Age    `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// PetList is the list endpoint payload.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns the pet identifiers in list order.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}

// Find returns the pet with the given id.
func (l *PetList) Find(id string) (*Pet, bool) {
	for i := range l.Pets {
		if l.Pets[i].ID == id {
			return &l.Pets[i], true
		}
	}

	return nil, false
}
