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

package openapi

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/petfriends-qa/conformance/pkg/constants"
)

var (
	ErrEmptyPetName = errors.New("invalid name: must not be empty")

	ErrPetNameTooLong = errors.New("invalid name: must be at most 255 characters")

	ErrEmptyAnimalType = errors.New("invalid animal_type: must not be empty")

	ErrInvalidPetAge = errors.New("invalid age: must be a non-negative integer")
)

// PetName is a validated pet name.  Length is counted in characters, not
// bytes, as names are routinely non-ASCII.
type PetName struct {
	Value string
}

func (n *PetName) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		return ErrEmptyPetName
	}

	if utf8.RuneCount(text) > constants.MaxPetNameLength {
		return ErrPetNameTooLong
	}

	*n = PetName{
		Value: string(text),
	}

	return nil
}

// AnimalType is a validated species.
type AnimalType struct {
	Value string
}

func (t *AnimalType) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		return ErrEmptyAnimalType
	}

	*t = AnimalType{
		Value: string(text),
	}

	return nil
}

// PetAge is a validated age in whole years.
type PetAge struct {
	Value int
}

func (a *PetAge) UnmarshalText(text []byte) error {
	age, err := strconv.Atoi(strings.TrimSpace(string(text)))
	if err != nil || age < 0 {
		return ErrInvalidPetAge
	}

	*a = PetAge{
		Value: age,
	}

	return nil
}

// String returns the canonical form of the age.
func (a PetAge) String() string {
	return strconv.Itoa(a.Value)
}
