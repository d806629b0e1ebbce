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

package schema_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/pkg/petfriends/schema"
	"github.com/petfriends-qa/conformance/pkg/server"
	"github.com/petfriends-qa/conformance/pkg/server/handler"
)

func jsonHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return header
}

func TestLoad(t *testing.T) {
	t.Parallel()

	doc, err := schema.Load(t.Context())
	require.NoError(t, err)
	require.NotNil(t, doc.Paths.Find("/api/pets/set_photo/{pet_id}"))
}

func TestValidateResponse(t *testing.T) {
	t.Parallel()

	validator, err := schema.NewValidator(t.Context())
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		url    string
		status int
		body   string
		valid  bool
	}{
		{
			name:   "KeyIssued",
			method: http.MethodGet,
			url:    "https://petfriends.skillfactory.ru/api/key",
			status: http.StatusOK,
			body:   `{"key":"abc"}`,
			valid:  true,
		},
		{
			name:   "KeyEmpty",
			method: http.MethodGet,
			url:    "http://127.0.0.1:6080/api/key",
			status: http.StatusOK,
			body:   `{"key":""}`,
		},
		{
			name:   "UndocumentedStatus",
			method: http.MethodGet,
			url:    "http://127.0.0.1:6080/api/key",
			status: http.StatusCreated,
			body:   `{"key":"abc"}`,
		},
		{
			name:   "PetListWithNumericAge",
			method: http.MethodGet,
			url:    "http://127.0.0.1:6080/api/pets?filter=my_pets",
			status: http.StatusOK,
			body:   `{"pets":[{"id":"a","name":"Барс","animal_type":"кот","age":2,"pet_photo":""}]}`,
			valid:  true,
		},
		{
			name:   "PetListMissingPets",
			method: http.MethodGet,
			url:    "http://127.0.0.1:6080/api/pets",
			status: http.StatusOK,
			body:   `{}`,
		},
		{
			name:   "PetMissingID",
			method: http.MethodPut,
			url:    "http://127.0.0.1:6080/api/pets/a",
			status: http.StatusOK,
			body:   `{"name":"Барс","animal_type":"кот","age":"2"}`,
		},
		{
			name:   "PetCreated",
			method: http.MethodPost,
			url:    "http://127.0.0.1:6080/api/create_pet_simple",
			status: http.StatusOK,
			body:   `{"id":"a","name":"Суперкот","animal_type":"кот","age":"3"}`,
			valid:  true,
		},
		{
			name:   "Deleted",
			method: http.MethodDelete,
			url:    "http://127.0.0.1:6080/api/pets/a",
			status: http.StatusOK,
			body:   ``,
			valid:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(test.method, test.url, nil)

			err := validator.ValidateResponse(t.Context(), req, test.status, jsonHeader(), []byte(test.body))
			if test.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestUndocumentedRoute(t *testing.T) {
	t.Parallel()

	validator, err := schema.NewValidator(t.Context())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://127.0.0.1:6080/api/owners", nil)

	err = validator.ValidateResponse(t.Context(), req, http.StatusOK, jsonHeader(), []byte(`{}`))
	require.ErrorIs(t, err, schema.ErrRouteNotFound)
}

// TestFakeServiceConforms ensures the in-process service emits documented
// payloads.
func TestFakeServiceConforms(t *testing.T) {
	t.Parallel()

	validator, err := schema.NewValidator(t.Context())
	require.NoError(t, err)

	s := httptest.NewServer(server.NewRouter(handler.New(map[string]string{"qa@petfriends.test": "secret"}), logr.Discard()))
	defer s.Close()

	client := petfriends.New(s.URL, &petfriends.Options{
		Validator: validator,
	})

	resp, err := client.GetAPIKey(t.Context(), "qa@petfriends.test", "secret")
	require.NoError(t, err)
	require.NoError(t, resp.SchemaErr)

	key, err := resp.Key()
	require.NoError(t, err)

	resp, err = client.CreatePetSimple(t.Context(), key, petfriends.NewPet{Name: "Суперкот", AnimalType: "кот", Age: "3"})
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.NoError(t, resp.SchemaErr)

	pet, err := resp.Pet()
	require.NoError(t, err)

	resp, err = client.UpdatePetInfo(t.Context(), key, pet.ID, petfriends.NewPet{Name: "Барс", AnimalType: "кот", Age: "2"})
	require.NoError(t, err)
	require.NoError(t, resp.SchemaErr)

	resp, err = client.ListPets(t.Context(), key, petfriends.FilterMyPets)
	require.NoError(t, err)
	require.NoError(t, resp.SchemaErr)

	resp, err = client.DeletePet(t.Context(), key, pet.ID)
	require.NoError(t, err)
	require.NoError(t, resp.SchemaErr)
}
