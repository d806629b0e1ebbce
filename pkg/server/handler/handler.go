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

//nolint:revive
package handler

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/petfriends-qa/conformance/pkg/constants"
	"github.com/petfriends-qa/conformance/pkg/openapi"
	"github.com/petfriends-qa/conformance/pkg/server/handler/pets"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")

	ErrMissingPhoto = errors.New("pet_photo is required")

	ErrUnsupportedPhoto = errors.New("pet_photo must be a JPEG or PNG image")
)

const (
	// maxPhotoSize bounds uploaded photos.
	maxPhotoSize = 10 << 20
)

type Handler struct {
	// store holds all pets.
	store *pets.Store

	// accounts maps email to password.
	accounts map[string]string

	// lock protects the key maps.
	lock sync.Mutex

	// keys maps an issued key to the account email.
	keys map[string]string

	// issued maps an account email to its key.
	issued map[string]string
}

func New(accounts map[string]string) *Handler {
	a := make(map[string]string, len(accounts))

	for email, password := range accounts {
		a[email] = password
	}

	return &Handler{
		store:    pets.NewStore(),
		accounts: a,
		keys:     map[string]string{},
		issued:   map[string]string{},
	}
}

func generateKey() string {
	bytes := make([]byte, 28)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// issueKey returns the key for an account, creating it on first use.  Keys
// are stable for the life of the process.
func (h *Handler) issueKey(email string) string {
	h.lock.Lock()
	defer h.lock.Unlock()

	if key, ok := h.issued[email]; ok {
		return key
	}

	key := generateKey()

	h.issued[email] = key
	h.keys[key] = email

	return key
}

// authenticate resolves the auth_key header to an account.
func (h *Handler) authenticate(r *http.Request) (string, bool) {
	key := r.Header.Get(constants.AuthKeyHeader)
	if key == "" {
		return "", false
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	email, ok := h.keys[key]

	return email, ok
}

func (h *Handler) GetApiKey(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	expected, ok := h.accounts[email]
	if !ok || email == "" || expected != password {
		writeError(w, r, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"key": h.issueKey(email),
	})
}

func (h *Handler) GetApiPets(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.authenticate(r)
	if !ok {
		writeForbidden(w, r)
		return
	}

	var filterOwner string

	switch filter := r.URL.Query().Get("filter"); filter {
	case "":
	case constants.MyPetsFilter:
		filterOwner = owner
	default:
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %s", ErrUnknownFilter, filter).Error())
		return
	}

	list := h.store.List(filterOwner)

	result := make([]petResponse, len(list))

	for i := range list {
		result[i] = convertPet(&list[i])
	}

	writeJSON(w, r, http.StatusOK, petListResponse{
		Pets: result,
	})
}

func (h *Handler) PostApiPets(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.authenticate(r)
	if !ok {
		writeForbidden(w, r)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	write, err := parsePetWrite(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var photo string

	if r.MultipartForm != nil && len(r.MultipartForm.File["pet_photo"]) > 0 {
		photo, err = readPhoto(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	pet := h.store.Create(owner, write, photo)

	log.FromContext(r.Context()).Info("created pet", "id", pet.ID, "owner", owner)

	writeJSON(w, r, http.StatusOK, convertPet(&pet))
}

func (h *Handler) PostApiCreatePetSimple(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.authenticate(r)
	if !ok {
		writeForbidden(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	write, err := parsePetWrite(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pet := h.store.Create(owner, write, "")

	log.FromContext(r.Context()).Info("created pet", "id", pet.ID, "owner", owner)

	writeJSON(w, r, http.StatusOK, convertPet(&pet))
}

func (h *Handler) PutApiPetsPetID(w http.ResponseWriter, r *http.Request, petID string) {
	owner, ok := h.authenticate(r)
	if !ok {
		writeForbidden(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	write, err := parsePetWrite(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := h.store.Update(owner, petID, write)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, convertPet(&pet))
}

func (h *Handler) DeleteApiPetsPetID(w http.ResponseWriter, r *http.Request, petID string) {
	owner, ok := h.authenticate(r)
	if !ok {
		writeForbidden(w, r)
		return
	}

	// Deleting a pet that is already gone is not an error.
	if err := h.store.Delete(owner, petID); err != nil && !errors.Is(err, pets.ErrPetNotFound) {
		handleStoreError(w, r, err)
		return
	}

	log.FromContext(r.Context()).Info("deleted pet", "id", petID, "owner", owner)

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) PostApiPetsSetPhotoPetID(w http.ResponseWriter, r *http.Request, petID string) {
	owner, ok := h.authenticate(r)
	if !ok {
		writeForbidden(w, r)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := h.store.SetPhoto(owner, petID, photo)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, convertPet(&pet))
}

// parsePetWrite validates the writable fields from a parsed form.
func parsePetWrite(r *http.Request) (pets.Write, error) {
	var (
		name       openapi.PetName
		animalType openapi.AnimalType
		age        openapi.PetAge
	)

	if err := name.UnmarshalText([]byte(r.PostFormValue("name"))); err != nil {
		return pets.Write{}, err
	}

	if err := animalType.UnmarshalText([]byte(r.PostFormValue("animal_type"))); err != nil {
		return pets.Write{}, err
	}

	if err := age.UnmarshalText([]byte(r.PostFormValue("age"))); err != nil {
		return pets.Write{}, err
	}

	return pets.Write{
		Name:       name.Value,
		AnimalType: animalType.Value,
		Age:        age.String(),
	}, nil
}

// readPhoto reads the pet_photo file and encodes it as a data URI.
func readPhoto(r *http.Request) (string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", ErrMissingPhoto
	}

	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	contentType := http.DetectContentType(data)

	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", ErrUnsupportedPhoto
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// handleStoreError maps store errors to statuses.  An unknown pet is a bad
// request, not a missing resource, which is how the service reports it.
func handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pets.ErrPetNotFound):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, pets.ErrNotOwner):
		writeError(w, r, http.StatusForbidden, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}
