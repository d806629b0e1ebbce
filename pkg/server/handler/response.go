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

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/petfriends-qa/conformance/pkg/server/handler/pets"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type petResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

type petListResponse struct {
	Pets []petResponse `json:"pets"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func convertPet(in *pets.Pet) petResponse {
	return petResponse{
		ID:         in.ID,
		Name:       in.Name,
		AnimalType: in.AnimalType,
		Age:        in.Age,
		PetPhoto:   in.Photo,
		UserID:     in.OwnerID,
		CreatedAt:  in.CreatedAt.Format(time.RFC3339),
	}
}

func setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	setUncacheable(w)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	log.FromContext(r.Context()).V(1).Info("request rejected", "status", status, "reason", message)

	writeJSON(w, r, status, errorResponse{
		Error: message,
	})
}

func writeForbidden(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusForbidden, "Please provide 'auth_key' Header")
}
