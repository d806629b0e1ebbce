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
	"context"
	"fmt"

	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/pkg/petfriends/schema"
)

// NewAPIClient returns a client for baseURL, validating payloads against the
// API description when the configuration asks for it.
func NewAPIClient(ctx context.Context, config *TestConfig, baseURL string) (*petfriends.Client, error) {
	var validator petfriends.ResponseValidator

	if config.ValidateSchema {
		v, err := schema.NewValidator(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading API description: %w", err)
		}

		validator = v
	}

	return petfriends.New(baseURL, config.ClientOptions(validator)), nil
}
