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
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/conformance/pkg/server"
	"github.com/petfriends-qa/conformance/pkg/server/handler"
)

// FakeService is an in-process PetFriends service.
type FakeService struct {
	server *httptest.Server
}

// StartFakeService serves the fake with the configured credentials as its
// only account.
func StartFakeService(config *TestConfig) *FakeService {
	router := server.NewRouter(handler.New(map[string]string{
		config.Email: config.Password,
	}), ginkgo.GinkgoLogr)

	s := httptest.NewServer(router)

	ginkgo.GinkgoWriter.Printf("Started fake PetFriends service at %s\n", s.URL)

	return &FakeService{
		server: s,
	}
}

// URL is the service root.
func (f *FakeService) URL() string {
	return f.server.URL
}

// Stop shuts the service down.
func (f *FakeService) Stop() {
	f.server.Close()
}
