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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/test/api"
)

var _ = Describe("Conformance Catalogue", func() {
	for _, scenario := range conformance.Catalogue() {
		It(fmt.Sprintf("%s: %s", scenario.Name, scenario.Description), func() {
			api.ExpectScenario(ctx, conformance.NewRunner(client, config.Config, photos), scenario)
		})
	}
})
