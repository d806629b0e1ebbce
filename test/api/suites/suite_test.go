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
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/test/api"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	config  *api.TestConfig
	baseURL string
	fake    *api.FakeService
	photos  *conformance.Photos
	client  *petfriends.Client
	env     *conformance.Env
	ctx     context.Context
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	baseURL = config.BaseURL

	if config.UseFake() {
		fake = api.StartFakeService(config)
		baseURL = fake.URL()
	}

	photos, err = conformance.NewPhotos(config.PhotoDir)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if photos != nil {
		Expect(photos.Close()).To(Succeed())
	}

	if fake != nil {
		fake.Stop()
	}
})

var _ = BeforeEach(func() {
	ctx = log.IntoContext(context.Background(), GinkgoLogr)

	var err error

	client, err = api.NewAPIClient(ctx, config, baseURL)
	Expect(err).NotTo(HaveOccurred())

	env = api.NewEnv(ctx, client, config, photos)
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)

	suiteConfig, reporterConfig := GinkgoConfiguration()

	if c, err := conformance.LoadConfig(); err == nil && c.TestTimeout > 0 {
		suiteConfig.Timeout = c.TestTimeout
	}

	RunSpecs(t, "PetFriends API Suites", suiteConfig, reporterConfig)
}
