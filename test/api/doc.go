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

// Package api provides the Ginkgo scaffolding for the PetFriends API suites.
//
// The suites drive the service through the same client and scenario catalogue
// as the conformance command, so a pass here means the same as a pass there.
// Fixtures follow Ginkgo conventions: cleanups are registered with
// DeferCleanup, and a precondition that cannot be established panics with a
// *conformance.FixtureError so it is reported as PANICKED rather than as an
// assertion failure.
//
// When PETFRIENDS_BASE_URL is not set the suites start the in-process fake
// service and run offline.
package api
