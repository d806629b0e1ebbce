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

// Package conformance is a black-box conformance suite for the PetFriends
// pets API.  It holds a catalogue of self-contained scenarios, the fixtures
// they depend on and a sequential runner that classifies each outcome as a
// pass, an assertion failure, an unsatisfiable fixture or an unreachable
// service.
package conformance
