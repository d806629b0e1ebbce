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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/petfriends-qa/conformance/pkg/constants"
	"github.com/petfriends-qa/conformance/pkg/options"
	"github.com/petfriends-qa/conformance/pkg/server"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func main() {
	var (
		coreOptions options.CoreOptions
		s           server.Server
	)

	coreOptions.AddFlags(pflag.CommandLine)
	s.Options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	coreOptions.SetupLogging()

	logger := log.Log.WithName("init")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("server"))

	if err := s.Run(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
