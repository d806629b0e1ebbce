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
	"context"
	"fmt"
	"net"
	"os"

	"github.com/spf13/pflag"

	"github.com/petfriends-qa/conformance/pkg/conformance"
	"github.com/petfriends-qa/conformance/pkg/constants"
	"github.com/petfriends-qa/conformance/pkg/options"
	"github.com/petfriends-qa/conformance/pkg/petfriends"
	"github.com/petfriends-qa/conformance/pkg/petfriends/schema"
	"github.com/petfriends-qa/conformance/pkg/server"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

type flags struct {
	baseURL        string
	scenarios      []string
	fake           bool
	list           bool
	validateSchema bool
	retries        int
}

func (f *flags) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.baseURL, "base-url", "", "Service under test, overrides PETFRIENDS_BASE_URL.")
	fs.StringSliceVar(&f.scenarios, "scenario", nil, "Scenario name or glob to run, may be repeated. Defaults to all.")
	fs.BoolVar(&f.fake, "fake", false, "Run against an in-process fake service.")
	fs.BoolVar(&f.list, "list", false, "List scenarios and exit.")
	fs.BoolVar(&f.validateSchema, "validate-schema", false, "Validate successful responses against the API description.")
	fs.IntVar(&f.retries, "retries", -1, "Retries for transport failures, overrides TRANSPORT_RETRIES.")
}

// startFake serves the fake service on an ephemeral port.
func startFake(ctx context.Context, config *conformance.Config) (string, error) {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("listening for fake service: %w", err)
	}

	s := &server.Server{
		Options: server.Options{
			Accounts: map[string]string{
				config.Email: config.Password,
			},
		},
	}

	go func() {
		if err := s.Serve(log.IntoContext(ctx, log.Log.WithName("fake")), listener); err != nil {
			log.Log.Error(err, "fake service stopped")
		}
	}()

	return "http://" + listener.Addr().String(), nil
}

func run(ctx context.Context, f *flags) (int, error) {
	catalogue := conformance.Catalogue()

	scenarios, err := conformance.Select(catalogue, f.scenarios...)
	if err != nil {
		return 0, err
	}

	if f.list {
		for _, scenario := range scenarios {
			fmt.Printf("%s\t%s\n", scenario.Name, scenario.Description)
		}

		return conformance.ExitPassed, nil
	}

	config := conformance.ConfigFromEnvironment()

	if f.fake {
		config.BaseURL = ""
	}

	if f.baseURL != "" {
		config.BaseURL = f.baseURL
	}

	if f.validateSchema {
		config.ValidateSchema = true
	}

	if f.retries >= 0 {
		config.Retries = f.retries
	}

	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return 0, err
	}

	baseURL := config.BaseURL

	if config.UseFake() {
		if baseURL, err = startFake(ctx, config); err != nil {
			return 0, err
		}
	}

	var validator petfriends.ResponseValidator

	if config.ValidateSchema {
		v, err := schema.NewValidator(ctx)
		if err != nil {
			return 0, err
		}

		validator = v
	}

	photos, err := conformance.NewPhotos(config.PhotoDir)
	if err != nil {
		return 0, err
	}

	defer photos.Close()

	log.FromContext(ctx).Info("running scenarios", "baseURL", baseURL, "count", len(scenarios))

	client := petfriends.New(baseURL, config.ClientOptions(validator))

	report := conformance.NewRunner(client, config, photos).Run(ctx, scenarios)

	if err := report.Write(os.Stdout); err != nil {
		return 0, err
	}

	return report.ExitCode(), nil
}

func main() {
	var (
		coreOptions options.CoreOptions
		f           flags
	)

	coreOptions.AddFlags(pflag.CommandLine)
	f.addFlags(pflag.CommandLine)

	pflag.Parse()

	coreOptions.SetupLogging()

	logger := log.Log.WithName("init")
	logger.Info("conformance starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("conformance"))

	code, err := run(ctx, &f)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	os.Exit(code)
}
