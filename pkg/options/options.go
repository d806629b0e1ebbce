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

package options

import (
	"flag"

	"github.com/spf13/pflag"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// CoreOptions are flags shared by every command.
type CoreOptions struct {
	zapOptions zap.Options
}

// AddFlags registers the zap logging flags, e.g. --zap-log-level.
func (o *CoreOptions) AddFlags(f *pflag.FlagSet) {
	zapFlagSet := flag.NewFlagSet("", flag.ExitOnError)
	o.zapOptions.BindFlags(zapFlagSet)

	f.AddGoFlagSet(zapFlagSet)
}

// SetupLogging installs the global logger.
func (o *CoreOptions) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}
