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

package conformance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/petfriends-qa/conformance/pkg/petfriends"
)

const (
	// FakeEmail is the account provisioned in the in-process service.
	FakeEmail = "qa@petfriends.test"

	// FakePassword is the password of FakeEmail.
	FakePassword = "correct-horse"
)

var (
	// ErrMissingConfig is raised when required values are not set.
	ErrMissingConfig = errors.New("missing required configuration")
)

// Config holds everything needed to run the catalogue.
type Config struct {
	// BaseURL is the service under test, empty selects the in-process
	// service.
	BaseURL string

	Email           string
	Password        string
	InvalidEmail    string
	InvalidPassword string

	RequestTimeout time.Duration
	TestTimeout    time.Duration
	Retries        int

	// PhotoDir holds sample images, when empty the embedded ones are used.
	PhotoDir string

	ValidateSchema  bool
	SkipIntegration bool
	LogRequests     bool
	LogResponses    bool
}

// LoadConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadConfig() (*Config, error) {
	config := ConfigFromEnvironment()
	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigFromEnvironment reads configuration without defaulting or
// validation, so callers can apply overrides first.
func ConfigFromEnvironment() *Config {
	loadEnvFile()

	return &Config{
		BaseURL:         os.Getenv("PETFRIENDS_BASE_URL"),
		Email:           os.Getenv("PETFRIENDS_EMAIL"),
		Password:        os.Getenv("PETFRIENDS_PASSWORD"),
		InvalidEmail:    os.Getenv("PETFRIENDS_INVALID_EMAIL"),
		InvalidPassword: os.Getenv("PETFRIENDS_INVALID_PASSWORD"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", petfriends.DefaultTimeout),
		TestTimeout:     getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		Retries:         getIntWithDefault("TRANSPORT_RETRIES", 0),
		PhotoDir:        os.Getenv("PHOTO_DIR"),
		ValidateSchema:  getBoolWithDefault("VALIDATE_SCHEMA", false),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}
}

// UseFake is true when no service URL is configured.
func (c *Config) UseFake() bool {
	return c.BaseURL == ""
}

// SetDefaults fills in fake credentials when running in-process, and
// generates invalid credentials that cannot collide with a real account.
func (c *Config) SetDefaults() {
	if c.UseFake() {
		if c.Email == "" {
			c.Email = FakeEmail
		}

		if c.Password == "" {
			c.Password = FakePassword
		}
	}

	if c.InvalidEmail == "" {
		c.InvalidEmail = "unknown-" + uuid.NewString() + "@petfriends.invalid"
	}

	if c.InvalidPassword == "" {
		c.InvalidPassword = uuid.NewString()
	}
}

// Validate checks that all required configuration values are set.
func (c *Config) Validate() error {
	var missing []string

	required := map[string]string{
		"PETFRIENDS_EMAIL":    c.Email,
		"PETFRIENDS_PASSWORD": c.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if c.InvalidEmail == c.Email && c.InvalidPassword == c.Password {
		return fmt.Errorf("%w: invalid credentials must differ from valid ones", ErrMissingConfig)
	}

	return nil
}

// ClientOptions derives API client options.
func (c *Config) ClientOptions(validator petfriends.ResponseValidator) *petfriends.Options {
	options := &petfriends.Options{
		Timeout:      c.RequestTimeout,
		Retries:      c.Retries,
		LogRequests:  c.LogRequests,
		LogResponses: c.LogResponses,
	}

	if c.ValidateSchema && validator != nil {
		options.Validator = validator
	}

	return options
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue < 0 {
		return defaultValue
	}

	return intValue
}

// envPaths are searched in order, relative to the working directory, which
// is the package directory under go test.
var envPaths = []string{
	".env",
	"test/.env",
	"../../test/.env",    // From test/api directory
	"../../../test/.env", // From test/api/suites directory
}

func loadEnvFile() {
	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Variables already in the environment take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
