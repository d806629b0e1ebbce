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

package conformance_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/petfriends-qa/conformance/pkg/conformance"
)

//nolint:paralleltest
func TestLoadConfigDefaultsToFake(t *testing.T) {
	t.Setenv("PETFRIENDS_BASE_URL", "")
	t.Setenv("PETFRIENDS_EMAIL", "")
	t.Setenv("PETFRIENDS_PASSWORD", "")
	t.Setenv("PETFRIENDS_INVALID_EMAIL", "")
	t.Setenv("PETFRIENDS_INVALID_PASSWORD", "")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("TEST_TIMEOUT", "not-a-duration")
	t.Setenv("TRANSPORT_RETRIES", "2")
	t.Setenv("VALIDATE_SCHEMA", "true")

	config, err := conformance.LoadConfig()
	require.NoError(t, err)
	require.True(t, config.UseFake())
	require.Equal(t, conformance.FakeEmail, config.Email)
	require.Equal(t, conformance.FakePassword, config.Password)
	require.NotEqual(t, config.Email, config.InvalidEmail)
	require.NotEqual(t, config.Password, config.InvalidPassword)
	require.Equal(t, 5*time.Second, config.RequestTimeout)
	require.Equal(t, 5*time.Minute, config.TestTimeout)
	require.Equal(t, 2, config.Retries)
	require.True(t, config.ValidateSchema)

	options := config.ClientOptions(nil)
	require.Equal(t, 5*time.Second, options.Timeout)
	require.Equal(t, 2, options.Retries)
	require.Nil(t, options.Validator)
}

//nolint:paralleltest
func TestLoadConfigRequiresCredentialsForRealService(t *testing.T) {
	t.Setenv("PETFRIENDS_BASE_URL", "https://petfriends.skillfactory.ru")
	t.Setenv("PETFRIENDS_EMAIL", "")
	t.Setenv("PETFRIENDS_PASSWORD", "")

	_, err := conformance.LoadConfig()
	require.ErrorIs(t, err, conformance.ErrMissingConfig)
	require.ErrorContains(t, err, "PETFRIENDS_EMAIL, PETFRIENDS_PASSWORD")
}

func TestPhotos(t *testing.T) {
	t.Parallel()

	photos, err := conformance.NewPhotos("")
	require.NoError(t, err)

	for _, name := range []string{conformance.PhotoCat, conformance.PhotoDog, conformance.PhotoParrot} {
		path, err := photos.Path(name)
		require.NoError(t, err)
		require.FileExists(t, path)
	}

	path, err := photos.Path(conformance.PhotoCat)
	require.NoError(t, err)
	require.NoError(t, photos.Close())
	require.NoFileExists(t, path)
}

func TestPhotosFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cat1.jpg"), []byte{0xff, 0xd8, 0xff}, 0o600))

	photos, err := conformance.NewPhotos(dir)
	require.NoError(t, err)

	path, err := photos.Path(conformance.PhotoCat)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cat1.jpg"), path)

	_, err = photos.Path(conformance.PhotoDog)
	require.ErrorIs(t, err, conformance.ErrPhotoNotFound)

	require.NoError(t, photos.Close())
	require.DirExists(t, dir)
}
