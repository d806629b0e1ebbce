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
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	PhotoCat    = "cat1.jpg"
	PhotoDog    = "dog1.jpeg"
	PhotoParrot = "parrot1.png"
)

var (
	// ErrPhotoNotFound is raised when a sample image does not exist.
	ErrPhotoNotFound = errors.New("photo not found")
)

//go:embed images
var images embed.FS

// Photos resolves sample images by name.
type Photos struct {
	dir       string
	temporary bool
}

// NewPhotos serves images from dir, or when it is empty, from a temporary
// copy of the embedded samples.  Close removes any temporary copy.
func NewPhotos(dir string) (*Photos, error) {
	if dir != "" {
		return &Photos{dir: dir}, nil
	}

	tmp, err := os.MkdirTemp("", "petfriends-photos-")
	if err != nil {
		return nil, fmt.Errorf("creating photo directory: %w", err)
	}

	entries, err := fs.ReadDir(images, "images")
	if err != nil {
		return nil, fmt.Errorf("reading embedded photos: %w", err)
	}

	for _, entry := range entries {
		data, err := images.ReadFile("images/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded photo %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(filepath.Join(tmp, entry.Name()), data, 0o600); err != nil {
			return nil, fmt.Errorf("writing photo %s: %w", entry.Name(), err)
		}
	}

	return &Photos{dir: tmp, temporary: true}, nil
}

// Path returns the path of the named image.
func (p *Photos) Path(name string) (string, error) {
	path := filepath.Join(p.dir, name)

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrPhotoNotFound, name, err)
	}

	return path, nil
}

// Close removes the temporary copy, if any.
func (p *Photos) Close() error {
	if !p.temporary {
		return nil
	}

	return os.RemoveAll(p.dir)
}
