/*
Copyright 2025 Trident Authors

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

package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a registry from path, choosing the decoder from the file
// extension: ".json" for the JSON form, ".mp" or ".msgpack" for a snapshot and
// the record-jar format otherwise. For record-jar files, extensionsPath names
// the Language Tag Extensions Registry to merge in; when it is empty the
// embedded extension data is used.
func Load(path, extensionsPath string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(f)
	case ".mp", ".msgpack":
		return ReadSnapshot(f)
	}

	if extensionsPath == "" {
		return ParseRegistries(f, bytes.NewReader(embeddedExtensionsData))
	}
	ext, err := os.Open(extensionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open extensions registry: %w", err)
	}
	defer ext.Close()
	return ParseRegistries(f, ext)
}
