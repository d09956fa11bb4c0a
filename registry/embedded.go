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
	_ "embed" // Note the blank import for go:embed
	"errors"
	"sync"
)

// embeddedRegistryData is a curated extract of the IANA Language Subtag
// Registry: the subtags, grandfathered and redundant tags needed by common
// European and Chinese tags and by the RFC 5646 examples. Load the full
// registry file with Load to accept other languages.
//
//go:embed data/language-subtag-registry
var embeddedRegistryData []byte

//go:embed data/language-tag-extensions-registry
var embeddedExtensionsData []byte

//nolint:gochecknoglobals // the embedded registry is parsed at most once per process.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	errDefault      error
)

// NewEmbedded builds a registry from the data embedded in the package. The
// subtag data is an extract of the IANA registry, so tags outside it, such
// as "sw" or "ko", are well-formed but not valid against this registry.
//
// IMPORTANT: This function parses the registry data on every call and is
// therefore an expensive operation. Call it once at startup, or use Default.
func NewEmbedded() (*Registry, error) {
	if len(embeddedRegistryData) == 0 {
		return nil, errors.New("embedded language-subtag-registry file is empty or not found")
	}

	return ParseRegistries(bytes.NewReader(embeddedRegistryData), bytes.NewReader(embeddedExtensionsData))
}

// Default returns the registry built from the embedded extract (see
// NewEmbedded). It is parsed on first use and shared afterwards; the returned
// registry must not be modified.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, errDefault = NewEmbedded()
	})
	return defaultRegistry, errDefault
}
