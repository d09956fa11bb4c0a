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
	"encoding/json"
	"fmt"
	"io"
)

// jsonDocument is the JSON rendition of the registries: the subtag records
// as they appear in the record-jar file, plus the extension registrations.
type jsonDocument struct {
	FileDate   string            `json:"fileDate"`
	Entries    []Record          `json:"entries"`
	Extensions []ExtensionRecord `json:"extensions,omitempty"`
}

// ParseJSON reads a registry from its JSON form. Ranges in subtag or tag
// values are expanded exactly as in the record-jar form.
func ParseJSON(r io.Reader) (*Registry, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON registry: %w", err)
	}

	registry := New()
	registry.FileDate = doc.FileDate
	for _, rec := range doc.Entries {
		if err := registry.addRecord(rec); err != nil {
			return nil, err
		}
	}
	for _, ext := range doc.Extensions {
		registry.addExtension(ext)
	}
	return registry, nil
}
