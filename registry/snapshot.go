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
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the snapshot layout changes.
const snapshotSchemaVersion uint16 = 1

// snapshot is the msgpack payload of a compiled registry. Ranges are already
// expanded, so reading it back is a straight decode.
type snapshot struct {
	Schema     uint16
	FileDate   string
	Records    map[string]Record
	Extensions map[string]ExtensionRecord
}

// WriteSnapshot serializes the compiled registry to w.
func (r *Registry) WriteSnapshot(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(&snapshot{
		Schema:     snapshotSchemaVersion,
		FileDate:   r.FileDate,
		Records:    r.Records,
		Extensions: r.Extensions,
	})
}

// ReadSnapshot deserializes a registry written by WriteSnapshot.
func ReadSnapshot(rd io.Reader) (*Registry, error) {
	var s snapshot
	if err := msgpack.NewDecoder(rd).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode registry snapshot: %w", err)
	}
	if s.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("unsupported registry snapshot schema %d (want %d)", s.Schema, snapshotSchemaVersion)
	}

	registry := New()
	registry.FileDate = s.FileDate
	for k, v := range s.Records {
		registry.Records[k] = v
	}
	for k, v := range s.Extensions {
		registry.Extensions[k] = v
	}
	return registry, nil
}
