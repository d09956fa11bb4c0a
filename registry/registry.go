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

// Package registry holds the IANA Language Subtag Registry and the Language
// Tag Extensions Registry as in-memory lookup tables, together with the UN M.49
// region hierarchy used when comparing regions.
//
// A Registry is read-only once built and is safe for concurrent readers. The
// tag engine never reaches for a registry on its own; callers pass one in.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jplu/bcp47/subtag"
)

// Errors wrapped by LookupError.
var (
	ErrMalformed     = errors.New("is not well-formed")
	ErrNotRegistered = errors.New("is not registered")
	ErrNotCanonical  = errors.New("is not in canonical form")
)

// Registry holds the parsed data from the IANA registries. It serves as the
// database for validating and normalizing language tags.
type Registry struct {
	Records    map[string]Record
	Extensions map[string]ExtensionRecord
	FileDate   string

	hierarchy RegionHierarchy
}

// Record represents a single entry in the IANA Language Subtag Registry.
// The fields correspond to the fields defined in RFC 5646, Section 3.1.
type Record struct {
	Type           string   `json:"type"`
	Subtag         string   `json:"subtag,omitempty"`
	Tag            string   `json:"tag,omitempty"`
	Description    []string `json:"description"`
	Added          string   `json:"added"`
	Deprecated     string   `json:"deprecated,omitempty"`
	PreferredValue string   `json:"preferredValue,omitempty"`
	Prefix         []string `json:"prefix,omitempty"`
	SuppressScript string   `json:"suppressScript,omitempty"`
	Macrolanguage  string   `json:"macrolanguage,omitempty"`
	Scope          string   `json:"scope,omitempty"`
	Comments       []string `json:"comments,omitempty"`
}

// ExtensionRecord is an entry of the Language Tag Extensions Registry
// described in RFC 5646, Section 3.7.
type ExtensionRecord struct {
	Identifier   string   `json:"identifier"`
	Description  []string `json:"description"`
	Comments     []string `json:"comments,omitempty"`
	Added        string   `json:"added"`
	RFC          string   `json:"rfc,omitempty"`
	Authority    string   `json:"authority,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	MailingList  string   `json:"mailingList,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// New returns an empty registry ready to receive records.
func New() *Registry {
	return &Registry{
		Records:    make(map[string]Record),
		Extensions: make(map[string]ExtensionRecord),
	}
}

// IsGrandfathered reports whether the record registers a whole tag, either
// grandfathered or redundant.
func (r *Record) IsGrandfathered() bool {
	return r.Type == "grandfathered" || r.Type == "redundant"
}

// IsDeprecated reports whether the record carries a Deprecated date.
func (r *Record) IsDeprecated() bool {
	return r.Deprecated != ""
}

// Value returns the registered subtag or, for whole-tag records, the tag.
func (r *Record) Value() string {
	if r.Subtag != "" {
		return r.Subtag
	}
	return r.Tag
}

// recordKey builds the map key of a record: the registry type and the
// lowercased subtag or tag, e.g. "language:en" or "grandfathered:i-klingon".
func recordKey(recordType, value string) string {
	return recordType + ":" + strings.ToLower(value)
}

// Lookup finds the record registered for raw under kind. The lookup ignores
// case.
func (r *Registry) Lookup(kind subtag.Kind, raw string) (Record, bool) {
	if r == nil || raw == "" {
		return Record{}, false
	}
	recordType := kind.RegistryType()
	if recordType == "" {
		return Record{}, false
	}
	rec, ok := r.Records[recordKey(recordType, raw)]
	return rec, ok
}

// Extension returns the extension registration for a singleton.
func (r *Registry) Extension(singleton subtag.Singleton) (ExtensionRecord, bool) {
	if r == nil {
		return ExtensionRecord{}, false
	}
	rec, ok := r.Extensions[strings.ToLower(string(singleton))]
	return rec, ok
}

// Hierarchy returns the region hierarchy used to relate region subtags.
func (r *Registry) Hierarchy() RegionHierarchy {
	if r == nil || r.hierarchy == nil {
		return HierarchyFunc(cldrContains)
	}
	return r.hierarchy
}

// WithHierarchy returns a registry sharing r's tables but relating regions
// through h.
func (r *Registry) WithHierarchy(h RegionHierarchy) *Registry {
	cp := *r
	cp.hierarchy = h
	return &cp
}

// Languages returns the primary language subtag table.
func (r *Registry) Languages() Table[subtag.Language] {
	return Table[subtag.Language]{reg: r, kind: subtag.KindLanguage}
}

// Extlangs returns the extended language subtag table.
func (r *Registry) Extlangs() Table[subtag.Extlang] {
	return Table[subtag.Extlang]{reg: r, kind: subtag.KindExtlang}
}

// Scripts returns the script subtag table.
func (r *Registry) Scripts() Table[subtag.Script] {
	return Table[subtag.Script]{reg: r, kind: subtag.KindScript}
}

// Regions returns the region subtag table.
func (r *Registry) Regions() Table[subtag.Region] {
	return Table[subtag.Region]{reg: r, kind: subtag.KindRegion}
}

// Variants returns the variant subtag table.
func (r *Registry) Variants() Table[subtag.Variant] {
	return Table[subtag.Variant]{reg: r, kind: subtag.KindVariant}
}

// Grandfathered returns the table of whole grandfathered tags.
func (r *Registry) Grandfathered() Table[subtag.Grandfathered] {
	return Table[subtag.Grandfathered]{reg: r, kind: subtag.KindGrandfathered}
}

// Redundant returns the table of whole redundant tags.
func (r *Registry) Redundant() Table[subtag.Redundant] {
	return Table[subtag.Redundant]{reg: r, kind: subtag.KindRedundant}
}

// ExtensionSingletons returns the table of registered extension singletons.
func (r *Registry) ExtensionSingletons() Table[subtag.Singleton] {
	return Table[subtag.Singleton]{reg: r, kind: subtag.KindSingleton}
}

// LookupError reports a subtag that failed a registry check.
type LookupError struct {
	Kind  subtag.Kind
	Value string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q %v", e.Kind, e.Value, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
