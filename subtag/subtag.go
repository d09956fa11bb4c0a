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

// Package subtag defines the kinds of subtag that make up an RFC 5646 language
// tag, a distinct string type for each kind, and the purely lexical rules that
// apply to them: the ABNF shape of each kind and the case conventions of
// RFC 5646 Section 2.1.1.
//
// Nothing in this package consults the IANA registry.
package subtag

// Kind identifies the role a subtag plays inside a language tag.
type Kind int

// The subtag kinds known to the registry and the tag grammar.
const (
	KindUnknown Kind = iota
	KindLanguage
	KindExtlang
	KindScript
	KindRegion
	KindVariant
	KindSingleton
	KindExtension
	KindPrivateUse
	KindGrandfathered
	KindRedundant
)

var kindNames = [...]string{
	KindUnknown:       "unknown",
	KindLanguage:      "language",
	KindExtlang:       "extlang",
	KindScript:        "script",
	KindRegion:        "region",
	KindVariant:       "variant",
	KindSingleton:     "extension singleton",
	KindExtension:     "extension subtag",
	KindPrivateUse:    "private-use subtag",
	KindGrandfathered: "grandfathered tag",
	KindRedundant:     "redundant tag",
}

// String returns the human readable name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// RegistryType returns the value of the IANA "Type" field for kinds that are
// registered in the language subtag registry, and "" otherwise.
func (k Kind) RegistryType() string {
	switch k {
	case KindLanguage, KindExtlang, KindScript, KindRegion, KindVariant:
		return kindNames[k]
	case KindGrandfathered:
		return "grandfathered"
	case KindRedundant:
		return "redundant"
	case KindSingleton:
		return "extension"
	default:
		return ""
	}
}

type (
	// Language is a primary language subtag, e.g. "en" or "und".
	Language string
	// Extlang is an extended language subtag, e.g. "yue" in "zh-yue".
	Extlang string
	// Script is an ISO 15924 script subtag, e.g. "Latn".
	Script string
	// Region is an ISO 3166-1 or UN M.49 region subtag, e.g. "US" or "419".
	Region string
	// Variant is a registered variant subtag, e.g. "valencia".
	Variant string
	// Singleton introduces an extension sequence, e.g. "u".
	Singleton string
	// ExtensionValue is the "-" joined run of subtags following a singleton.
	ExtensionValue string
	// PrivateUse is the "-" joined run of subtags following an "x" singleton.
	PrivateUse string
	// Grandfathered is a whole tag registered as grandfathered, e.g. "i-klingon".
	Grandfathered string
	// Redundant is a whole tag registered as redundant, e.g. "zh-cmn-Hans".
	Redundant string
)

// Well-known subtag values.
const (
	Undetermined     Language  = "und"
	GlobalRegion     Region    = "001"
	PrivateUsePrefix Singleton = "x"
	// GrandfatheredPrefix is the irregular "i" prefix reserved for
	// grandfathered registrations.
	GrandfatheredPrefix = "i"
)

// IsUndetermined reports whether l is the "und" language subtag, ignoring case.
func (l Language) IsUndetermined() bool {
	return len(l) == len(Undetermined) && Fold(KindLanguage, string(l)) == string(Undetermined)
}

// IsGlobal reports whether r is the UN M.49 code for the whole world.
func (r Region) IsGlobal() bool {
	return r == GlobalRegion
}

// IsPrivateUse reports whether s is the private-use singleton, ignoring case.
func (s Singleton) IsPrivateUse() bool {
	return s == "x" || s == "X"
}
