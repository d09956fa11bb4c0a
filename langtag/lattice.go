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

package langtag

import "fmt"

// TagValidity is the level of checking a tag has passed. Levels are ordered:
// a strictly valid tag is also valid and well-formed.
type TagValidity int

// Validity levels.
const (
	ValidityUnknown       TagValidity = 0
	ValidityWellFormed    TagValidity = 500
	ValidityValid         TagValidity = 900
	ValidityStrictlyValid TagValidity = 1000
)

// Max returns the higher of v and o.
func (v TagValidity) Max(o TagValidity) TagValidity {
	return max(v, o)
}

func (v TagValidity) String() string {
	switch v {
	case ValidityWellFormed:
		return "well-formed"
	case ValidityValid:
		return "valid"
	case ValidityStrictlyValid:
		return "strictly-valid"
	default:
		return "unknown"
	}
}

// ParseValidity converts the name returned by TagValidity.String back to the
// level.
func ParseValidity(s string) (TagValidity, error) {
	for _, v := range []TagValidity{ValidityWellFormed, ValidityValid, ValidityStrictlyValid} {
		if v.String() == s {
			return v, nil
		}
	}
	return ValidityUnknown, fmt.Errorf("unknown tag validity %q", s)
}

// TagNormalization is the normal form a tag has been brought to. Preferred
// tags are also canonical.
type TagNormalization int

// Normalization levels.
const (
	NormalizationUnknown   TagNormalization = 0
	NormalizationNone      TagNormalization = 100
	NormalizationCanonical TagNormalization = 900
	NormalizationPreferred TagNormalization = 1000
)

// Max returns the higher of n and o.
func (n TagNormalization) Max(o TagNormalization) TagNormalization {
	return max(n, o)
}

func (n TagNormalization) String() string {
	switch n {
	case NormalizationNone:
		return "none"
	case NormalizationCanonical:
		return "canonical"
	case NormalizationPreferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseNormalization converts the name returned by TagNormalization.String
// back to the level.
func ParseNormalization(s string) (TagNormalization, error) {
	for _, n := range []TagNormalization{NormalizationNone, NormalizationCanonical, NormalizationPreferred} {
		if n.String() == s {
			return n, nil
		}
	}
	return NormalizationUnknown, fmt.Errorf("unknown tag normalization %q", s)
}
