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

import (
	"slices"
	"strings"

	"github.com/jplu/bcp47/subtag"
)

// Extension is one extension sequence: a singleton and the "-" joined
// subtags that follow it, e.g. {"u", "ca-buddhist"}.
type Extension struct {
	Singleton subtag.Singleton      `json:"singleton"`
	Value     subtag.ExtensionValue `json:"value"`
}

// String renders the sequence as it appears in a tag.
func (e Extension) String() string {
	return string(e.Singleton) + "-" + string(e.Value)
}

// TagParts is the structured decomposition of a language tag. Exactly one of
// PrimaryLanguage, Grandfathered or PrivateUse (alone) is set in a
// well-formed tag. Values are kept with the case they were parsed with until
// a normalization transform folds them.
//
// TagParts is treated as a value: transforms never modify the slices of the
// parts they receive and return fresh copies instead.
type TagParts struct {
	PrimaryLanguage subtag.Language      `json:"primaryLanguage,omitempty"`
	Extlangs        []subtag.Extlang     `json:"extlangs,omitempty"`
	Script          subtag.Script        `json:"script,omitempty"`
	Region          subtag.Region        `json:"region,omitempty"`
	Variants        []subtag.Variant     `json:"variants,omitempty"`
	Extensions      []Extension          `json:"extensions,omitempty"`
	PrivateUse      []subtag.PrivateUse  `json:"privateUse,omitempty"`
	Grandfathered   subtag.Grandfathered `json:"grandfathered,omitempty"`
}

// String renders the parts as a "-" joined tag in grammar order. The case of
// each subtag is kept.
func (p TagParts) String() string {
	if p.Grandfathered != "" {
		return string(p.Grandfathered)
	}

	var b strings.Builder
	write := func(s string) {
		if s == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(s)
	}

	write(string(p.PrimaryLanguage))
	for _, e := range p.Extlangs {
		write(string(e))
	}
	write(string(p.Script))
	write(string(p.Region))
	for _, v := range p.Variants {
		write(string(v))
	}
	for _, e := range p.Extensions {
		write(e.String())
	}
	for _, pu := range p.PrivateUse {
		write(string(subtag.PrivateUsePrefix) + "-" + string(pu))
	}
	return b.String()
}

// Equal reports whether p and o hold the same subtags with the same case.
func (p TagParts) Equal(o TagParts) bool {
	return p.PrimaryLanguage == o.PrimaryLanguage &&
		slices.Equal(p.Extlangs, o.Extlangs) &&
		p.Script == o.Script &&
		p.Region == o.Region &&
		slices.Equal(p.Variants, o.Variants) &&
		slices.Equal(p.Extensions, o.Extensions) &&
		slices.Equal(p.PrivateUse, o.PrivateUse) &&
		p.Grandfathered == o.Grandfathered
}

// IsGrandfathered reports whether the parts hold a whole grandfathered tag.
func (p TagParts) IsGrandfathered() bool {
	return p.Grandfathered != ""
}

// IsPrivateUse reports whether the tag consists of private-use subtags only.
func (p TagParts) IsPrivateUse() bool {
	return p.PrimaryLanguage == "" && p.Grandfathered == "" && len(p.PrivateUse) > 0
}

// clone returns a copy of p that shares no slice with it.
func (p TagParts) clone() TagParts {
	p.Extlangs = slices.Clone(p.Extlangs)
	p.Variants = slices.Clone(p.Variants)
	p.Extensions = slices.Clone(p.Extensions)
	p.PrivateUse = slices.Clone(p.PrivateUse)
	return p
}

// hasOneShape reports whether exactly one of the three tag shapes is present.
func (p TagParts) hasOneShape() bool {
	switch {
	case p.Grandfathered != "":
		return p.PrimaryLanguage == "" && len(p.Extlangs) == 0 && p.Script == "" && p.Region == "" &&
			len(p.Variants) == 0 && len(p.Extensions) == 0 && len(p.PrivateUse) == 0
	case p.PrimaryLanguage != "":
		return true
	default:
		return len(p.PrivateUse) > 0 && len(p.Extlangs) == 0 && p.Script == "" && p.Region == "" &&
			len(p.Variants) == 0 && len(p.Extensions) == 0
	}
}
