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
	"github.com/jplu/bcp47/registry"
	"github.com/jplu/bcp47/subtag"
)

// maxPreferredDepth bounds the number of whole-tag replacements Preferred
// follows before giving up on a registry whose preferred values cycle.
const maxPreferredDepth = 8

// canonicalParts folds the case of every subtag of p.
func canonicalParts(p TagParts) TagParts {
	c := p.clone()
	if c.Grandfathered != "" {
		c.Grandfathered = subtag.Grandfathered(subtag.Fold(subtag.KindGrandfathered, string(c.Grandfathered)))
		return c
	}
	c.PrimaryLanguage = subtag.Language(subtag.Fold(subtag.KindLanguage, string(c.PrimaryLanguage)))
	for i, e := range c.Extlangs {
		c.Extlangs[i] = subtag.Extlang(subtag.Fold(subtag.KindExtlang, string(e)))
	}
	c.Script = subtag.Script(subtag.Fold(subtag.KindScript, string(c.Script)))
	c.Region = subtag.Region(subtag.Fold(subtag.KindRegion, string(c.Region)))
	for i, v := range c.Variants {
		c.Variants[i] = subtag.Variant(subtag.Fold(subtag.KindVariant, string(v)))
	}
	for i, e := range c.Extensions {
		c.Extensions[i] = Extension{
			Singleton: subtag.Singleton(subtag.Fold(subtag.KindSingleton, string(e.Singleton))),
			Value:     subtag.ExtensionValue(subtag.Fold(subtag.KindExtension, string(e.Value))),
		}
	}
	for i, pu := range c.PrivateUse {
		c.PrivateUse[i] = subtag.PrivateUse(subtag.Fold(subtag.KindPrivateUse, string(pu)))
	}
	return c
}

// checkNormalized verifies the shape every normalized tag must keep.
func checkNormalized(parts TagParts) error {
	if !parts.hasOneShape() {
		return validityFailure(parts, ValidityWellFormed, ErrInvalidShape)
	}
	if len(parts.Extlangs) > 1 {
		return &ValidityError{
			Tag: parts.String(), Tier: ValidityValid, Kind: subtag.KindExtlang,
			Subtag: string(parts.Extlangs[1]), Err: ErrMultipleExtlangs,
		}
	}
	return nil
}

// Canonical returns parts with the case of every subtag folded as RFC 5646
// Section 2.1.1 recommends. No subtag is replaced; reg is not consulted and
// may be nil.
func Canonical(parts TagParts, _ *registry.Registry) (TagParts, error) {
	c := canonicalParts(parts)
	if err := checkNormalized(c); err != nil {
		return TagParts{}, err
	}
	return c, nil
}

// Preferred returns the canonical form of parts with deprecated registrations
// replaced by their preferred values. Whole grandfathered and redundant tags
// are replaced first; otherwise the language, extlang, script, region and
// variant subtags are replaced one by one. A script equal to the language's
// Suppress-Script is dropped.
func Preferred(parts TagParts, reg *registry.Registry) (TagParts, error) {
	if reg == nil {
		return TagParts{}, validityFailure(parts, ValidityValid, ErrNoRegistry)
	}
	return preferred(parts, reg, 0)
}

func preferred(parts TagParts, reg *registry.Registry, depth int) (TagParts, error) {
	c, err := Canonical(parts, reg)
	if err != nil {
		return TagParts{}, err
	}

	if c.Grandfathered != "" {
		rec, _ := reg.Grandfathered().TryGet(string(c.Grandfathered))
		if rec.PreferredValue == "" {
			return c, nil
		}
		return replaceWholeTag(c, rec.PreferredValue, reg, depth)
	}
	if c.PrimaryLanguage == "" {
		return c, nil
	}

	if rec, ok := reg.Redundant().TryGet(c.withoutSequences().String()); ok && rec.PreferredValue != "" {
		return replaceWholeTag(c, rec.PreferredValue, reg, depth)
	}

	if rec, ok := reg.Languages().TryGet(string(c.PrimaryLanguage)); ok && rec.PreferredValue != "" {
		c.PrimaryLanguage = subtag.Language(subtag.Fold(subtag.KindLanguage, rec.PreferredValue))
	}
	// An extlang with a preferred value takes the place of the primary
	// language, as in "zh-yue" to "yue".
	if len(c.Extlangs) == 1 {
		if rec, ok := reg.Extlangs().TryGet(string(c.Extlangs[0])); ok && rec.PreferredValue != "" {
			c.PrimaryLanguage = subtag.Language(subtag.Fold(subtag.KindLanguage, rec.PreferredValue))
			c.Extlangs = nil
		}
	}
	if rec, ok := reg.Scripts().TryGet(string(c.Script)); ok && rec.PreferredValue != "" {
		c.Script = subtag.Script(subtag.Fold(subtag.KindScript, rec.PreferredValue))
	}
	if rec, ok := reg.Regions().TryGet(string(c.Region)); ok && rec.PreferredValue != "" {
		c.Region = subtag.Region(subtag.Fold(subtag.KindRegion, rec.PreferredValue))
	}
	for i, v := range c.Variants {
		if rec, ok := reg.Variants().TryGet(string(v)); ok && rec.PreferredValue != "" {
			c.Variants[i] = subtag.Variant(subtag.Fold(subtag.KindVariant, rec.PreferredValue))
		}
	}
	if c.Script != "" {
		if rec, ok := reg.Languages().TryGet(string(c.PrimaryLanguage)); ok && rec.SuppressScript != "" &&
			subtag.Fold(subtag.KindScript, rec.SuppressScript) == string(c.Script) {
			c.Script = ""
		}
	}

	if err := checkNormalized(c); err != nil {
		return TagParts{}, err
	}
	return c, nil
}

// replaceWholeTag parses a whole-tag preferred value and normalizes it in
// turn. The extensions and private use of the replaced tag are kept.
func replaceWholeTag(from TagParts, replacement string, reg *registry.Registry, depth int) (TagParts, error) {
	normErr := func(err error) (TagParts, error) {
		return TagParts{}, &NormalizationError{Tag: from.String(), Replacement: replacement, Err: err}
	}
	if depth >= maxPreferredDepth {
		return normErr(ErrPreferredLoop)
	}
	next, err := Parse(replacement, reg)
	if err != nil {
		return normErr(err)
	}
	if next.Grandfathered != "" {
		return normErr(ErrGrandfatheredChain)
	}
	if next.PrimaryLanguage != "" {
		next.Extensions = append(next.Extensions, from.Extensions...)
		next.PrivateUse = append(next.PrivateUse, from.PrivateUse...)
	}
	return preferred(next, reg, depth+1)
}

// withoutSequences returns p without its extensions and private use, the
// part of a tag that redundant registrations cover.
func (p TagParts) withoutSequences() TagParts {
	p.Extensions = nil
	p.PrivateUse = nil
	return p
}
