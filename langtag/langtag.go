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

// Package langtag parses, validates, normalizes and compares IETF BCP 47
// language tags as specified in RFC 5646, and selects the best available
// language for a list of desired ones in the manner of RFC 4647.
//
// A tag moves through a small pipeline. Parse splits it into TagParts
// following the RFC 5646 grammar. The validity transforms (WellFormed, Valid
// and StrictlyValid) check the parts against the grammar and the IANA
// registry, and the normalization transforms (Canonical and Preferred)
// rewrite them. LanguageTag records how far a tag has travelled along both
// axes so that later conversions only do the remaining work.
//
// The registry is always passed explicitly, either in Options or through the
// LanguageTag it was used to create. The package never reads a global
// registry and performs no I/O.
//
// # Key Features
//
//   - Validity levels: well-formed, valid and strictly valid, the latter
//     checking the registered prefixes of extlang and variant subtags.
//   - Normalization levels: canonical case and preferred values, including
//     the replacement of grandfathered and redundant tags.
//   - Matching: Compare grades how close two tags are and
//     FilterLanguageTags ranks available tags against desired ones.
package langtag

import (
	"sync"

	"github.com/jplu/bcp47/registry"
	"github.com/jplu/bcp47/subtag"
)

// Options selects the level a tag is brought to when it is created and the
// registry used to get there. A zero Validity means ValidityValid and a zero
// Normalization means NormalizationCanonical.
type Options struct {
	Validity      TagValidity
	Normalization TagNormalization
	Registry      *registry.Registry
}

func (o Options) withDefaults() Options {
	if o.Validity == ValidityUnknown {
		o.Validity = ValidityValid
	}
	if o.Normalization == NormalizationUnknown {
		o.Normalization = NormalizationCanonical
	}
	return o
}

// memo is a lazily computed boolean.
type memo int8

const (
	memoUnknown memo = iota
	memoFalse
	memoTrue
)

// LanguageTag is a parsed tag together with the validity and normalization
// levels it is known to reach. It is only created through Create,
// CreateFromParts and CreateFromTag and never changes once created; the To*
// methods return a new tag when work is needed.
//
// The Is* methods compute their answer on first use and remember it. A true
// answer also raises the levels reported by Validity and Normalization. All
// methods are safe for concurrent use.
type LanguageTag struct {
	parts TagParts
	tag   string
	reg   *registry.Registry

	mu              sync.Mutex
	validity        TagValidity
	normalization   TagNormalization
	isValid         memo
	isStrictlyValid memo
	isCanonical     memo
	isPreferred     memo
}

// Create parses tag and brings it to the level selected by opts.
func Create(tag string, opts Options) (*LanguageTag, error) {
	parts, err := Parse(tag, opts.Registry)
	if err != nil {
		return nil, err
	}
	return createFromParts(parts, ValidityUnknown, NormalizationUnknown, opts)
}

// CreateFromParts brings already split parts to the level selected by opts.
// Nothing is assumed about parts; every transform of the chain runs.
func CreateFromParts(parts TagParts, opts Options) (*LanguageTag, error) {
	return createFromParts(parts.clone(), ValidityUnknown, NormalizationUnknown, opts)
}

// CreateFromTag brings an existing tag to the level selected by opts. The
// levels t already reaches are not checked again and are never lowered. A
// nil opts.Registry means the registry t was created with.
func CreateFromTag(t *LanguageTag, opts Options) (*LanguageTag, error) {
	if opts.Registry == nil {
		opts.Registry = t.reg
	}
	return createFromParts(t.parts, t.Validity(), t.Normalization(), opts)
}

func createFromParts(
	parts TagParts,
	knownValidity TagValidity,
	knownNormalization TagNormalization,
	opts Options,
) (*LanguageTag, error) {
	opts = opts.withDefaults()
	res, err := runPipeline(parts, knownValidity, knownNormalization, opts)
	if err != nil {
		return nil, err
	}
	return &LanguageTag{
		parts:         res.parts,
		tag:           res.parts.String(),
		reg:           opts.Registry,
		validity:      res.validity,
		normalization: res.normalization,
	}, nil
}

// String returns the tag as a "-" joined string.
func (t *LanguageTag) String() string {
	return t.tag
}

// Parts returns a copy of the parts of the tag.
func (t *LanguageTag) Parts() TagParts {
	return t.parts.clone()
}

// Registry returns the registry the tag was created with.
func (t *LanguageTag) Registry() *registry.Registry {
	return t.reg
}

// PrimaryLanguage returns the primary language subtag, which is empty for
// grandfathered and private-use tags.
func (t *LanguageTag) PrimaryLanguage() subtag.Language {
	return t.parts.PrimaryLanguage
}

// Script returns the explicit script subtag, if any.
func (t *LanguageTag) Script() subtag.Script {
	return t.parts.Script
}

// Region returns the region subtag, if any.
func (t *LanguageTag) Region() subtag.Region {
	return t.parts.Region
}

// IsUndetermined reports whether the primary language is "und".
func (t *LanguageTag) IsUndetermined() bool {
	return t.parts.PrimaryLanguage.IsUndetermined()
}

// IsGrandfathered reports whether the tag is a whole grandfathered tag.
func (t *LanguageTag) IsGrandfathered() bool {
	return t.parts.IsGrandfathered()
}

// IsPrivateUse reports whether the tag is made of private-use subtags only.
func (t *LanguageTag) IsPrivateUse() bool {
	return t.parts.IsPrivateUse()
}

// EffectiveScript returns the explicit script of the tag or, when there is
// none, the Suppress-Script registered for its primary language.
func (t *LanguageTag) EffectiveScript() subtag.Script {
	if t.parts.Script != "" {
		return t.parts.Script
	}
	if rec, ok := t.reg.Languages().TryGet(string(t.parts.PrimaryLanguage)); ok && rec.SuppressScript != "" {
		return subtag.Script(subtag.Fold(subtag.KindScript, rec.SuppressScript))
	}
	return ""
}

// Validity returns the highest validity level the tag is known to reach.
func (t *LanguageTag) Validity() TagValidity {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.validity
}

// Normalization returns the highest normalization level the tag is known to
// reach.
func (t *LanguageTag) Normalization() TagNormalization {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.normalization
}

// IsValid reports whether every subtag of the tag is registered.
func (t *LanguageTag) IsValid() bool {
	return t.checkValidity(&t.isValid, ValidityValid, Valid)
}

// IsStrictlyValid reports whether the tag is valid and respects the
// registered prefixes of its extlang and variant subtags.
func (t *LanguageTag) IsStrictlyValid() bool {
	return t.checkValidity(&t.isStrictlyValid, ValidityStrictlyValid, StrictlyValid)
}

// IsCanonical reports whether every subtag of the tag has its canonical case.
func (t *LanguageTag) IsCanonical() bool {
	return t.checkNormalization(&t.isCanonical, NormalizationCanonical, Canonical)
}

// IsPreferred reports whether the tag is canonical and uses no subtag or
// whole tag with a registered preferred value.
func (t *LanguageTag) IsPreferred() bool {
	return t.checkNormalization(&t.isPreferred, NormalizationPreferred, Preferred)
}

func (t *LanguageTag) checkValidity(
	cell *memo,
	level TagValidity,
	check func(TagParts, *registry.Registry) (TagParts, error),
) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.validity >= level {
		return true
	}
	if *cell == memoUnknown {
		*cell = memoFalse
		if _, err := check(t.parts, t.reg); err == nil {
			*cell = memoTrue
			t.validity = t.validity.Max(level)
		}
	}
	return *cell == memoTrue
}

func (t *LanguageTag) checkNormalization(
	cell *memo,
	level TagNormalization,
	normalize func(TagParts, *registry.Registry) (TagParts, error),
) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.normalization >= level {
		return true
	}
	if *cell == memoUnknown {
		*cell = memoFalse
		if normalized, err := normalize(t.parts, t.reg); err == nil && normalized.Equal(t.parts) {
			*cell = memoTrue
			t.normalization = t.normalization.Max(level)
		}
	}
	return *cell == memoTrue
}

// ToValid returns t if it is valid, or the error explaining why it is not.
func (t *LanguageTag) ToValid() (*LanguageTag, error) {
	if t.IsValid() {
		return t, nil
	}
	return t.upgrade(ValidityValid, t.Normalization())
}

// ToStrictlyValid returns t if it is strictly valid, or the error explaining
// why it is not.
func (t *LanguageTag) ToStrictlyValid() (*LanguageTag, error) {
	if t.IsStrictlyValid() {
		return t, nil
	}
	return t.upgrade(ValidityStrictlyValid, t.Normalization())
}

// ToCanonical returns t if it is canonical and a canonical copy otherwise.
func (t *LanguageTag) ToCanonical() (*LanguageTag, error) {
	if t.IsCanonical() {
		return t, nil
	}
	return t.upgrade(t.Validity(), NormalizationCanonical)
}

// ToPreferred returns t if it is valid and preferred and otherwise a copy in
// preferred form, which is at least valid.
func (t *LanguageTag) ToPreferred() (*LanguageTag, error) {
	if t.IsValid() && t.IsPreferred() {
		return t, nil
	}
	return t.upgrade(t.Validity().Max(ValidityValid), NormalizationPreferred)
}

func (t *LanguageTag) upgrade(validity TagValidity, normalization TagNormalization) (*LanguageTag, error) {
	return CreateFromTag(t, Options{
		Validity:      validity.Max(ValidityWellFormed),
		Normalization: normalization.Max(NormalizationNone),
		Registry:      t.reg,
	})
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t *LanguageTag) MarshalText() ([]byte, error) {
	return []byte(t.tag), nil
}
