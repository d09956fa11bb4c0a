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
	"strings"

	"github.com/jplu/bcp47/registry"
	"github.com/jplu/bcp47/subtag"
)

// WellFormed checks that every subtag of parts has the shape the grammar
// requires for its kind. It does not consult reg for membership, so reg may
// be nil. The parts are returned unchanged.
func WellFormed(parts TagParts, reg *registry.Registry) (TagParts, error) {
	fail := func(err error) (TagParts, error) {
		return TagParts{}, validityFailure(parts, ValidityWellFormed, err)
	}
	if !parts.hasOneShape() {
		return fail(ErrInvalidShape)
	}
	if parts.Grandfathered != "" {
		if _, err := reg.Grandfathered().VerifyIsWellFormed(string(parts.Grandfathered)); err != nil {
			return fail(err)
		}
		return parts, nil
	}

	if parts.PrimaryLanguage != "" {
		if _, err := reg.Languages().VerifyIsWellFormed(string(parts.PrimaryLanguage)); err != nil {
			return fail(err)
		}
	}
	if len(parts.Extlangs) > subtag.MaxExtlangs {
		return TagParts{}, &ValidityError{
			Tag: parts.String(), Tier: ValidityWellFormed, Kind: subtag.KindExtlang,
			Subtag: string(parts.Extlangs[subtag.MaxExtlangs]), Err: ErrTooManyExtlangs,
		}
	}
	for _, e := range parts.Extlangs {
		if _, err := reg.Extlangs().VerifyIsWellFormed(string(e)); err != nil {
			return fail(err)
		}
	}
	if parts.Script != "" {
		if _, err := reg.Scripts().VerifyIsWellFormed(string(parts.Script)); err != nil {
			return fail(err)
		}
	}
	if parts.Region != "" {
		if _, err := reg.Regions().VerifyIsWellFormed(string(parts.Region)); err != nil {
			return fail(err)
		}
	}
	for _, v := range parts.Variants {
		if _, err := reg.Variants().VerifyIsWellFormed(string(v)); err != nil {
			return fail(err)
		}
	}
	for _, e := range parts.Extensions {
		if _, err := reg.ExtensionSingletons().VerifyIsWellFormed(string(e.Singleton)); err != nil {
			return fail(err)
		}
		if !subtag.IsExtensionValue(string(e.Value)) {
			return fail(&registry.LookupError{Kind: subtag.KindExtension, Value: string(e.Value), Err: ErrMalformedSubtag})
		}
	}
	for _, pu := range parts.PrivateUse {
		if !subtag.IsPrivateUseValue(string(pu)) {
			return fail(&registry.LookupError{Kind: subtag.KindPrivateUse, Value: string(pu), Err: ErrMalformedSubtag})
		}
	}
	return parts, nil
}

// Valid checks that parts is well-formed and that every registrable subtag
// is registered in reg. At most one extlang is allowed and no variant or
// extension singleton may repeat. The parts are returned unchanged.
func Valid(parts TagParts, reg *registry.Registry) (TagParts, error) {
	if reg == nil {
		return TagParts{}, validityFailure(parts, ValidityValid, ErrNoRegistry)
	}
	if _, err := WellFormed(parts, reg); err != nil {
		return TagParts{}, err
	}
	fail := func(err error) (TagParts, error) {
		return TagParts{}, validityFailure(parts, ValidityValid, err)
	}
	repeated := func(kind subtag.Kind, value string, err error) (TagParts, error) {
		return TagParts{}, &ValidityError{Tag: parts.String(), Tier: ValidityValid, Kind: kind, Subtag: value, Err: err}
	}

	if parts.Grandfathered != "" {
		if _, err := reg.Grandfathered().VerifyIsValid(string(parts.Grandfathered)); err != nil {
			return fail(err)
		}
		return parts, nil
	}
	if parts.PrimaryLanguage == "" {
		// Private use only: nothing is registered.
		return parts, nil
	}

	if _, err := reg.Languages().VerifyIsValid(string(parts.PrimaryLanguage)); err != nil {
		return fail(err)
	}
	if len(parts.Extlangs) > 1 {
		return repeated(subtag.KindExtlang, string(parts.Extlangs[1]), ErrMultipleExtlangs)
	}
	for _, e := range parts.Extlangs {
		if _, err := reg.Extlangs().VerifyIsValid(string(e)); err != nil {
			return fail(err)
		}
	}
	if parts.Script != "" {
		if _, err := reg.Scripts().VerifyIsValid(string(parts.Script)); err != nil {
			return fail(err)
		}
	}
	if parts.Region != "" {
		if _, err := reg.Regions().VerifyIsValid(string(parts.Region)); err != nil {
			return fail(err)
		}
	}

	seenVariants := make(map[string]struct{}, len(parts.Variants))
	for _, v := range parts.Variants {
		if _, err := reg.Variants().VerifyIsValid(string(v)); err != nil {
			return fail(err)
		}
		key := strings.ToLower(string(v))
		if _, ok := seenVariants[key]; ok {
			return repeated(subtag.KindVariant, string(v), ErrDuplicateVariant)
		}
		seenVariants[key] = struct{}{}
	}

	seenSingletons := make(map[string]struct{}, len(parts.Extensions))
	for _, e := range parts.Extensions {
		if _, err := reg.ExtensionSingletons().VerifyIsValid(string(e.Singleton)); err != nil {
			return fail(err)
		}
		key := strings.ToLower(string(e.Singleton))
		if _, ok := seenSingletons[key]; ok {
			return repeated(subtag.KindSingleton, string(e.Singleton), ErrDuplicateSingleton)
		}
		seenSingletons[key] = struct{}{}
	}
	return parts, nil
}

// StrictlyValid checks that parts is valid and that every extlang and
// variant follows one of its registered prefixes. The prefix of a variant is
// the canonical language, extlang, script and region of the tag followed by
// the variants before it. The parts are returned unchanged.
func StrictlyValid(parts TagParts, reg *registry.Registry) (TagParts, error) {
	if _, err := Valid(parts, reg); err != nil {
		return TagParts{}, err
	}
	if parts.PrimaryLanguage == "" {
		return parts, nil
	}
	canonical := canonicalParts(parts)
	prefixFailure := func(kind subtag.Kind, value, prefix string, allowed []string, err error) (TagParts, error) {
		return TagParts{}, &PrefixError{
			Tag: parts.String(), Kind: kind, Subtag: value, Prefix: prefix, Allowed: allowed, Err: err,
		}
	}

	for i, e := range parts.Extlangs {
		rec, _ := reg.Extlangs().TryGet(string(e))
		if len(rec.Prefix) == 0 {
			continue
		}
		prefix := canonical.prefixBefore(subtag.KindExtlang, i)
		if !containsFold(rec.Prefix, prefix) {
			return prefixFailure(subtag.KindExtlang, string(e), prefix, rec.Prefix, ErrInvalidExtlangPrefix)
		}
	}
	for i, v := range parts.Variants {
		rec, _ := reg.Variants().TryGet(string(v))
		if len(rec.Prefix) == 0 {
			continue
		}
		prefix := canonical.prefixBefore(subtag.KindVariant, i)
		if !containsFold(rec.Prefix, prefix) {
			return prefixFailure(subtag.KindVariant, string(v), prefix, rec.Prefix, ErrInvalidVariantPrefix)
		}
	}
	return parts, nil
}

// prefixBefore renders the subtags preceding the i-th subtag of kind. For an
// extlang that is the primary language and earlier extlangs; for a variant it
// is everything up to the region plus the earlier variants.
func (p TagParts) prefixBefore(kind subtag.Kind, i int) string {
	head := TagParts{PrimaryLanguage: p.PrimaryLanguage}
	switch kind {
	case subtag.KindExtlang:
		head.Extlangs = p.Extlangs[:i]
	case subtag.KindVariant:
		head.Extlangs = p.Extlangs
		head.Script = p.Script
		head.Region = p.Region
		head.Variants = p.Variants[:i]
	default:
	}
	return head.String()
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
