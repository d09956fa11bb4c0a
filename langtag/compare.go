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

	"github.com/jplu/bcp47/subtag"
)

// MatchQuality grades how well one tag matches another. Higher is better and
// a whole-tag quality is the lowest of the qualities of its fields.
type MatchQuality float64

// Match qualities, best first.
const (
	QualityExact         MatchQuality = 1.0
	QualityUndetermined  MatchQuality = 0.9
	QualityMacroRegion   MatchQuality = 0.8
	QualityNeutralRegion MatchQuality = 0.7
	QualitySibling       MatchQuality = 0.6
	QualityRegion        MatchQuality = 0.5
	QualityVariant       MatchQuality = 0.4
	QualityNone          MatchQuality = 0
)

func (q MatchQuality) String() string {
	switch q {
	case QualityExact:
		return "exact"
	case QualityUndetermined:
		return "undetermined"
	case QualityMacroRegion:
		return "macroRegion"
	case QualityNeutralRegion:
		return "neutralRegion"
	case QualitySibling:
		return "sibling"
	case QualityRegion:
		return "region"
	case QualityVariant:
		return "variant"
	case QualityNone:
		return "none"
	default:
		return "unknown"
	}
}

// Comparer grades pairs of tags. The zero value compares tags as they are;
// with Normalization set to NormalizationPreferred both tags are first brought
// to their preferred form, so that "in" and "id" match exactly.
type Comparer struct {
	Normalization TagNormalization
}

// Compare grades how well t2 matches t1.
func (c Comparer) Compare(t1, t2 *LanguageTag) (MatchQuality, error) {
	if c.Normalization >= NormalizationPreferred {
		var err error
		if t1, err = t1.ToPreferred(); err != nil {
			return QualityNone, err
		}
		if t2, err = t2.ToPreferred(); err != nil {
			return QualityNone, err
		}
	}
	return Compare(t1, t2), nil
}

// Compare grades how well t2 matches t1 without normalizing either tag.
//
// Tags without a primary language only match if they are equal ignoring
// case. Otherwise each field is graded and the lowest grade wins: a
// different primary language or script gives QualityNone unless one side is
// undetermined, regions are related through the registry's region hierarchy,
// and differing variants or extensions only lower the quality.
func Compare(t1, t2 *LanguageTag) MatchQuality {
	p1, p2 := t1.parts, t2.parts
	if p1.PrimaryLanguage == "" || p2.PrimaryLanguage == "" {
		if strings.EqualFold(t1.String(), t2.String()) {
			return QualityExact
		}
		return QualityNone
	}

	fields := []func() MatchQuality{
		func() MatchQuality { return compareLanguage(p1.PrimaryLanguage, p2.PrimaryLanguage) },
		func() MatchQuality { return compareExtlangs(p1.Extlangs, p2.Extlangs) },
		func() MatchQuality { return compareScript(t1, t2) },
		func() MatchQuality { return compareRegion(t1, t2) },
		func() MatchQuality { return compareVariants(p1.Variants, p2.Variants) },
		func() MatchQuality { return compareExtensions(p1.Extensions, p2.Extensions) },
	}
	quality := QualityExact
	for _, field := range fields {
		quality = min(quality, field())
		if quality == QualityNone {
			return QualityNone
		}
	}
	return quality
}

// Match returns Compare as a plain number between 0 and 1.
func Match(t1, t2 *LanguageTag) float64 {
	return float64(Compare(t1, t2))
}

func compareLanguage(l1, l2 subtag.Language) MatchQuality {
	switch {
	case strings.EqualFold(string(l1), string(l2)):
		return QualityExact
	case l1.IsUndetermined() || l2.IsUndetermined():
		return QualityUndetermined
	default:
		return QualityNone
	}
}

func compareExtlangs(e1, e2 []subtag.Extlang) MatchQuality {
	if len(e1) != len(e2) {
		return QualityNone
	}
	for i := range e1 {
		if !strings.EqualFold(string(e1[i]), string(e2[i])) {
			return QualityNone
		}
	}
	return QualityExact
}

// compareScript compares effective scripts. Only an undetermined language
// tolerates a different script; a missing script is just another value.
func compareScript(t1, t2 *LanguageTag) MatchQuality {
	s1, s2 := t1.EffectiveScript(), t2.EffectiveScript()
	switch {
	case strings.EqualFold(string(s1), string(s2)):
		return QualityExact
	case t1.IsUndetermined() || t2.IsUndetermined():
		return QualityUndetermined
	default:
		return QualityNone
	}
}

func compareRegion(t1, t2 *LanguageTag) MatchQuality {
	r1 := subtag.Region(strings.ToUpper(string(t1.parts.Region)))
	r2 := subtag.Region(strings.ToUpper(string(t2.parts.Region)))
	neutral := func(r subtag.Region) bool { return r == "" || r.IsGlobal() }

	switch {
	case r1 == r2, neutral(r1) && neutral(r2):
		return QualityExact
	case neutral(r1) || neutral(r2):
		return QualityNeutralRegion
	}
	hierarchy := t1.reg.Hierarchy()
	if hierarchy.Contains(r1, r2) || hierarchy.Contains(r2, r1) {
		return QualityMacroRegion
	}
	return QualitySibling
}

func compareVariants(v1, v2 []subtag.Variant) MatchQuality {
	if len(v1) != len(v2) {
		return QualityRegion
	}
	for i := range v1 {
		if !strings.EqualFold(string(v1[i]), string(v2[i])) {
			return QualityRegion
		}
	}
	return QualityExact
}

func compareExtensions(e1, e2 []Extension) MatchQuality {
	if len(e1) != len(e2) {
		return QualityVariant
	}
	for i := range e1 {
		if !strings.EqualFold(string(e1[i].Singleton), string(e2[i].Singleton)) ||
			!strings.EqualFold(string(e1[i].Value), string(e2[i].Value)) {
			return QualityVariant
		}
	}
	return QualityExact
}
