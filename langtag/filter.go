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
)

// MatchSide selects which tag of a match the filter reports and groups by.
type MatchSide int

// Sides of a match.
const (
	UseAvailableLanguage MatchSide = iota
	UseDesiredLanguage
)

// FilterKey selects what the filter keeps one match per.
type FilterKey int

// Filter keys.
const (
	// FilterPrimaryLanguage keeps the best match per primary language.
	FilterPrimaryLanguage FilterKey = iota
	// FilterFullTag keeps the best match per whole tag.
	FilterFullTag
)

// FilterOptions configures FilterLanguageTags.
type FilterOptions struct {
	Use    MatchSide
	Filter FilterKey
	// UltimateFallback is returned with a score of 0 when nothing matches.
	UltimateFallback *LanguageTag
	// Comparer grades each desired/available pair. With NormalizationPreferred
	// every tag must reach ValidityValid; the first one that cannot stops the
	// filter with its error, so callers should create the tags at least valid.
	Comparer Comparer
}

// LanguageMatch is one result of FilterLanguageTagsWithDetails.
type LanguageMatch struct {
	Desired   *LanguageTag
	Available *LanguageTag
	Quality   MatchQuality
	Score     float64
}

// Tag returns the side of the match selected by use.
func (m LanguageMatch) Tag(use MatchSide) *LanguageTag {
	if use == UseDesiredLanguage {
		return m.Desired
	}
	return m.Available
}

// minDecrementSteps is the number of desired tags up to which every tag lowers
// the base score by a tenth.
const minDecrementSteps = 10

// FilterLanguageTagsWithDetails scores every available tag against every
// desired tag and returns the best match per group, best first.
//
// Desired tags are in priority order. Each one lowers a base score, starting
// from 1, by a fixed decrement, and a match scores base + quality*decrement,
// so any match for an earlier desired tag outranks every match for a later
// one.
//
// An error is only returned when opts.Comparer fails on a pair; no partial
// result is returned then.
func FilterLanguageTagsWithDetails(
	desired, available []*LanguageTag,
	opts FilterOptions,
) ([]LanguageMatch, error) {
	decrement := 0.1
	if len(desired) >= minDecrementSteps {
		decrement = 1 / float64(len(desired))
	}

	var matches []LanguageMatch
	index := make(map[string]int)
	base := 1.0
	for _, d := range desired {
		base -= decrement
		for _, a := range available {
			quality, err := opts.Comparer.Compare(d, a)
			if err != nil {
				return nil, err
			}
			if quality <= QualityNone {
				continue
			}
			m := LanguageMatch{Desired: d, Available: a, Quality: quality, Score: base + float64(quality)*decrement}
			key := groupKey(m.Tag(opts.Use), opts.Filter)
			if i, ok := index[key]; ok {
				if m.Score > matches[i].Score {
					matches[i] = m
				}
				continue
			}
			index[key] = len(matches)
			matches = append(matches, m)
		}
	}

	if len(matches) == 0 && opts.UltimateFallback != nil {
		return []LanguageMatch{{
			Desired:   opts.UltimateFallback,
			Available: opts.UltimateFallback,
			Quality:   QualityNone,
			Score:     0,
		}}, nil
	}

	slices.SortStableFunc(matches, func(a, b LanguageMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return matches, nil
}

// FilterLanguageTags returns the tags of FilterLanguageTagsWithDetails, taken
// from the side selected by opts.Use.
func FilterLanguageTags(desired, available []*LanguageTag, opts FilterOptions) ([]*LanguageTag, error) {
	matches, err := FilterLanguageTagsWithDetails(desired, available, opts)
	if err != nil {
		return nil, err
	}
	tags := make([]*LanguageTag, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m.Tag(opts.Use))
	}
	return tags, nil
}

func groupKey(t *LanguageTag, key FilterKey) string {
	if key == FilterPrimaryLanguage && t.parts.PrimaryLanguage != "" {
		return strings.ToLower(string(t.parts.PrimaryLanguage))
	}
	return strings.ToLower(t.String())
}
