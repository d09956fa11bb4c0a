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

	"golang.org/x/text/language"
)

type weightedRange struct {
	tag    string
	weight float32
}

// ParseAcceptLanguage turns the value of an HTTP Accept-Language header into
// a list of desired tags, highest weight first and in header order for equal
// weights. The "*" range, ranges with a zero weight and entries that cannot be
// parsed or do not reach the level selected by opts are skipped.
func ParseAcceptLanguage(header string, opts Options) []*LanguageTag {
	var ranges []weightedRange
	for entry := range strings.SplitSeq(header, ",") {
		entry = strings.TrimSpace(entry)
		raw, _, _ := strings.Cut(entry, ";")
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "*" {
			continue
		}
		// x/text checks the syntax of the entry and reads its weight.
		tags, weights, err := language.ParseAcceptLanguage(entry)
		if err != nil || len(tags) == 0 {
			continue
		}
		ranges = append(ranges, weightedRange{tag: raw, weight: weights[0]})
	}

	slices.SortStableFunc(ranges, func(a, b weightedRange) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		default:
			return 0
		}
	})

	desired := make([]*LanguageTag, 0, len(ranges))
	for _, r := range ranges {
		t, err := Create(r.tag, opts)
		if err != nil {
			continue
		}
		desired = append(desired, t)
	}
	return desired
}
