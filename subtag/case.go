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

package subtag

import "strings"

// Fold returns raw with the letter case RFC 5646 Section 2.1.1 recommends
// for kind. Language, extlang, variant and extension subtags are lowercase,
// scripts are titlecase and regions are uppercase. Whole grandfathered and
// redundant tags use the positional rule implemented by FoldTag.
//
// Fold does not check the shape of raw.
func Fold(kind Kind, raw string) string {
	switch kind {
	case KindScript:
		return titleCase(raw)
	case KindRegion:
		return strings.ToUpper(raw)
	case KindGrandfathered, KindRedundant:
		return FoldTag(raw)
	default:
		return strings.ToLower(raw)
	}
}

// IsCanonical reports whether raw already has the case Fold would give it.
func IsCanonical(kind Kind, raw string) bool {
	return Fold(kind, raw) == raw
}

// FoldTag applies the positional case rule to a whole tag: the first subtag
// is lowercase, later 2-letter subtags are uppercase, later 4-letter subtags
// are titlecase and everything else is lowercase.
func FoldTag(tag string) string {
	var b strings.Builder
	b.Grow(len(tag))
	for i, part := range strings.Split(tag, "-") {
		if i > 0 {
			b.WriteByte('-')
		}
		switch {
		case i == 0:
			b.WriteString(strings.ToLower(part))
		case len(part) == regionAlphaLen && isAlphabetic(part):
			b.WriteString(strings.ToUpper(part))
		case len(part) == scriptLen && isAlphabetic(part):
			writeTitleCase(&b, part)
		default:
			b.WriteString(strings.ToLower(part))
		}
	}
	return b.String()
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	writeTitleCase(&b, s)
	return b.String()
}

// writeTitleCase writes an ASCII string to a builder using title case
// (e.g., "Latn").
func writeTitleCase(b *strings.Builder, s string) {
	if len(s) == 0 {
		return
	}
	b.WriteString(strings.ToUpper(s[:1]))
	b.WriteString(strings.ToLower(s[1:]))
}
