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

// BCP 47 length constants for subtag shapes.
const (
	maxSubtagLen       = 8 // Maximum length of any subtag.
	minLanguageLen     = 2 // Shortest primary language subtag.
	extlangLen         = 3 // An extended language subtag is always 3 letters.
	scriptLen          = 4 // A script subtag is always 4 letters.
	regionAlphaLen     = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen   = 3 // A numeric region subtag is always 3 digits.
	minVariantLenAlpha = 5 // Min length of a variant starting with a letter.
	minVariantLenDigit = 4 // Min length of a variant starting with a digit.
	minExtensionLen    = 2 // Min length of a subtag inside an extension.

	// MaxExtlangs is the number of extlang subtags the ABNF admits. Only one
	// is valid; see RFC 5646 Section 2.2.2.
	MaxExtlangs = 3
)

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlphanum checks if a byte is an ASCII letter or digit.
func isAlphanum(b byte) bool { return isAlpha(b) || isDigit(b) }

// isAlphabetic checks if a string contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isNumeric checks if a string contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isAlphanumeric checks if a string contains only ASCII letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isAlphanum(s[i]) {
			return false
		}
	}
	return true
}

// IsLanguage reports whether s has the shape of a primary language subtag
// (2 to 8 letters).
func IsLanguage(s string) bool {
	return len(s) >= minLanguageLen && len(s) <= maxSubtagLen && isAlphabetic(s)
}

// IsExtlang reports whether s has the shape of an extended language subtag.
func IsExtlang(s string) bool {
	return len(s) == extlangLen && isAlphabetic(s)
}

// IsScript reports whether s has the shape of a script subtag.
func IsScript(s string) bool {
	return len(s) == scriptLen && isAlphabetic(s)
}

// IsRegion reports whether s has the shape of a region subtag.
func IsRegion(s string) bool {
	return (len(s) == regionAlphaLen && isAlphabetic(s)) ||
		(len(s) == regionNumericLen && isNumeric(s))
}

// IsVariant reports whether s has the shape of a variant subtag: 5 to 8
// alphanumerics, or a digit followed by 3 alphanumerics.
func IsVariant(s string) bool {
	if len(s) > maxSubtagLen || !isAlphanumeric(s) {
		return false
	}
	return len(s) >= minVariantLenAlpha || (len(s) == minVariantLenDigit && isDigit(s[0]))
}

// IsSingleton reports whether s is an extension singleton. The private-use
// singleton "x" is not an extension singleton.
func IsSingleton(s string) bool {
	return len(s) == 1 && isAlphanum(s[0]) && s != "x" && s != "X"
}

// IsExtensionSubtag reports whether s can appear after an extension singleton.
func IsExtensionSubtag(s string) bool {
	return len(s) >= minExtensionLen && len(s) <= maxSubtagLen && isAlphanumeric(s)
}

// IsPrivateUseSubtag reports whether s can appear after the "x" singleton.
func IsPrivateUseSubtag(s string) bool {
	return len(s) >= 1 && len(s) <= maxSubtagLen && isAlphanumeric(s)
}

// IsExtensionValue reports whether s is a non-empty "-" joined run of
// extension subtags.
func IsExtensionValue(s string) bool {
	return allParts(s, IsExtensionSubtag)
}

// IsPrivateUseValue reports whether s is a non-empty "-" joined run of
// private-use subtags.
func IsPrivateUseValue(s string) bool {
	return allParts(s, IsPrivateUseSubtag)
}

// IsTagShaped reports whether s looks like a whole registered tag: one or more
// "-" joined groups of 1 to 8 alphanumerics.
func IsTagShaped(s string) bool {
	return allParts(s, IsPrivateUseSubtag)
}

func allParts(s string, pred func(string) bool) bool {
	if s == "" {
		return false
	}
	for part := range strings.SplitSeq(s, "-") {
		if !pred(part) {
			return false
		}
	}
	return true
}

// IsWellFormed reports whether raw has the lexical shape required for kind.
func IsWellFormed(kind Kind, raw string) bool {
	switch kind {
	case KindLanguage:
		return IsLanguage(raw)
	case KindExtlang:
		return IsExtlang(raw)
	case KindScript:
		return IsScript(raw)
	case KindRegion:
		return IsRegion(raw)
	case KindVariant:
		return IsVariant(raw)
	case KindSingleton:
		return IsSingleton(raw)
	case KindExtension:
		return IsExtensionValue(raw)
	case KindPrivateUse:
		return IsPrivateUseValue(raw)
	case KindGrandfathered, KindRedundant:
		return IsTagShaped(raw)
	default:
		return false
	}
}
