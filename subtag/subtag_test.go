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

//nolint:testpackage // This is a white-box test file. It needs to be in the same package to test unexported functions.
package subtag

import "testing"

// Test_isAlpha verifies the isAlpha function according to RFC 5646, Section 2.1,
// which defines ALPHA as A-Z / a-z.
func Test_isAlpha(t *testing.T) {
	tests := []struct {
		name     string
		b        byte
		expected bool
	}{
		{name: "lowercase a", b: 'a', expected: true},
		{name: "uppercase Z", b: 'Z', expected: true},
		{name: "digit 0", b: '0', expected: false},
		{name: "hyphen", b: '-', expected: false},
		{name: "backtick before a", b: '`', expected: false},
		{name: "brace after z", b: '{', expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAlpha(tt.b); got != tt.expected {
				t.Errorf("isAlpha('%c') = %v, want %v", tt.b, got, tt.expected)
			}
		})
	}
}

// TestIsWellFormed checks the ABNF shape of every subtag kind.
func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
		want bool
	}{
		{"language 2 letters", KindLanguage, "en", true},
		{"language 3 letters", KindLanguage, "und", true},
		{"language 8 letters", KindLanguage, "abcdefgh", true},
		{"language 1 letter", KindLanguage, "e", false},
		{"language 9 letters", KindLanguage, "abcdefghi", false},
		{"language with digit", KindLanguage, "e1", false},
		{"extlang", KindExtlang, "yue", true},
		{"extlang 2 letters", KindExtlang, "yu", false},
		{"script", KindScript, "Latn", true},
		{"script with digit", KindScript, "Lat1", false},
		{"region alpha", KindRegion, "US", true},
		{"region numeric", KindRegion, "419", true},
		{"region mixed", KindRegion, "4A", false},
		{"region 3 letters", KindRegion, "USA", false},
		{"variant 5 alnum", KindVariant, "rozaj", true},
		{"variant digit first", KindVariant, "1996", true},
		{"variant 4 letters", KindVariant, "abcd", false},
		{"variant 9 chars", KindVariant, "abcdefghi", false},
		{"singleton", KindSingleton, "u", true},
		{"singleton digit", KindSingleton, "1", true},
		{"singleton x", KindSingleton, "x", false},
		{"singleton X", KindSingleton, "X", false},
		{"extension value", KindExtension, "co-phonebk", true},
		{"extension value short subtag", KindExtension, "co-a", false},
		{"extension value empty", KindExtension, "", false},
		{"private use single char", KindPrivateUse, "a-b", true},
		{"private use too long", KindPrivateUse, "abcdefghi", false},
		{"grandfathered", KindGrandfathered, "i-klingon", true},
		{"grandfathered empty group", KindGrandfathered, "i--klingon", false},
		{"unknown kind", KindUnknown, "en", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWellFormed(tt.kind, tt.raw); got != tt.want {
				t.Errorf("IsWellFormed(%v, %q) = %v, want %v", tt.kind, tt.raw, got, tt.want)
			}
		})
	}
}

// TestFold checks the case conventions of RFC 5646 Section 2.1.1.
func TestFold(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
		want string
	}{
		{"language", KindLanguage, "EN", "en"},
		{"extlang", KindExtlang, "YUE", "yue"},
		{"script", KindScript, "hANS", "Hans"},
		{"region", KindRegion, "us", "US"},
		{"numeric region", KindRegion, "419", "419"},
		{"variant", KindVariant, "VALENCIA", "valencia"},
		{"extension", KindExtension, "CO-Phonebk", "co-phonebk"},
		{"grandfathered", KindGrandfathered, "EN-gb-OED", "en-GB-oed"},
		{"redundant with script", KindRedundant, "ZH-hant-tw", "zh-Hant-TW"},
		{"grandfathered irregular", KindGrandfathered, "I-Klingon", "i-klingon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.kind, tt.raw); got != tt.want {
				t.Errorf("Fold(%v, %q) = %q, want %q", tt.kind, tt.raw, got, tt.want)
			}
			if !IsCanonical(tt.kind, tt.want) {
				t.Errorf("IsCanonical(%v, %q) = false, want true", tt.kind, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := KindScript.String(); got != "script" {
		t.Errorf("KindScript.String() = %q, want %q", got, "script")
	}
	if got := Kind(99).String(); got != "unknown" {
		t.Errorf("Kind(99).String() = %q, want %q", got, "unknown")
	}
	if got := KindSingleton.RegistryType(); got != "extension" {
		t.Errorf("KindSingleton.RegistryType() = %q, want %q", got, "extension")
	}
	if got := KindPrivateUse.RegistryType(); got != "" {
		t.Errorf("KindPrivateUse.RegistryType() = %q, want empty", got)
	}
}

func TestWellKnownValues(t *testing.T) {
	if !Language("UND").IsUndetermined() {
		t.Error(`Language("UND").IsUndetermined() = false, want true`)
	}
	if Language("en").IsUndetermined() {
		t.Error(`Language("en").IsUndetermined() = true, want false`)
	}
	if !Region("001").IsGlobal() {
		t.Error(`Region("001").IsGlobal() = false, want true`)
	}
	if !Singleton("X").IsPrivateUse() {
		t.Error(`Singleton("X").IsPrivateUse() = false, want true`)
	}
}
