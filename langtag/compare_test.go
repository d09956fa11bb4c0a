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
package langtag

import (
	"testing"

	"github.com/jplu/bcp47/registry"
	"github.com/jplu/bcp47/subtag"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		t1, t2 string
		want   MatchQuality
	}{
		{t1: "es-419", t2: "es-AR", want: QualityMacroRegion},
		{t1: "es-AR", t2: "es-419", want: QualityMacroRegion},
		{t1: "en-US", t2: "en-GB", want: QualitySibling},
		{t1: "en-US", t2: "en-CA", want: QualitySibling},
		{t1: "en-US", t2: "EN-us", want: QualityExact},
		{t1: "en", t2: "en-US", want: QualityNeutralRegion},
		{t1: "en-001", t2: "en-GB", want: QualityNeutralRegion},
		{t1: "en-001", t2: "en", want: QualityExact},
		{t1: "en-Latn", t2: "en", want: QualityExact},
		{t1: "und", t2: "en", want: QualityUndetermined},
		{t1: "zh-Hant", t2: "zh", want: QualityNone},
		{t1: "zh", t2: "zh-Hant", want: QualityNone},
		{t1: "sr-Latn", t2: "sr", want: QualityNone},
		{t1: "und-Latn", t2: "en-Cyrl", want: QualityUndetermined},
		{t1: "sr-Cyrl", t2: "sr-Latn", want: QualityNone},
		{t1: "en", t2: "fr", want: QualityNone},
		{t1: "zh-yue", t2: "zh", want: QualityNone},
		{t1: "de-1901", t2: "de-1996", want: QualityRegion},
		{t1: "de-CH-1901", t2: "de", want: QualityRegion},
		{t1: "en-u-co-phonebk", t2: "en", want: QualityVariant},
		{t1: "en-US-u-co-phonebk", t2: "en-GB", want: QualityVariant},
		{t1: "i-klingon", t2: "I-Klingon", want: QualityExact},
		{t1: "i-klingon", t2: "tlh", want: QualityNone},
		{t1: "x-foo", t2: "X-FOO", want: QualityExact},
		{t1: "x-foo", t2: "en", want: QualityNone},
		{t1: "in", t2: "id", want: QualityNone},
	}
	for _, tt := range tests {
		t.Run(tt.t1+"/"+tt.t2, func(t *testing.T) {
			t1 := mustCreate(t, tt.t1, ValidityValid, NormalizationNone)
			t2 := mustCreate(t, tt.t2, ValidityValid, NormalizationNone)
			if got := Compare(t1, t2); got != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.t1, tt.t2, got, tt.want)
			}
		})
	}
}

func TestComparer_Preferred(t *testing.T) {
	c := Comparer{Normalization: NormalizationPreferred}
	tests := []struct {
		t1, t2 string
		want   MatchQuality
	}{
		{t1: "in", t2: "id", want: QualityExact},
		{t1: "i-klingon", t2: "tlh", want: QualityExact},
		{t1: "zh-cmn-Hans", t2: "cmn-Hans", want: QualityExact},
		{t1: "en-BU", t2: "en-MM", want: QualityExact},
	}
	for _, tt := range tests {
		t.Run(tt.t1+"/"+tt.t2, func(t *testing.T) {
			got, err := c.Compare(
				mustCreate(t, tt.t1, ValidityValid, NormalizationNone),
				mustCreate(t, tt.t2, ValidityValid, NormalizationNone),
			)
			if err != nil {
				t.Fatalf("Compare() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.t1, tt.t2, got, tt.want)
			}
		})
	}

	if _, err := c.Compare(
		mustCreate(t, "abc", ValidityWellFormed, NormalizationNone),
		mustCreate(t, "en", ValidityValid, NormalizationNone),
	); err == nil {
		t.Error("Compare() should fail on a tag that has no preferred form")
	}
}

func TestCompare_Reflexive(t *testing.T) {
	tags := []string{
		"en", "EN-us", "und", "zh-yue-Hant-HK", "sl-rozaj-biske", "en-u-co-phonebk-x-foo",
		"i-default", "x-private", "art-lojban", "es-419",
	}
	for _, tag := range tags {
		lt := mustCreate(t, tag, ValidityValid, NormalizationNone)
		if got := Compare(lt, lt); got != QualityExact {
			t.Errorf("Compare(%q, %q) = %v, want %v", tag, tag, got, QualityExact)
		}
	}
}

func TestCompare_MinRule(t *testing.T) {
	tags := []string{"en", "en-US", "en-GB", "und-US", "es-419", "es-MX", "de-1996", "de-CH-u-co-phonebk", "fr"}
	for _, a := range tags {
		for _, b := range tags {
			t1 := mustCreate(t, a, ValidityValid, NormalizationNone)
			t2 := mustCreate(t, b, ValidityValid, NormalizationNone)
			got := Compare(t1, t2)
			fields := []MatchQuality{
				compareLanguage(t1.parts.PrimaryLanguage, t2.parts.PrimaryLanguage),
				compareExtlangs(t1.parts.Extlangs, t2.parts.Extlangs),
				compareScript(t1, t2),
				compareRegion(t1, t2),
				compareVariants(t1.parts.Variants, t2.parts.Variants),
				compareExtensions(t1.parts.Extensions, t2.parts.Extensions),
			}
			for _, f := range fields {
				if got > f {
					t.Errorf("Compare(%q, %q) = %v is above a field quality %v", a, b, got, f)
				}
			}
			if !t1.IsUndetermined() && !t2.IsUndetermined() && t1.PrimaryLanguage() != t2.PrimaryLanguage() &&
				got != QualityNone {
				t.Errorf("Compare(%q, %q) = %v, want %v for different languages", a, b, got, QualityNone)
			}
		}
	}
}

func TestCompare_CustomHierarchy(t *testing.T) {
	reg := testRegistry.WithHierarchy(registry.HierarchyFunc(func(macro, region subtag.Region) bool {
		return macro == "GB" && region == "US"
	}))
	t1, err := Create("en-GB", Options{Registry: reg})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	t2 := mustCreate(t, "en-US", ValidityValid, NormalizationNone)
	if got := Compare(t1, t2); got != QualityMacroRegion {
		t.Errorf("Compare() = %v, want %v", got, QualityMacroRegion)
	}
}

func TestMatchQuality_Order(t *testing.T) {
	order := []MatchQuality{
		QualityExact, QualityUndetermined, QualityMacroRegion, QualityNeutralRegion,
		QualitySibling, QualityRegion, QualityVariant, QualityNone,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] <= order[i] {
			t.Errorf("%v should rank above %v", order[i-1], order[i])
		}
	}
	if got := Match(
		mustCreate(t, "en", ValidityValid, NormalizationNone),
		mustCreate(t, "en", ValidityValid, NormalizationNone),
	); got != 1 {
		t.Errorf("Match() = %v, want 1", got)
	}
}
