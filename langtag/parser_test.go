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
	"errors"
	"reflect"
	"testing"

	"github.com/jplu/bcp47/subtag"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    TagParts
		wantErr error
	}{
		{
			name: "language and region",
			tag:  "en-US",
			want: TagParts{PrimaryLanguage: "en", Region: "US"},
		},
		{
			name: "case is kept",
			tag:  "EN-latn-us",
			want: TagParts{PrimaryLanguage: "EN", Script: "latn", Region: "us"},
		},
		{
			name: "extensions",
			tag:  "en-US-u-en-US-t-MT",
			want: TagParts{
				PrimaryLanguage: "en",
				Region:          "US",
				Extensions: []Extension{
					{Singleton: "u", Value: "en-US"},
					{Singleton: "t", Value: "MT"},
				},
			},
		},
		{
			name: "every field",
			tag:  "zh-cmn-Hans-CN-pinyin-a-bcd-x-private-1",
			want: TagParts{
				PrimaryLanguage: "zh",
				Extlangs:        []subtag.Extlang{"cmn"},
				Script:          "Hans",
				Region:          "CN",
				Variants:        []subtag.Variant{"pinyin"},
				Extensions:      []Extension{{Singleton: "a", Value: "bcd"}},
				PrivateUse:      []subtag.PrivateUse{"private-1"},
			},
		},
		{
			name: "numeric region and digit variant",
			tag:  "de-419-1996",
			want: TagParts{PrimaryLanguage: "de", Region: "419", Variants: []subtag.Variant{"1996"}},
		},
		{
			name: "three extlangs are accepted by the grammar",
			tag:  "zh-cmn-yue-hak",
			want: TagParts{PrimaryLanguage: "zh", Extlangs: []subtag.Extlang{"cmn", "yue", "hak"}},
		},
		{
			name: "no extlang after a long language",
			tag:  "abcd-efg",
			wantErr: ErrUnexpectedSubtag,
		},
		{
			name: "duplicate variants are left to validation",
			tag:  "sl-rozaj-rozaj",
			want: TagParts{PrimaryLanguage: "sl", Variants: []subtag.Variant{"rozaj", "rozaj"}},
		},
		{
			name: "private use only",
			tag:  "x-foo-bar",
			want: TagParts{PrivateUse: []subtag.PrivateUse{"foo-bar"}},
		},
		{
			name: "singletons inside private use",
			tag:  "en-x-a-b",
			want: TagParts{PrimaryLanguage: "en", PrivateUse: []subtag.PrivateUse{"a-b"}},
		},
		{
			name: "registered grandfathered tag",
			tag:  "i-klingon",
			want: TagParts{Grandfathered: "i-klingon"},
		},
		{
			name: "regular grandfathered tag",
			tag:  "Art-Lojban",
			want: TagParts{Grandfathered: "Art-Lojban"},
		},
		{
			name:    "unknown irregular tag",
			tag:     "i-foobar",
			wantErr: ErrUnknownGrandfathered,
		},
		{
			name:    "empty tag",
			tag:     "",
			wantErr: ErrNoPrimaryLanguage,
		},
		{
			name:    "language too long",
			tag:     "abcdefghi",
			wantErr: ErrNoPrimaryLanguage,
		},
		{
			name:    "numeric language",
			tag:     "12-US",
			wantErr: ErrNoPrimaryLanguage,
		},
		{
			name:    "four extlangs",
			tag:     "zh-cmn-yue-hak-nan",
			wantErr: ErrTooManyExtlangs,
		},
		{
			name:    "empty extension",
			tag:     "en-u",
			wantErr: ErrEmptyExtension,
		},
		{
			name:    "extension followed by a singleton",
			tag:     "en-u-t-MT",
			wantErr: ErrEmptyExtension,
		},
		{
			name:    "malformed extension subtag",
			tag:     "en-u-toolongvalue",
			wantErr: ErrMalformedExtension,
		},
		{
			name:    "empty private use",
			tag:     "en-x",
			wantErr: ErrEmptyPrivateUse,
		},
		{
			name:    "malformed private use subtag",
			tag:     "x-abcdefghi",
			wantErr: ErrMalformedPrivateUse,
		},
		{
			name:    "subtag out of order",
			tag:     "en-US-Latn",
			wantErr: ErrUnexpectedSubtag,
		},
		{
			name:    "trailing hyphen",
			tag:     "en-",
			wantErr: ErrUnexpectedSubtag,
		},
		{
			name:    "forbidden character",
			tag:     "en_US",
			wantErr: ErrNoPrimaryLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tag, testRegistry)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.tag, err, tt.wantErr)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("Parse(%q) error is %T, want *ParseError", tt.tag, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.tag, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParse_WithoutRegistry(t *testing.T) {
	got, err := Parse("art-lojban", nil)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	want := TagParts{PrimaryLanguage: "art", Variants: []subtag.Variant{"lojban"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}

	if _, err := Parse("i-klingon", nil); !errors.Is(err, ErrUnknownGrandfathered) {
		t.Errorf("Parse() error = %v, want %v", err, ErrUnknownGrandfathered)
	}
}

func TestParseError_Error(t *testing.T) {
	_, err := Parse("en-u", testRegistry)
	want := `cannot parse "en-u" at "u": if an extension subtag is present, it must not be empty`
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}

func TestTagParts_String(t *testing.T) {
	tests := []struct {
		name  string
		parts TagParts
		want  string
	}{
		{name: "empty", parts: TagParts{}, want: ""},
		{name: "grandfathered", parts: TagParts{Grandfathered: "i-klingon"}, want: "i-klingon"},
		{name: "private use", parts: TagParts{PrivateUse: []subtag.PrivateUse{"a-b", "c"}}, want: "x-a-b-x-c"},
		{
			name: "full",
			parts: TagParts{
				PrimaryLanguage: "sl",
				Script:          "Latn",
				Region:          "IT",
				Variants:        []subtag.Variant{"rozaj", "biske"},
				Extensions:      []Extension{{Singleton: "u", Value: "co-phonebk"}},
				PrivateUse:      []subtag.PrivateUse{"foo"},
			},
			want: "sl-Latn-IT-rozaj-biske-u-co-phonebk-x-foo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.parts.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagParts_Equal(t *testing.T) {
	a := TagParts{PrimaryLanguage: "en", Variants: []subtag.Variant{"scotland"}}
	b := a.clone()
	if !a.Equal(b) {
		t.Error("Equal() = false for a clone")
	}
	b.Variants[0] = "oxendict"
	if a.Equal(b) {
		t.Error("Equal() = true after changing a variant of the clone")
	}
	if a.Variants[0] != "scotland" {
		t.Error("clone() shares its variants with the original")
	}
	if (TagParts{PrimaryLanguage: "en"}).Equal(TagParts{PrimaryLanguage: "EN"}) {
		t.Error("Equal() should be case sensitive")
	}
}
