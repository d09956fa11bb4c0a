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

//nolint:testpackage // This is a white-box test file for an internal package.
package registry

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/jplu/bcp47/subtag"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRecordJar_Next(t *testing.T) {
	input := strings.Join([]string{
		"File-Date: 2025-08-25",
		"%%",
		"Type: variant",
		"Subtag: 1996",
		"Description: German orthography of 1996",
		"Prefix: de",
		"Prefix: de-AT",
		"Comments: first line",
		"  continued here",
		"",
		"%%",
		"%%",
		"Type: language",
		"Subtag: en",
	}, "\n")
	jar := newRecordJar(strings.NewReader(input))

	want := []fields{
		{"file-date": {"2025-08-25"}},
		{
			"type":        {"variant"},
			"subtag":      {"1996"},
			"description": {"German orthography of 1996"},
			"prefix":      {"de", "de-AT"},
			"comments":    {"first line continued here"},
		},
		{},
		{"type": {"language"}, "subtag": {"en"}},
	}
	for i, w := range want {
		got, err := jar.next()
		if err != nil {
			t.Fatalf("record %d: unexpected error %v", i, err)
		}
		if !reflect.DeepEqual(got, w) {
			t.Errorf("record %d = %v, want %v", i, got, w)
		}
	}
	if _, err := jar.next(); !errors.Is(err, io.EOF) {
		t.Errorf("next() after the last record = %v, want io.EOF", err)
	}
}

func TestRecordJar_Errors(t *testing.T) {
	jar := newRecordJar(strings.NewReader("Type: language\nno colon here\n"))
	if _, err := jar.next(); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("next() error = %v, want a line 2 error", err)
	}

	jar = newRecordJar(failingReader{})
	if _, err := jar.next(); err == nil {
		t.Error("next() should report read errors")
	}
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		rng       string
		wantLen   int
		wantFirst string
		wantLast  string
		wantErr   bool
	}{
		{rng: "qaa..qtz", wantLen: 520, wantFirst: "qaa", wantLast: "qtz"},
		{rng: "Qaaa..Qabx", wantLen: 50, wantFirst: "Qaaa", wantLast: "Qabx"},
		{rng: "QM..QZ", wantLen: 14, wantFirst: "QM", wantLast: "QZ"},
		{rng: "XA..XZ", wantLen: 26, wantFirst: "XA", wantLast: "XZ"},
		{rng: "001..003", wantLen: 3, wantFirst: "001", wantLast: "003"},
		{rng: "a9..b1", wantLen: 3, wantFirst: "a9", wantLast: "b1"},
		{rng: "en..en", wantLen: 1, wantFirst: "en", wantLast: "en"},
		{rng: "qtz..qaa", wantErr: true},
		{rng: "aa..aaa", wantErr: true},
		{rng: "a1..11", wantErr: true},
		{rng: "a-..b-", wantErr: true},
		{rng: "..", wantErr: true},
		{rng: "aaaa..zzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			got, err := expandRange(tt.rng)
			if tt.wantErr {
				if !errors.Is(err, errBadRange) {
					t.Errorf("expandRange(%q) error = %v, want errBadRange", tt.rng, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expandRange(%q) unexpected error: %v", tt.rng, err)
			}
			if len(got) != tt.wantLen || got[0] != tt.wantFirst || got[len(got)-1] != tt.wantLast {
				t.Errorf("expandRange(%q) = %d values %q..%q, want %d values %q..%q",
					tt.rng, len(got), got[0], got[len(got)-1], tt.wantLen, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestRegistry_AddRecord(t *testing.T) {
	r := New()
	records := []Record{
		{Type: "language", Subtag: "qaa..qab", Scope: "private-use"},
		{Type: "grandfathered", Tag: "i-klingon", PreferredValue: "tlh"},
		{Type: "language"},
	}
	for _, rec := range records {
		if err := r.addRecord(rec); err != nil {
			t.Fatalf("addRecord(%+v) unexpected error: %v", rec, err)
		}
	}
	if len(r.Records) != 3 {
		t.Errorf("Records = %v, want 3 entries", r.Records)
	}
	if rec := r.Records["language:qab"]; rec.Subtag != "qab" || rec.Scope != "private-use" {
		t.Errorf("expanded record = %+v", rec)
	}
	if rec := r.Records["grandfathered:i-klingon"]; rec.PreferredValue != "tlh" {
		t.Errorf("grandfathered record = %+v", rec)
	}
	if err := r.addRecord(Record{Type: "region", Subtag: "ZZ..AA"}); !errors.Is(err, errBadRange) {
		t.Errorf("addRecord() with a reversed range error = %v, want errBadRange", err)
	}
}

func TestParseRegistry(t *testing.T) {
	input := `File-Date: 2025-08-25
%%
Type: language
Subtag: in
Description: Indonesian
Added: 2005-10-16
Deprecated: 1989-01-01
Preferred-Value: id
Suppress-Script: Latn
%%
Type: region
Subtag: QM..QO
Description: Private use
Added: 2005-10-16
%%
Type: redundant
Tag: zh-Hans
Description: simplified Chinese
Added: 2005-04-11
%%
Comments: a record without a type is skipped
`
	got, err := ParseRegistry(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseRegistry() unexpected error: %v", err)
	}
	if got.FileDate != "2025-08-25" {
		t.Errorf("FileDate = %q, want 2025-08-25", got.FileDate)
	}
	if len(got.Records) != 5 {
		t.Errorf("got %d records, want 5: %v", len(got.Records), got.Records)
	}
	want := Record{
		Type:           "language",
		Subtag:         "in",
		Description:    []string{"Indonesian"},
		Added:          "2005-10-16",
		Deprecated:     "1989-01-01",
		PreferredValue: "id",
		SuppressScript: "Latn",
	}
	if rec := got.Records["language:in"]; !reflect.DeepEqual(rec, want) {
		t.Errorf("language:in = %+v, want %+v", rec, want)
	}
	if _, ok := got.Records["region:qn"]; !ok {
		t.Error("range QM..QO was not expanded")
	}
	if _, ok := got.Records["redundant:zh-hans"]; !ok {
		t.Error("redundant tag is missing")
	}
}

func TestParseRegistry_Errors(t *testing.T) {
	tests := map[string]io.Reader{
		"read failure": failingReader{},
		"bad range":    strings.NewReader("Type: language\nSubtag: qtz..qaa\n"),
		"bad field":    strings.NewReader("Type: language\nSubtag en\n"),
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseRegistry(r); err == nil {
				t.Error("ParseRegistry() should fail")
			}
		})
	}
}

func TestParseRegistries(t *testing.T) {
	subtags := "File-Date: 2025-08-25\n%%\nType: language\nSubtag: en\nDescription: English\n"
	extensions := `File-Date: 2014-04-02
%%
Identifier: u
Description: Unicode Locale
Comments: CLDR
Added: 2010-09-02
RFC: RFC6067
Authority: Unicode Consortium
Contact_Email: cldr-contact@unicode.org
Mailing_List: cldr-users@unicode.org
URL: http://www.unicode.org/Public/cldr/
`
	got, err := ParseRegistries(strings.NewReader(subtags), strings.NewReader(extensions))
	if err != nil {
		t.Fatalf("ParseRegistries() unexpected error: %v", err)
	}
	if got.FileDate != "2025-08-25" {
		t.Errorf("FileDate = %q, the first file should win", got.FileDate)
	}
	wantExt := ExtensionRecord{
		Identifier:   "u",
		Description:  []string{"Unicode Locale"},
		Comments:     []string{"CLDR"},
		Added:        "2010-09-02",
		RFC:          "RFC6067",
		Authority:    "Unicode Consortium",
		ContactEmail: "cldr-contact@unicode.org",
		MailingList:  "cldr-users@unicode.org",
		URL:          "http://www.unicode.org/Public/cldr/",
	}
	if ext := got.Extensions["u"]; !reflect.DeepEqual(ext, wantExt) {
		t.Errorf("extension u = %+v, want %+v", ext, wantExt)
	}
	if rec, ok := got.Records["extension:u"]; !ok || rec.Subtag != "u" {
		t.Errorf("extension:u record = %+v, %v", rec, ok)
	}
	if _, ok := got.Records["language:en"]; !ok {
		t.Error("language:en is missing")
	}
}

func TestParseExtensionRegistry(t *testing.T) {
	got, err := ParseExtensionRegistry(strings.NewReader("File-Date: 2014-04-02\n%%\nIdentifier: t\nDescription: Transformed Content\n"))
	if err != nil {
		t.Fatalf("ParseExtensionRegistry() unexpected error: %v", err)
	}
	if _, ok := got.Extensions["t"]; !ok {
		t.Error("extension t is missing")
	}
	if _, ok := got.Lookup(subtag.KindSingleton, "T"); !ok {
		t.Error("singleton T does not resolve")
	}
}
