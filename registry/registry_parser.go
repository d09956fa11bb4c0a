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

package registry

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxRangeSize bounds the number of values a single "start..end" range may
// expand to. The largest range of the IANA registry, qaa..qtz, has 520.
const maxRangeSize = 40000

// rangeSeparator separates the bounds of a private-use range.
const rangeSeparator = ".."

var errBadRange = errors.New("invalid range")

// fields is one record of a record-jar file. Names are folded to lower case
// and each name maps to the bodies of its occurrences in file order.
type fields map[string][]string

func (f fields) first(name string) string {
	if v := f[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// recordJar reads the records of a record-jar stream (RFC 5646, Section
// 3.1.1). Records are separated by "%%" lines and a line starting with
// whitespace continues the body of the previous field.
type recordJar struct {
	scanner *bufio.Scanner
	line    int
	eof     bool
}

func newRecordJar(r io.Reader) *recordJar {
	return &recordJar{scanner: bufio.NewScanner(r)}
}

// next returns the following record, which is empty for blank records, or
// io.EOF once the stream is exhausted.
func (j *recordJar) next() (fields, error) {
	if j.eof {
		return nil, io.EOF
	}
	record := make(fields)
	last := ""
	for j.scanner.Scan() {
		j.line++
		line := j.scanner.Text()
		switch {
		case line == "%%":
			return record, nil
		case strings.TrimSpace(line) == "":
		case line[0] == ' ' || line[0] == '\t':
			if bodies := record[last]; len(bodies) > 0 {
				bodies[len(bodies)-1] += " " + strings.TrimSpace(line)
			}
		default:
			name, body, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("line %d: missing ':' in field %q", j.line, line)
			}
			last = strings.ToLower(strings.TrimSpace(name))
			record[last] = append(record[last], strings.TrimSpace(body))
		}
	}
	if err := j.scanner.Err(); err != nil {
		return nil, err
	}
	j.eof = true
	return record, nil
}

// ParseRegistry reads an IANA registry file in record-jar format and returns
// the populated Registry. Ranges such as "qaa..qtz" are expanded.
func ParseRegistry(r io.Reader) (*Registry, error) {
	return ParseRegistries(r)
}

// ParseExtensionRegistry reads the Language Tag Extensions Registry (RFC 5646,
// Section 3.7) on its own. Each extension is also registered as an
// "extension" subtag record.
func ParseExtensionRegistry(r io.Reader) (*Registry, error) {
	return ParseRegistries(r)
}

// ParseRegistries merges several record-jar files, typically the Language
// Subtag Registry followed by the Language Tag Extensions Registry, into one
// Registry. The File-Date of the first file that declares one is kept.
func ParseRegistries(readers ...io.Reader) (*Registry, error) {
	registry := New()
	for _, r := range readers {
		if err := registry.readRecordJar(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (r *Registry) readRecordJar(rd io.Reader) error {
	jar := newRecordJar(rd)
	for header := true; ; header = false {
		record, err := jar.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read registry: %w", err)
		}
		if date := record.first("file-date"); header && date != "" {
			if r.FileDate == "" {
				r.FileDate = date
			}
			continue
		}
		if err := r.addFields(record); err != nil {
			return fmt.Errorf("record ending at line %d: %w", jar.line, err)
		}
	}
}

// addFields stores a record of either registry. Records with neither a Type
// nor an Identifier field are ignored.
func (r *Registry) addFields(f fields) error {
	if _, ok := f["identifier"]; ok {
		r.addExtension(ExtensionRecord{
			Identifier:   f.first("identifier"),
			Description:  f["description"],
			Comments:     f["comments"],
			Added:        f.first("added"),
			RFC:          f.first("rfc"),
			Authority:    f.first("authority"),
			ContactEmail: f.first("contact_email"),
			MailingList:  f.first("mailing_list"),
			URL:          f.first("url"),
		})
		return nil
	}
	if _, ok := f["type"]; !ok {
		return nil
	}
	return r.addRecord(Record{
		Type:           f.first("type"),
		Subtag:         f.first("subtag"),
		Tag:            f.first("tag"),
		Description:    f["description"],
		Added:          f.first("added"),
		Deprecated:     f.first("deprecated"),
		PreferredValue: f.first("preferred-value"),
		Prefix:         f["prefix"],
		SuppressScript: f.first("suppress-script"),
		Macrolanguage:  f.first("macrolanguage"),
		Scope:          f.first("scope"),
		Comments:       f["comments"],
	})
}

// addExtension stores an extension registration and mirrors it as an
// "extension" subtag record so singletons resolve like any other subtag.
func (r *Registry) addExtension(ext ExtensionRecord) {
	if ext.Identifier == "" {
		return
	}
	key := strings.ToLower(ext.Identifier)
	r.Extensions[key] = ext
	r.Records[recordKey("extension", key)] = Record{
		Type:        "extension",
		Subtag:      ext.Identifier,
		Description: ext.Description,
		Added:       ext.Added,
		Comments:    ext.Comments,
	}
}

// addRecord stores rec under its type and value, once per value when the
// value is a range.
func (r *Registry) addRecord(rec Record) error {
	value := rec.Value()
	if value == "" {
		return nil
	}
	if !strings.Contains(value, rangeSeparator) {
		r.Records[recordKey(rec.Type, value)] = rec
		return nil
	}

	values, err := expandRange(value)
	if err != nil {
		return err
	}
	for _, v := range values {
		expanded := rec
		if rec.Subtag != "" {
			expanded.Subtag = v
		} else {
			expanded.Tag = v
		}
		r.Records[recordKey(rec.Type, v)] = expanded
	}
	return nil
}

// expandRange lists the values of a range such as "qaa..qtz" or "QM..QZ".
// Both bounds have the same length and every position holds a digit in both
// bounds or a letter in both bounds; positions count like an odometer within
// their class. The letter case of the start bound is kept.
func expandRange(rng string) ([]string, error) {
	start, end, ok := strings.Cut(rng, rangeSeparator)
	if !ok || start == "" || len(start) != len(end) {
		return nil, fmt.Errorf("%w %q: bounds must be non-empty and of equal length", errBadRange, rng)
	}
	lo := []byte(strings.ToLower(start))
	hi := []byte(strings.ToLower(end))
	for i := range lo {
		if rangeClass(lo[i]) == 0 || rangeClass(lo[i]) != rangeClass(hi[i]) {
			return nil, fmt.Errorf("%w %q: bounds do not have the same shape", errBadRange, rng)
		}
	}
	if bytes.Compare(lo, hi) > 0 {
		return nil, fmt.Errorf("%w %q: start is after end", errBadRange, rng)
	}

	var values []string
	for {
		values = append(values, withCaseOf(start, lo))
		if bytes.Equal(lo, hi) {
			return values, nil
		}
		if len(values) >= maxRangeSize {
			return nil, fmt.Errorf("%w %q: more than %d values", errBadRange, rng, maxRangeSize)
		}
		increment(lo)
	}
}

// rangeClass returns the first value of the class of b, or 0 for bytes that
// cannot appear in a range.
func rangeClass(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return '0'
	case b >= 'a' && b <= 'z':
		return 'a'
	default:
		return 0
	}
}

// increment adds one to v, carrying into the previous position when a digit
// passes '9' or a letter passes 'z'.
func increment(v []byte) {
	for i := len(v) - 1; i >= 0; i-- {
		last := byte('z')
		if rangeClass(v[i]) == '0' {
			last = '9'
		}
		if v[i] < last {
			v[i]++
			return
		}
		v[i] = rangeClass(v[i])
	}
}

// withCaseOf copies the letter case of pattern onto the lowercase value.
func withCaseOf(pattern string, value []byte) string {
	out := make([]byte, len(value))
	for i, b := range value {
		if pattern[i] >= 'A' && pattern[i] <= 'Z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return string(out)
}
