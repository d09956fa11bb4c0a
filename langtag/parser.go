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

	"github.com/jplu/bcp47/registry"
	"github.com/jplu/bcp47/subtag"
)

// maxExtlangPrimaryLen is the longest primary language that may be followed
// by extlang subtags.
const maxExtlangPrimaryLen = 3

// parseRun holds the state of a single Parse call. Subtags are consumed
// left to right by a fixed sequence of stages, each taking the subtags it
// recognizes and leaving the rest to the next one.
type parseRun struct {
	registry *registry.Registry
	tag      string
	subtags  []string
	next     int
	parts    TagParts
}

// Parse splits tag into its parts following the RFC 5646 grammar. Subtags
// keep the case they were written with.
//
// Whole tags registered as grandfathered in reg (e.g. "i-klingon" or
// "art-lojban") are recognized as a unit. reg may be nil, in which case no
// grandfathered tag is recognized and any tag starting with "i-" fails.
func Parse(tag string, reg *registry.Registry) (TagParts, error) {
	run := newParseRun(tag, reg)
	if err := run.parse(); err != nil {
		return TagParts{}, err
	}
	return run.parts, nil
}

func newParseRun(tag string, reg *registry.Registry) *parseRun {
	return &parseRun{
		registry: reg,
		tag:      tag,
		subtags:  strings.Split(tag, "-"),
	}
}

func (r *parseRun) parse() error {
	stages := []func() error{
		r.parseGrandfathered,
		r.parsePrimaryLanguage,
		r.parseExtlangs,
		r.parseScript,
		r.parseRegion,
		r.parseVariants,
		r.parseExtensions,
		r.parsePrivateUse,
		r.checkEnd,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return err
		}
	}
	return nil
}

// peek returns the next unconsumed subtag.
func (r *parseRun) peek() (string, bool) {
	if r.next >= len(r.subtags) {
		return "", false
	}
	return r.subtags[r.next], true
}

// take consumes the next subtag if it satisfies pred.
func (r *parseRun) take(pred func(string) bool) (string, bool) {
	s, ok := r.peek()
	if !ok || !pred(s) {
		return "", false
	}
	r.next++
	return s, true
}

func (r *parseRun) fail(s string, err error) error {
	return &ParseError{Tag: r.tag, Subtag: s, Err: err}
}

func (r *parseRun) done() bool {
	return r.next >= len(r.subtags)
}

func isPrivateUsePrefix(s string) bool {
	return subtag.Singleton(s).IsPrivateUse()
}

func (r *parseRun) parseGrandfathered() error {
	if _, ok := r.registry.Grandfathered().TryGet(r.tag); ok {
		r.parts.Grandfathered = subtag.Grandfathered(r.tag)
		r.next = len(r.subtags)
		return nil
	}
	if first, _ := r.peek(); strings.EqualFold(first, subtag.GrandfatheredPrefix) {
		return r.fail(r.tag, ErrUnknownGrandfathered)
	}
	return nil
}

func (r *parseRun) parsePrimaryLanguage() error {
	s, ok := r.peek()
	if !ok || isPrivateUsePrefix(s) {
		return nil
	}
	if !subtag.IsLanguage(s) {
		return r.fail(s, ErrNoPrimaryLanguage)
	}
	r.parts.PrimaryLanguage = subtag.Language(s)
	r.next++
	return nil
}

// parseExtlangs accepts extlangs only after a 2 or 3 letter primary language.
func (r *parseRun) parseExtlangs() error {
	if len(r.parts.PrimaryLanguage) == 0 || len(r.parts.PrimaryLanguage) > maxExtlangPrimaryLen {
		return nil
	}
	for {
		s, ok := r.take(subtag.IsExtlang)
		if !ok {
			return nil
		}
		if len(r.parts.Extlangs) == subtag.MaxExtlangs {
			return r.fail(s, ErrTooManyExtlangs)
		}
		r.parts.Extlangs = append(r.parts.Extlangs, subtag.Extlang(s))
	}
}

func (r *parseRun) parseScript() error {
	if r.parts.PrimaryLanguage == "" {
		return nil
	}
	if s, ok := r.take(subtag.IsScript); ok {
		r.parts.Script = subtag.Script(s)
	}
	return nil
}

func (r *parseRun) parseRegion() error {
	if r.parts.PrimaryLanguage == "" {
		return nil
	}
	if s, ok := r.take(subtag.IsRegion); ok {
		r.parts.Region = subtag.Region(s)
	}
	return nil
}

func (r *parseRun) parseVariants() error {
	if r.parts.PrimaryLanguage == "" {
		return nil
	}
	for {
		s, ok := r.take(subtag.IsVariant)
		if !ok {
			return nil
		}
		r.parts.Variants = append(r.parts.Variants, subtag.Variant(s))
	}
}

func (r *parseRun) parseExtensions() error {
	if r.parts.PrimaryLanguage == "" {
		return nil
	}
	for {
		singleton, ok := r.take(subtag.IsSingleton)
		if !ok {
			return nil
		}
		values, err := r.collect(singleton, isSequenceStart, subtag.IsExtensionSubtag, ErrEmptyExtension, ErrMalformedExtension)
		if err != nil {
			return err
		}
		r.parts.Extensions = append(r.parts.Extensions, Extension{
			Singleton: subtag.Singleton(singleton),
			Value:     subtag.ExtensionValue(strings.Join(values, "-")),
		})
	}
}

func (r *parseRun) parsePrivateUse() error {
	for {
		prefix, ok := r.take(isPrivateUsePrefix)
		if !ok {
			return nil
		}
		values, err := r.collect(prefix, isPrivateUsePrefix, subtag.IsPrivateUseSubtag, ErrEmptyPrivateUse, ErrMalformedPrivateUse)
		if err != nil {
			return err
		}
		r.parts.PrivateUse = append(r.parts.PrivateUse, subtag.PrivateUse(strings.Join(values, "-")))
	}
}

// isSequenceStart reports whether s opens a new extension or private-use
// sequence.
func isSequenceStart(s string) bool {
	return subtag.IsSingleton(s) || isPrivateUsePrefix(s)
}

// collect consumes the subtags of an extension or private-use sequence up to
// the first subtag satisfying stop. Every consumed subtag must satisfy pred.
func (r *parseRun) collect(introducer string, stop, pred func(string) bool, errEmpty, errMalformed error) ([]string, error) {
	var values []string
	for {
		s, ok := r.peek()
		if !ok || stop(s) {
			break
		}
		if !pred(s) {
			return nil, r.fail(s, errMalformed)
		}
		values = append(values, s)
		r.next++
	}
	if len(values) == 0 {
		return nil, r.fail(introducer, errEmpty)
	}
	return values, nil
}

func (r *parseRun) checkEnd() error {
	if r.done() {
		if r.parts.PrimaryLanguage == "" && r.parts.Grandfathered == "" && len(r.parts.PrivateUse) == 0 {
			return r.fail("", ErrNoPrimaryLanguage)
		}
		return nil
	}
	s, _ := r.peek()
	return r.fail(s, ErrUnexpectedSubtag)
}
