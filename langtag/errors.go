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
	"errors"
	"fmt"
	"strings"

	"github.com/jplu/bcp47/registry"
	"github.com/jplu/bcp47/subtag"
)

// Errors that can occur while splitting a tag into its parts.
var (
	ErrNoPrimaryLanguage    = errors.New("a tag must start with a primary language, a grandfathered tag or 'x'")
	ErrTooManyExtlangs      = errors.New("at maximum three extlang subtags are allowed")
	ErrEmptyExtension       = errors.New("if an extension subtag is present, it must not be empty")
	ErrMalformedExtension   = errors.New("malformed extension subtag")
	ErrEmptyPrivateUse      = errors.New("if the 'x' subtag is present, it must not be empty")
	ErrMalformedPrivateUse  = errors.New("malformed private-use subtag")
	ErrUnexpectedSubtag     = errors.New("unexpected subtag")
	ErrUnknownGrandfathered = errors.New("unrecognized grandfathered tag")
)

// Errors reported by the validity transforms. ErrMalformedSubtag and
// ErrNotRegistered are the registry sentinels so that errors.Is matches
// either name.
var (
	ErrMalformedSubtag      = registry.ErrMalformed
	ErrNotRegistered        = registry.ErrNotRegistered
	ErrInvalidShape         = errors.New("must have exactly one of a primary language, a grandfathered tag or private use")
	ErrMultipleExtlangs     = errors.New("is a second extlang, at maximum one extlang is allowed")
	ErrDuplicateVariant     = errors.New("appears more than once as a variant")
	ErrDuplicateSingleton   = errors.New("appears more than once as an extension singleton")
	ErrInvalidExtlangPrefix = errors.New("has an invalid extlang prefix")
	ErrInvalidVariantPrefix = errors.New("has an invalid variant prefix")
	ErrNoRegistry           = errors.New("no registry configured")
)

// Errors reported by the preferred normalization.
var (
	ErrGrandfatheredChain = errors.New("preferred value is itself a grandfathered tag")
	ErrPreferredLoop      = errors.New("preferred values do not settle")
)

// ParseError reports a tag that does not follow the RFC 5646 grammar.
type ParseError struct {
	Tag    string
	Subtag string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Subtag == "" {
		return fmt.Sprintf("cannot parse %q: %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("cannot parse %q at %q: %v", e.Tag, e.Subtag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidityError reports a tag that does not reach the Tier it was checked
// against. Kind and Subtag name the offending subtag when there is one.
type ValidityError struct {
	Tag    string
	Tier   TagValidity
	Kind   subtag.Kind
	Subtag string
	Err    error
}

func (e *ValidityError) Error() string {
	if e.Kind == subtag.KindUnknown {
		return fmt.Sprintf("%q is not %s: %v", e.Tag, e.Tier, e.Err)
	}
	return fmt.Sprintf("%q is not %s: %s %q %v", e.Tag, e.Tier, e.Kind, e.Subtag, e.Err)
}

func (e *ValidityError) Unwrap() error { return e.Err }

// PrefixError reports an extlang or variant whose registered prefixes do not
// include the subtags that precede it in the tag.
type PrefixError struct {
	Tag     string
	Kind    subtag.Kind
	Subtag  string
	Prefix  string
	Allowed []string
	Err     error
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("%q is not %s: %s %q %v %q (allowed: %s)",
		e.Tag, ValidityStrictlyValid, e.Kind, e.Subtag, e.Err, e.Prefix, strings.Join(e.Allowed, ", "))
}

func (e *PrefixError) Unwrap() error { return e.Err }

// NormalizationError reports a registry whose preferred values cannot be
// applied to a tag.
type NormalizationError struct {
	Tag         string
	Replacement string
	Err         error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize %q through %q: %v", e.Tag, e.Replacement, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

// validityFailure turns a registry lookup failure into a ValidityError.
func validityFailure(parts TagParts, tier TagValidity, err error) error {
	var lookup *registry.LookupError
	if errors.As(err, &lookup) {
		return &ValidityError{Tag: parts.String(), Tier: tier, Kind: lookup.Kind, Subtag: lookup.Value, Err: lookup.Err}
	}
	return &ValidityError{Tag: parts.String(), Tier: tier, Err: err}
}
