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

import "github.com/jplu/bcp47/subtag"

// Table gives typed access to the registrations of one subtag kind. K is the
// string type of that kind, so a Table[subtag.Script] can only ever hand out
// scripts.
type Table[K ~string] struct {
	reg  *Registry
	kind subtag.Kind
}

// Kind returns the subtag kind served by the table.
func (t Table[K]) Kind() subtag.Kind { return t.kind }

// TryGet returns the registration of raw, whatever its case.
func (t Table[K]) TryGet(raw string) (Record, bool) {
	return t.reg.Lookup(t.kind, raw)
}

// IsWellFormed reports whether raw has the shape of the table's kind. It does
// not require raw to be registered.
func (t Table[K]) IsWellFormed(raw string) bool {
	return subtag.IsWellFormed(t.kind, raw)
}

// IsCanonical reports whether raw is well-formed and already in canonical case.
func (t Table[K]) IsCanonical(raw string) bool {
	return t.IsWellFormed(raw) && subtag.IsCanonical(t.kind, raw)
}

// ToCanonical returns the canonical spelling of a well-formed raw value.
func (t Table[K]) ToCanonical(raw string) (K, error) {
	if !t.IsWellFormed(raw) {
		return "", t.fail(raw, ErrMalformed)
	}
	return K(subtag.Fold(t.kind, raw)), nil
}

// ToValidCanonical returns the canonical spelling of raw, which must also be
// registered.
func (t Table[K]) ToValidCanonical(raw string) (K, error) {
	canonical, err := t.ToCanonical(raw)
	if err != nil {
		return "", err
	}
	if _, ok := t.TryGet(raw); !ok {
		return "", t.fail(raw, ErrNotRegistered)
	}
	return canonical, nil
}

// VerifyIsWellFormed returns raw unchanged if it is well-formed.
func (t Table[K]) VerifyIsWellFormed(raw string) (K, error) {
	if !t.IsWellFormed(raw) {
		return "", t.fail(raw, ErrMalformed)
	}
	return K(raw), nil
}

// VerifyIsValid returns raw unchanged if it is well-formed and registered.
func (t Table[K]) VerifyIsValid(raw string) (K, error) {
	if _, err := t.VerifyIsWellFormed(raw); err != nil {
		return "", err
	}
	if _, ok := t.TryGet(raw); !ok {
		return "", t.fail(raw, ErrNotRegistered)
	}
	return K(raw), nil
}

// VerifyIsCanonical returns raw unchanged if it is well-formed and already in
// canonical case.
func (t Table[K]) VerifyIsCanonical(raw string) (K, error) {
	if _, err := t.VerifyIsWellFormed(raw); err != nil {
		return "", err
	}
	if !subtag.IsCanonical(t.kind, raw) {
		return "", t.fail(raw, ErrNotCanonical)
	}
	return K(raw), nil
}

func (t Table[K]) fail(raw string, err error) error {
	return &LookupError{Kind: t.kind, Value: raw, Err: err}
}
