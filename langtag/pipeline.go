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
	"fmt"

	"github.com/jplu/bcp47/registry"
)

// transform is one step of the tag pipeline: a validity check or a
// normalization, with the level its output is known to reach.
type transform struct {
	validity      TagValidity
	normalization TagNormalization
	apply         func(TagParts, *registry.Registry) (TagParts, error)
}

//nolint:gochecknoglobals // The transforms are immutable and shared by every chain.
var (
	wellFormedStep    = transform{validity: ValidityWellFormed, apply: WellFormed}
	validStep         = transform{validity: ValidityValid, apply: Valid}
	strictlyValidStep = transform{validity: ValidityStrictlyValid, apply: StrictlyValid}
	canonicalStep     = transform{normalization: NormalizationCanonical, apply: Canonical}
	preferredStep     = transform{normalization: NormalizationPreferred, apply: Preferred}
)

// transformChains lists, for every reachable (validity, normalization) cell,
// the transforms that take freshly parsed parts there. Preferred values are
// only looked up for registered subtags, so the preferred column checks
// validity first even when only well-formedness was asked for.
//
//nolint:gochecknoglobals // Read-only lookup table.
var transformChains = map[TagValidity]map[TagNormalization][]transform{
	ValidityWellFormed: {
		NormalizationNone:      {wellFormedStep},
		NormalizationCanonical: {wellFormedStep, canonicalStep},
		NormalizationPreferred: {validStep, preferredStep},
	},
	ValidityValid: {
		NormalizationNone:      {validStep},
		NormalizationCanonical: {validStep, canonicalStep},
		NormalizationPreferred: {validStep, preferredStep},
	},
	ValidityStrictlyValid: {
		NormalizationNone:      {strictlyValidStep},
		NormalizationCanonical: {strictlyValidStep, canonicalStep},
		NormalizationPreferred: {strictlyValidStep, preferredStep},
	},
}

// pipelineResult is the outcome of running a chain.
type pipelineResult struct {
	parts         TagParts
	validity      TagValidity
	normalization TagNormalization
}

// runPipeline brings parts, already known to be at (knownValidity,
// knownNormalization), to the cell requested by opts. Steps whose level is
// already reached are skipped.
func runPipeline(
	parts TagParts,
	knownValidity TagValidity,
	knownNormalization TagNormalization,
	opts Options,
) (pipelineResult, error) {
	chain, ok := transformChains[opts.Validity][opts.Normalization]
	if !ok {
		return pipelineResult{}, fmt.Errorf("unsupported tag level %s/%s", opts.Validity, opts.Normalization)
	}

	res := pipelineResult{
		parts:         parts,
		validity:      knownValidity.Max(opts.Validity),
		normalization: knownNormalization.Max(opts.Normalization),
	}
	for _, step := range chain {
		if step.validity != ValidityUnknown && knownValidity >= step.validity {
			continue
		}
		if step.normalization != NormalizationUnknown && knownNormalization >= step.normalization {
			continue
		}
		next, err := step.apply(res.parts, opts.Registry)
		if err != nil {
			return pipelineResult{}, err
		}
		res.parts = next
		res.validity = res.validity.Max(step.validity)
		res.normalization = res.normalization.Max(step.normalization)
	}
	return res, nil
}
