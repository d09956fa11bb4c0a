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
	"golang.org/x/text/language"

	"github.com/jplu/bcp47/subtag"
)

// RegionHierarchy relates region subtags through UN M.49 containment, e.g.
// "419" (Latin America and the Caribbean) contains "AR".
type RegionHierarchy interface {
	// Contains reports whether macro groups region. A region contains itself.
	Contains(macro, region subtag.Region) bool
}

// cldrContains answers containment questions from the CLDR territory
// containment data compiled into golang.org/x/text/language. Codes x/text
// does not know are contained by nothing.
func cldrContains(macro, region subtag.Region) bool {
	m, err := language.ParseRegion(string(macro))
	if err != nil {
		return false
	}
	r, err := language.ParseRegion(string(region))
	if err != nil {
		return false
	}
	return m.Contains(r)
}

// HierarchyFunc adapts a plain function to the RegionHierarchy interface.
type HierarchyFunc func(macro, region subtag.Region) bool

// Contains calls f(macro, region).
func (f HierarchyFunc) Contains(macro, region subtag.Region) bool {
	return f(macro, region)
}
