// seehuhn.de/go/psgen - a library for writing images as PostScript forms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package flavor

// Equal reports whether a and b describe the same flavor.
// Flavors are compared by name.
func Equal(a, b Flavor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name() == b.Name()
}

// ParentOf returns the parent of f, or nil if f is not a refinement.
func ParentOf(f Flavor) Flavor {
	if r, ok := f.(Refinement); ok {
		return r.Parent()
	}
	return nil
}

// Ancestors returns the chain of parents of f, starting with the direct
// parent.
func Ancestors(f Flavor) []Flavor {
	var res []Flavor
	for p := ParentOf(f); p != nil; p = ParentOf(p) {
		res = append(res, p)
	}
	return res
}

// IsParentOf reports whether a is a direct or indirect parent of b.
func IsParentOf(a, b Flavor) bool {
	for _, p := range Ancestors(b) {
		if Equal(a, p) {
			return true
		}
	}
	return false
}

// IsCompatible reports whether an image in flavor have can be used where
// flavor want is requested.  This is the case if the two flavors are
// equal, or if want is one of the parents of have.
func IsCompatible(have, want Flavor) bool {
	return Equal(have, want) || IsParentOf(want, have)
}

// Negotiate chooses a flavor which a producer supporting the flavors in
// supported can deliver to a consumer asking for the flavors in wanted.
// The entries of wanted are tried in order of preference.  For each entry,
// an exact match is preferred over a refinement.
//
// The returned flavor is taken from supported.  If no flavor fits, the
// second return value is false.
func Negotiate(supported, wanted []Flavor) (Flavor, bool) {
	for _, w := range wanted {
		for _, s := range supported {
			if Equal(s, w) {
				return s, true
			}
		}
		for _, s := range supported {
			if IsCompatible(s, w) {
				return s, true
			}
		}
	}
	return nil, false
}
