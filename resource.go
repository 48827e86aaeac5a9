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

package psgen

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

// Resource types used in DSC comments.
const (
	TypeForm    = "form"
	TypeProcSet = "procset"
)

// Resource identifies a PostScript resource in DSC comments.
type Resource struct {
	Type string
	Name string

	// Version (optional) is appended to the name, e.g. "1.0 0" for
	// procsets.
	Version string
}

// String returns the resource as used in DSC comments, e.g. "form Logo".
func (r Resource) String() string {
	s := r.Type + " " + DSCText(r.Name)
	if r.Version != "" {
		s += " " + r.Version
	}
	return s
}

func compareResources(a, b Resource) int {
	return cmp.Or(
		cmp.Compare(a.Type, b.Type),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Version, b.Version))
}

// ResourceTracker records which resources are supplied by a PostScript
// file and which resources the file expects to find elsewhere.
type ResourceTracker struct {
	supplied map[Resource]bool
	needed   map[Resource]bool
}

// NewResourceTracker returns an empty resource tracker.
func NewResourceTracker() *ResourceTracker {
	return &ResourceTracker{
		supplied: make(map[Resource]bool),
		needed:   make(map[Resource]bool),
	}
}

// RegisterSupplied records that r is defined in the output.
func (t *ResourceTracker) RegisterSupplied(r Resource) {
	t.supplied[r] = true
	delete(t.needed, r)
}

// RegisterNeeded records that the output uses r.  Resources which are
// supplied by the output are not recorded as needed.
func (t *ResourceTracker) RegisterNeeded(r Resource) {
	if !t.supplied[r] {
		t.needed[r] = true
	}
}

// IsSupplied reports whether r has been registered as supplied.
func (t *ResourceTracker) IsSupplied(r Resource) bool {
	return t.supplied[r]
}

// Supplied returns the supplied resources in sorted order.
func (t *ResourceTracker) Supplied() []Resource {
	res := maps.Keys(t.supplied)
	slices.SortFunc(res, compareResources)
	return res
}

// Needed returns the needed resources in sorted order.
func (t *ResourceTracker) Needed() []Resource {
	res := maps.Keys(t.needed)
	slices.SortFunc(res, compareResources)
	return res
}

// WriteResourceComments writes the %%DocumentNeededResources and
// %%DocumentSuppliedResources comments for the tracked resources.
// Lists with more than one element use "%%+" continuation lines.
func (g *Generator) WriteResourceComments() {
	writeResourceList(g, DSCNeededResource, g.res.Needed())
	writeResourceList(g, DSCSuppliedResource, g.res.Supplied())
}

func writeResourceList(g *Generator, comment string, list []Resource) {
	for i, r := range list {
		if i == 0 {
			g.WriteDSCComment(comment, r)
		} else {
			g.Writeln("%%+ " + r.String())
		}
	}
}
