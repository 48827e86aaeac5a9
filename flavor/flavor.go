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

// Package flavor describes the representations an image can be loaded into.
//
// A flavor is identified by its name.  Refinements narrow down a parent
// flavor, for example by MIME type ([NewMIME]), by XML namespace
// ([NewXMLNamespace]), or simply by a more specific name ([NewNamed]).
// A refined flavor can be used wherever one of its ancestors is accepted,
// see [IsCompatible].
//
// All flavors are immutable and can be shared between goroutines.
package flavor

// Flavor identifies a representation of an image.
type Flavor interface {
	// Name returns the name of the flavor.  Two flavors with the same name
	// are considered equal.
	Name() string

	// MIMEType returns the MIME type associated with the flavor,
	// or the empty string if there is none.
	MIMEType() string

	// Namespace returns the XML namespace associated with the flavor,
	// or the empty string if there is none.
	Namespace() string
}

// Refinement is implemented by flavors which narrow down a parent flavor.
type Refinement interface {
	Flavor

	// Parent returns the flavor which is refined.
	Parent() Flavor
}

// The following types implement the Flavor interface:
var (
	_ Flavor     = (*Basic)(nil)
	_ Refinement = (*Named)(nil)
	_ Refinement = (*MIME)(nil)
	_ Refinement = (*XMLNamespace)(nil)
)

// Basic is a flavor without a parent.
type Basic struct {
	name string
}

// New returns a new flavor with the given name.
func New(name string) *Basic {
	return &Basic{name: name}
}

// Name implements the [Flavor] interface.
func (f *Basic) Name() string {
	return f.name
}

// MIMEType returns the empty string.
// This implements the [Flavor] interface.
func (f *Basic) MIMEType() string {
	return ""
}

// Namespace returns the empty string.
// This implements the [Flavor] interface.
func (f *Basic) Namespace() string {
	return ""
}

func (f *Basic) String() string {
	return f.name
}

// refined holds the name and the parent link of a refinement.
// MIME type and namespace are taken from the parent, unless the
// embedding type overrides them.
type refined struct {
	name   string
	parent Flavor
}

func (f *refined) Name() string {
	return f.name
}

func (f *refined) Parent() Flavor {
	return f.parent
}

func (f *refined) MIMEType() string {
	return f.parent.MIMEType()
}

func (f *refined) Namespace() string {
	return f.parent.Namespace()
}

func (f *refined) String() string {
	return f.name
}

// Named refines a parent flavor by giving it a more specific name.
type Named struct {
	refined
}

// NewNamed returns a refinement of parent with the given name.
// The parent must not be nil.
func NewNamed(parent Flavor, name string) *Named {
	return &Named{
		refined: refined{name: name, parent: parent},
	}
}

// MIME refines a parent flavor by a MIME type.
type MIME struct {
	refined
	mimeType string
}

// NewMIME returns a refinement of parent for the given MIME type.
// The name of the new flavor is the MIME type, followed by a semicolon and
// the name of the parent.  The parent must not be nil.
func NewMIME(parent Flavor, mimeType string) *MIME {
	return &MIME{
		refined:  refined{name: mimeType + ";" + parent.Name(), parent: parent},
		mimeType: mimeType,
	}
}

// MIMEType returns the MIME type given to [NewMIME].
// This implements the [Flavor] interface.
func (f *MIME) MIMEType() string {
	return f.mimeType
}

// XMLNamespace refines a parent flavor by restricting it to documents from
// one XML namespace.
type XMLNamespace struct {
	refined
	namespace string
}

// NewXMLNamespace returns a refinement of parent for the XML namespace URI
// ns.  The name of the new flavor is the name of the parent, followed by
// ";namespace=" and ns.
//
// The namespace is not validated: an empty namespace is accepted and
// appears verbatim in the name.  The parent must not be nil.
func NewXMLNamespace(parent Flavor, ns string) *XMLNamespace {
	return &XMLNamespace{
		refined:   refined{name: parent.Name() + ";namespace=" + ns, parent: parent},
		namespace: ns,
	}
}

// Namespace returns the XML namespace URI given to [NewXMLNamespace].
// This implements the [Flavor] interface.
func (f *XMLNamespace) Namespace() string {
	return f.namespace
}
