// Package declaration builds the text of a single PHP declaration (class, interface or enum).
package declaration

import (
	"strings"
)

// Access is a PHP visibility modifier.
type Access string

const (
	Private   Access = "private"
	Public    Access = "public"
	Protected Access = "protected"
)

// Kind is the declaration keyword. The zero Kind renders a bare brace block.
type Kind string

const (
	Class     Kind = "class"
	Interface Kind = "interface"
	Enum      Kind = "enum"
)

// Declaration is configured through chained calls and rendered with String.
type Declaration struct {
	name        string
	kind        Kind
	access      Access
	final       bool
	static      bool
	extends     []string
	implements  []string
	annotations []string
	comment     string
	block       string
	nested      []*Declaration
}

// New returns an empty Declaration.
func New() *Declaration {
	return &Declaration{}
}

// WithName sets the declared name.
func (d *Declaration) WithName(name string) *Declaration {
	d.name = name
	return d
}

// AsKind sets the declaration keyword.
func (d *Declaration) AsKind(kind Kind) *Declaration {
	d.kind = kind
	return d
}

// Access sets the visibility modifier.
func (d *Declaration) Access(access Access) *Declaration {
	d.access = access
	return d
}

// Final marks the declaration final.
func (d *Declaration) Final() *Declaration {
	d.final = true
	return d
}

// Static marks the declaration static.
func (d *Declaration) Static() *Declaration {
	d.static = true
	return d
}

// Annotate replaces the annotations. Each one is rendered on its own line prefixed by "@".
func (d *Declaration) Annotate(annotations []string) *Declaration {
	d.annotations = annotations
	return d
}

// WithComment sets the doc comment from a raw description. An empty description emits nothing.
func (d *Declaration) WithComment(description string) *Declaration {
	if description != "" {
		d.comment = Comment(description, 0)
	}
	return d
}

// WithBlock replaces the raw body inserted between the braces.
func (d *Declaration) WithBlock(block string) *Declaration {
	d.block = block
	return d
}

// Extends replaces the parent type names.
func (d *Declaration) Extends(names []string) *Declaration {
	d.extends = names
	return d
}

// Implements replaces the implemented interface names.
func (d *Declaration) Implements(names []string) *Declaration {
	d.implements = names
	return d
}

// Nest appends a child declaration rendered one level deeper, before the block.
func (d *Declaration) Nest(child *Declaration) *Declaration {
	d.nested = append(d.nested, child)
	return d
}

// String renders the declaration. The output always ends with exactly one newline.
func (d *Declaration) String() string {
	var buf strings.Builder

	buf.WriteString(d.comment)
	if d.kind != "" {
		buf.WriteString(d.header())
	}

	parts := []string{"{"}
	if len(d.nested) > 0 {
		nested := make([]string, 0, len(d.nested))
		for _, child := range d.nested {
			nested = append(nested, Indent(strings.TrimSuffix(child.String(), "\n"), 1))
		}
		parts = append(parts, strings.Join(nested, "\n\n"))
	}
	if d.block != "" {
		parts = append(parts, d.block)
	}
	parts = append(parts, "}")

	buf.WriteString(strings.Join(parts, "\n"))
	buf.WriteString("\n")

	return buf.String()
}

// header renders e.g. "public final class Foo : Bar ". extends and implements share the
// " : " separator.
func (d *Declaration) header() string {
	var buf strings.Builder

	for _, annotation := range d.annotations {
		buf.WriteString("@" + annotation + "\n")
	}

	words := make([]string, 0, 5)
	if d.access != "" {
		words = append(words, string(d.access))
	}
	if d.static {
		words = append(words, "static")
	}
	if d.final {
		words = append(words, "final")
	}
	words = append(words, string(d.kind))
	if d.name != "" {
		words = append(words, d.name)
	}
	buf.WriteString(strings.Join(words, " "))

	if len(d.extends) > 0 {
		buf.WriteString(" : " + strings.Join(d.extends, ", "))
	}
	if len(d.implements) > 0 {
		buf.WriteString(" : " + strings.Join(d.implements, ", "))
	}
	buf.WriteString(" ")

	return buf.String()
}
