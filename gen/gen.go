// Package gen derives ordinal mappings for C-like enumeration
// types. Given the declaration of a named integer type and its
// constant block, it validates that the type is eligible for use
// with enumset.Set and emits an implementation of enumset.Mapping
// for it.
//
// Eligibility is deliberately strict: at most 32 members, integer
// kind only, and every member's value assigned positionally by the
// conventional leading iota. Explicit values, gaps and duplicates
// are all rejected so that the ordinal space stays dense and
// gap-free, which the bit-mask representation requires.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
)

// MaxMembers is the hard ceiling on enumeration size, fixed by the
// 32-bit mask width of enumset.Set.
const MaxMembers = 32

// An Enum describes a candidate enumeration type.
type Enum struct {
	// Name is the enumeration type's name.
	Name string

	// Pkg is the name of the package the type is declared in.
	Pkg string

	// Members holds the enumeration's members in declaration
	// order.
	Members []Member
}

// A Member describes one member of a candidate enumeration.
type Member struct {
	// Name is the declared constant name.
	Name string

	// Value is the constant's value when assigned positionally.
	Value uint32

	// Explicit records that the member's value was written out
	// in the source rather than assigned by the leading iota.
	Explicit bool
}

// validate checks the eligibility rules. It returns a descriptive
// error identifying the first rule violated, or nil if the
// enumeration may have a mapping generated for it.
func (e *Enum) validate() error {
	if len(e.Members) > MaxMembers {
		return fmt.Errorf("enumeration %s has %d members; enum sets support at most %d", e.Name, len(e.Members), MaxMembers)
	}
	for i, m := range e.Members {
		if m.Explicit {
			return fmt.Errorf("member %s.%s declares an explicit value; ordinals are assigned by declaration position only", e.Name, m.Name)
		}
		if m.Value != uint32(i) {
			return fmt.Errorf("member %s.%s has value %d but declaration position %d; the ordinal space must be dense and start at 0", e.Name, m.Name, m.Value, i)
		}
	}
	return nil
}

// Source validates the enumeration and returns the generated,
// gofmt-formatted Go source implementing enumset.Mapping for it.
// If the enumeration is ineligible, no source is produced.
func (e *Enum) Source() ([]byte, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by enumgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", e.Pkg)
	fmt.Fprintf(&buf, "// %sMapping converts between %s values and their ordinals.\n", e.Name, e.Name)
	fmt.Fprintf(&buf, "// It implements enumset.Mapping[%s].\n", e.Name)
	fmt.Fprintf(&buf, "type %sMapping struct{}\n\n", e.Name)
	fmt.Fprintf(&buf, "// Ordinal returns the zero-based declaration position of e.\n")
	fmt.Fprintf(&buf, "func (%sMapping) Ordinal(e %s) uint32 {\n", e.Name, e.Name)
	fmt.Fprintf(&buf, "\treturn uint32(e)\n")
	fmt.Fprintf(&buf, "}\n\n")
	fmt.Fprintf(&buf, "// FromOrdinal returns the %s value whose Ordinal is v.\n", e.Name)
	fmt.Fprintf(&buf, "// It panics if v is not the ordinal of any %s value.\n", e.Name)
	fmt.Fprintf(&buf, "func (%sMapping) FromOrdinal(v uint32) %s {\n", e.Name, e.Name)
	fmt.Fprintf(&buf, "\tswitch v {\n")
	for i, m := range e.Members {
		fmt.Fprintf(&buf, "\tcase %d:\n", i)
		fmt.Fprintf(&buf, "\t\treturn %s\n", m.Name)
	}
	fmt.Fprintf(&buf, "\t}\n")
	fmt.Fprintf(&buf, "\tpanic(\"invalid %s ordinal\")\n", e.Name)
	fmt.Fprintf(&buf, "}\n")
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should not happen: the emitted source is fixed shape.
		return nil, fmt.Errorf("formatting generated source for %s: %v", e.Name, err)
	}
	return src, nil
}
