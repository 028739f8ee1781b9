package info

import "strings"

// Reference describes a borrowed view of Target. Lifetime is an identifier
// for the borrow's scope; the empty string is the anonymous lifetime.
type Reference struct {
	Lifetime string
	Target   Descriptor
	Mutable  bool
}

func (Reference) Kind() Kind            { return KindReference }
func (r Reference) Pointee() Descriptor { return r.Target }
func (r Reference) String() string {
	var b strings.Builder
	b.WriteByte('&')
	if r.Lifetime != "" {
		b.WriteByte('\'')
		b.WriteString(r.Lifetime)
		b.WriteByte(' ')
	}
	if r.Mutable {
		b.WriteString("mut ")
	}
	b.WriteString(describeString(r.Target))
	return b.String()
}
func (Reference) descriptor() {}
func (Reference) pointer()    {}

// ConstPointer describes a raw pointer that is not used to mutate its target.
type ConstPointer struct {
	Target Descriptor
}

func (ConstPointer) Kind() Kind            { return KindConstPointer }
func (p ConstPointer) Pointee() Descriptor { return p.Target }
func (p ConstPointer) String() string      { return "*const " + describeString(p.Target) }
func (ConstPointer) descriptor()           {}
func (ConstPointer) pointer()              {}

// MutPointer describes a raw pointer through which the target may be mutated.
type MutPointer struct {
	Target Descriptor
}

func (MutPointer) Kind() Kind            { return KindMutPointer }
func (p MutPointer) Pointee() Descriptor { return p.Target }
func (p MutPointer) String() string      { return "*mut " + describeString(p.Target) }
func (MutPointer) descriptor()           {}
func (MutPointer) pointer()              {}
