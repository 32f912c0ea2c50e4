package label

import (
	"fmt"
	"strings"
)

// Form is one director layout of a scheme. A director in this form occupies
// BitCount bits of value followed by PrefixLen bits equal to the low
// PrefixLen bits of Prefix.
type Form struct {
	BitCount  int
	Prefix    uint64
	PrefixLen int
}

// Width is the total number of label bits a director in this form uses.
func (f Form) Width() int {
	return f.BitCount + f.PrefixLen
}

func (f Form) prefixBits() uint64 {
	return f.Prefix & lowMask(f.PrefixLen)
}

// matches reports whether the trailing bits of l carry this form's prefix.
func (f Form) matches(l Label) bool {
	return uint64(l)&lowMask(f.PrefixLen) == f.prefixBits()
}

// Scheme is an ordered, immutable list of forms.
type Scheme struct {
	name  string
	forms []Form
}

// The scheme catalogue.
var (
	F4 = Scheme{name: "f4", forms: []Form{
		{BitCount: 4, Prefix: 0, PrefixLen: 0},
	}}
	F8 = Scheme{name: "f8", forms: []Form{
		{BitCount: 8, Prefix: 0, PrefixLen: 0},
	}}
	V48 = Scheme{name: "v48", forms: []Form{
		{BitCount: 4, Prefix: 0x01, PrefixLen: 1},
		{BitCount: 8, Prefix: 0x00, PrefixLen: 1},
	}}
	V358 = Scheme{name: "v358", forms: []Form{
		{BitCount: 3, Prefix: 0x01, PrefixLen: 1},
		{BitCount: 5, Prefix: 0x02, PrefixLen: 2},
		{BitCount: 8, Prefix: 0x00, PrefixLen: 2},
	}}
	V37 = Scheme{name: "v37", forms: []Form{
		{BitCount: 3, Prefix: 0x01, PrefixLen: 1},
		{BitCount: 7, Prefix: 0x00, PrefixLen: 1},
	}}
)

// Schemes returns the catalogue in a stable order.
func Schemes() []Scheme {
	return []Scheme{F4, F8, V48, V358, V37}
}

// SchemeByName returns the catalogue scheme with the given name.
func SchemeByName(name string) (Scheme, error) {
	for _, s := range Schemes() {
		if s.name == name {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// NewScheme builds a scheme from forms. If the forms are identical to a
// catalogue scheme the result carries that scheme's name, and with it any
// behaviour specific to that scheme.
func NewScheme(forms ...Form) Scheme {
	s := Scheme{forms: append([]Form(nil), forms...)}
	for _, c := range Schemes() {
		if c.Equal(s) {
			s.name = c.name
			break
		}
	}
	return s
}

// Name is the catalogue name, or "" for a scheme not in the catalogue.
func (s Scheme) Name() string { return s.name }

// Len is the number of forms.
func (s Scheme) Len() int { return len(s.forms) }

// Form returns form i. The caller must ensure 0 <= i < Len().
func (s Scheme) Form(i int) Form { return s.forms[i] }

// Forms returns a copy of the forms.
func (s Scheme) Forms() []Form {
	return append([]Form(nil), s.forms...)
}

// Equal reports whether both schemes have the same forms in the same order.
func (s Scheme) Equal(o Scheme) bool {
	if len(s.forms) != len(o.forms) {
		return false
	}
	for i := range s.forms {
		if s.forms[i] != o.forms[i] {
			return false
		}
	}
	return true
}

func (s Scheme) String() string {
	if s.name != "" {
		return s.name
	}
	parts := make([]string, 0, len(s.forms))
	for _, f := range s.forms {
		parts = append(parts, fmt.Sprintf("{bitCount:%d prefix:%02x prefixLen:%d}", f.BitCount, f.Prefix, f.PrefixLen))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// GetEncodingForm returns the index of the first form whose prefix matches
// the trailing bits of l, or FormNotFound.
func GetEncodingForm(l Label, s Scheme) int {
	for i, f := range s.forms {
		if f.matches(l) {
			return i
		}
	}
	return FormNotFound
}

// GetEncodingFormString is GetEncodingForm for the textual form.
func GetEncodingFormString(label string, s Scheme) (int, error) {
	l, err := ParseLabel(label)
	if err != nil {
		return FormNotFound, err
	}
	return GetEncodingForm(l, s), nil
}
