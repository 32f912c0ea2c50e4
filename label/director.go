package label

import "fmt"

// Director is the lowest hop of a label: the form it is written in and its
// raw value.
type Director struct {
	Form  int
	Value uint64
}

// DecodeDirector splits l into its lowest director and the label that remains
// above it. The remainder still carries the marker bit.
func DecodeDirector(l Label, s Scheme) (Director, Label, error) {
	n := GetEncodingForm(l, s)
	if n < 0 {
		return Director{}, 0, fmt.Errorf("%w: %s in scheme %s", ErrDecode, l, s)
	}
	f := s.forms[n]
	d := Director{
		Form:  n,
		Value: (uint64(l) >> f.PrefixLen) & lowMask(f.BitCount),
	}
	return d, Label(uint64(l) >> f.Width()), nil
}

// EncodeDirector writes d below rest, which must be the remainder returned by
// DecodeDirector (or a bare marker, 1, for a one hop label).
//
// A director value that does not fit the form's BitCount, or a result that
// would be longer than MaxLabelBits significant bits, fails with
// ErrTruncation. Nothing is ever silently dropped.
func EncodeDirector(rest Label, d Director, s Scheme) (Label, error) {
	if d.Form < 0 || d.Form >= len(s.forms) {
		return 0, fmt.Errorf("%w: %d in scheme %s", ErrInvalidForm, d.Form, s)
	}
	f := s.forms[d.Form]
	if bitLength(d.Value) > f.BitCount {
		return 0, fmt.Errorf("%w: director %d needs %d bits, form %d has %d",
			ErrTruncation, d.Value, bitLength(d.Value), d.Form, f.BitCount)
	}
	if bitLength(uint64(rest))+f.Width() > MaxLabelBits {
		return 0, fmt.Errorf("%w: label would need %d bits, at most %d allowed",
			ErrTruncation, bitLength(uint64(rest))+f.Width(), MaxLabelBits)
	}
	return Label(uint64(rest)<<f.Width() | d.Value<<f.PrefixLen | f.prefixBits()), nil
}
