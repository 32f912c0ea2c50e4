package label

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseLabel parses the dotted hex form, for example "0000.0000.0000.0013".
//
// The periods are cosmetic and are all removed before parsing. Exactly 16 hex
// digits must remain.
func ParseLabel(s string) (Label, error) {
	digits := strings.ReplaceAll(s, ".", "")
	if len(digits) != LabelDigits {
		return 0, fmt.Errorf("%w: %q has %d hex digits, want %d", ErrFormat, s, len(digits), LabelDigits)
	}
	var b [LabelBits / 8]byte
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrFormat, s, err)
	}
	return Label(binary.BigEndian.Uint64(b[:])), nil
}

// String returns the canonical dotted hex form: four groups of four lower
// case digits.
func (l Label) String() string {
	var b [LabelBits / 8]byte
	binary.BigEndian.PutUint64(b[:], uint64(l))
	digits := hex.EncodeToString(b[:])
	return digits[0:4] + "." + digits[4:8] + "." + digits[8:12] + "." + digits[12:16]
}

// IsError reports whether l is the reserved ErrorLabel.
func (l Label) IsError() bool {
	return l == ErrorLabel
}

// Bits returns l as a bit vector.
func (l Label) Bits() Bits {
	var b Bits
	for i := range b {
		b[i] = bitAt(uint64(l), i)
	}
	return b
}

// Label packs the bit vector back into a label. Any non zero entry counts as
// a set bit.
func (b Bits) Label() Label {
	var x uint64
	for _, bit := range b {
		x <<= 1
		if bit != 0 {
			x |= 1
		}
	}
	return Label(x)
}

func (b Bits) String() string {
	return b.Label().String()
}

// LabelToBits converts the textual form to a bit vector.
func LabelToBits(s string) (Bits, error) {
	l, err := ParseLabel(s)
	if err != nil {
		return Bits{}, err
	}
	return l.Bits(), nil
}

// BitsToLabel converts a bit vector to the textual form. b is passed by value
// so the caller's vector is never modified.
func BitsToLabel(b Bits) string {
	return b.Label().String()
}
