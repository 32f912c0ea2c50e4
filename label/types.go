package label

import "errors"

const (
	// LabelBits is the fixed width of a label.
	LabelBits = 64

	// LabelDigits is the number of hex digits in the textual form.
	LabelDigits = LabelBits / 4

	// MaxSpliceBits is the significant length (marker included) at which a
	// splice overflows to ErrorLabel.
	MaxSpliceBits = 60

	// MaxLabelBits is the longest significant length a re-encoded label may
	// have.
	MaxLabelBits = 60
)

// Label is a 64 bit switch label.
type Label uint64

// ErrorLabel is the reserved all ones label. Splicing returns it when the
// combined route does not fit.
const ErrorLabel = ^Label(0)

// Bits is a label as an array of bits, index 0 is the most significant bit.
// Entries are 0 or 1.
type Bits [LabelBits]uint8

const (
	// FormNotFound is returned by GetEncodingForm when no form of the scheme
	// matches the label.
	FormNotFound = -1

	// FormCanonical asks ReEncode for the narrowest form that holds the
	// director without truncation.
	FormCanonical = -5000
)

var (
	ErrFormat             = errors.New("label: malformed label")
	ErrArgument           = errors.New("label: invalid arguments")
	ErrDecode             = errors.New("label: label does not match any form of the scheme")
	ErrNoFittingForm      = errors.New("label: no form of the scheme can hold the director")
	ErrInvalidForm        = errors.New("label: invalid form number")
	ErrSelfRoute          = errors.New("label: cannot re-encode self-route")
	ErrTruncation         = errors.New("label: length cannot be reduced without losing bits")
	ErrUnspliceImpossible = errors.New("label: impossible to unsplice")
	ErrMissingDirector    = errors.New("label: every hop must have labelN")
	ErrReencode           = errors.New("label: failed to reencode")
	ErrUnknownScheme      = errors.New("label: unknown encoding scheme")
)
