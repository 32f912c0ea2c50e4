package label

import (
	"fmt"
	"strconv"
)

// ReencodeError is returned for any failure of ReEncode. Err holds the
// underlying cause, so errors.Is works against both ErrReencode and the
// specific sentinel.
type ReencodeError struct {
	Label  string
	Form   int
	Scheme Scheme
	Err    error
}

func (e *ReencodeError) Error() string {
	return fmt.Sprintf("label: failed to reencode %s to form %s in scheme %s: %v",
		e.Label, formString(e.Form), e.Scheme, e.Err)
}

func (e *ReencodeError) Unwrap() error { return e.Err }

func (e *ReencodeError) Is(target error) bool { return target == ErrReencode }

func formString(form int) string {
	if form == FormCanonical {
		return "canonical"
	}
	return strconv.Itoa(form)
}

// ReEncode rewrites the lowest director of label into desiredForm of scheme s.
// desiredForm is a form index or FormCanonical.
func ReEncode(label string, s Scheme, desiredForm int) (string, error) {
	l, err := ParseLabel(label)
	if err != nil {
		return "", &ReencodeError{Label: label, Form: desiredForm, Scheme: s, Err: err}
	}
	out, err := ReEncodeLabel(l, s, desiredForm)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// ReEncodeLabel is ReEncode on a Label.
func ReEncodeLabel(l Label, s Scheme, desiredForm int) (Label, error) {
	out, err := reEncode(l, s, desiredForm)
	if err != nil {
		return 0, &ReencodeError{Label: l.String(), Form: desiredForm, Scheme: s, Err: err}
	}
	return out, nil
}

func reEncode(l Label, s Scheme, desiredForm int) (Label, error) {
	d, rest, err := DecodeDirector(l, s)
	if err != nil {
		return 0, err
	}

	layout, err := resolveForm(s, d.Value, desiredForm)
	if err != nil {
		return 0, err
	}

	// The director is always written in the layout form. A redirect only
	// changes which form the value is converted for.
	q := quirkFor(s)
	to := q.redirect(d, s.forms[d.Form].BitCount, layout)
	value, err := q.convert(d, to)
	if err != nil {
		return 0, err
	}

	return EncodeDirector(rest, Director{Form: layout, Value: value}, s)
}

// resolveForm turns desiredForm into a form index. For FormCanonical it picks
// the form with the smallest BitCount that still holds value, the earliest
// such form on a tie.
func resolveForm(s Scheme, value uint64, desiredForm int) (int, error) {
	if desiredForm != FormCanonical {
		if desiredForm < 0 || desiredForm >= len(s.forms) {
			return 0, fmt.Errorf("%w: %d, scheme %s has %d forms", ErrInvalidForm, desiredForm, s, len(s.forms))
		}
		return desiredForm, nil
	}

	need := bitLength(value)
	best := -1
	for i, f := range s.forms {
		if f.BitCount < need {
			continue
		}
		if best > -1 && f.BitCount >= s.forms[best].BitCount {
			continue
		}
		best = i
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: value needs %d bits", ErrNoFittingForm, need)
	}
	return best, nil
}
