package label

import (
	"strconv"
	"strings"
)

// quirk is behaviour that only one catalogue scheme has. The re-encoder
// consults it between resolving the target form and writing the director.
type quirk interface {
	// redirect may replace the form the value is converted for. The
	// director keeps the layout of the original target form.
	redirect(from Director, bitCount int, to int) int
	// convert maps the director value from from.Form to the to form.
	convert(from Director, to int) (uint64, error)
}

// quirks is keyed by catalogue name. Schemes built with NewScheme only get a
// name when they are identical to a catalogue entry.
var quirks = map[string]quirk{
	"v358": v358SelfRoute{},
}

func quirkFor(s Scheme) quirk {
	if q, ok := quirks[s.name]; ok {
		return q
	}
	return noQuirk{}
}

type noQuirk struct{}

func (noQuirk) redirect(_ Director, _ int, to int) int { return to }

func (noQuirk) convert(from Director, _ int) (uint64, error) { return from.Value, nil }

// v358SelfRoute handles the legacy v358 form 0, where value 0 is the self
// route and interface n is stored as n+1.
type v358SelfRoute struct{}

// Raw director patterns that are converted as if they were going to form 1,
// so they skip the n+1 offset even when written in form 0. These have to
// agree bit for bit with independently implemented switches.
const (
	v358Reserved5 = "00111"
	v358Reserved8 = "00000111"
)

func (v358SelfRoute) redirect(from Director, bitCount int, to int) int {
	raw := rawBits(from.Value, bitCount)
	// 7 looks like it fits form 0, but 7+1 does not.
	if (to == 0 && raw == v358Reserved5) || raw == v358Reserved8 {
		return 1
	}
	return to
}

func (v358SelfRoute) convert(from Director, to int) (uint64, error) {
	n := from.Value
	if from.Form != 0 && to != 0 {
		return n, nil
	}
	if from.Form == 0 {
		if n == 0 {
			return 0, ErrSelfRoute
		}
		n--
	}
	if to == 0 {
		n++
	}
	return n, nil
}

// rawBits renders v as exactly width binary digits.
func rawBits(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
