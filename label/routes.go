package label

import "fmt"

// IsOneHopLabel reports whether nothing but the marker sits above the lowest
// director of l.
func IsOneHopLabel(l Label, s Scheme) (bool, error) {
	n := GetEncodingForm(l, s)
	if n < 0 {
		return false, fmt.Errorf("%w: %s in scheme %s", ErrDecode, l, s)
	}
	// The director's own bits and the marker slot above them are allowed.
	return uint64(l)>>(s.forms[n].Width()+1) == 0, nil
}

// IsOneHop is IsOneHopLabel for the textual form.
func IsOneHop(label string, s Scheme) (bool, error) {
	l, err := ParseLabel(label)
	if err != nil {
		return false, err
	}
	return IsOneHopLabel(l, s)
}

// RoutesThroughLabel reports whether dest continues the route of midPath: all
// bits below midPath's marker are equal in both labels. A midPath with no
// marker routes nowhere.
func RoutesThroughLabel(dest, midPath Label) bool {
	n := markerIndex(uint64(midPath))
	if n < 0 {
		return false
	}
	mask := lowMask(n)
	return uint64(dest)&mask == uint64(midPath)&mask
}

// RoutesThrough is RoutesThroughLabel for the textual form.
func RoutesThrough(dest, midPath string) (bool, error) {
	d, err := ParseLabel(dest)
	if err != nil {
		return false, err
	}
	m, err := ParseLabel(midPath)
	if err != nil {
		return false, err
	}
	return RoutesThroughLabel(d, m), nil
}

// UnspliceLabel returns the label dest had as seen from the node midPath away
// from the source: dest with midPath's payload removed from the bottom.
func UnspliceLabel(dest, midPath Label) (Label, error) {
	if !RoutesThroughLabel(dest, midPath) {
		return 0, fmt.Errorf("%w: %s %s", ErrUnspliceImpossible, dest, midPath)
	}
	return dest >> markerIndex(uint64(midPath)), nil
}

// Unsplice is UnspliceLabel for the textual form.
func Unsplice(dest, midPath string) (string, error) {
	d, err := ParseLabel(dest)
	if err != nil {
		return "", err
	}
	m, err := ParseLabel(midPath)
	if err != nil {
		return "", err
	}
	out, err := UnspliceLabel(d, m)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
