package label

import "fmt"

// splicePair returns the route "take goHere, then from there take viaHere".
//
// The payloads of both labels (the bits below their markers) are
// concatenated, goHere's above viaHere's, under a single new marker. When the
// result needs MaxSpliceBits or more significant bits ErrorLabel is returned.
func splicePair(goHere, viaHere Label) Label {
	goPayload, goLen := payload(uint64(goHere))
	viaPayload, viaLen := payload(uint64(viaHere))

	if goLen+viaLen+1 >= MaxSpliceBits {
		return ErrorLabel
	}
	return Label(uint64(1)<<(goLen+viaLen) | goPayload<<viaLen | viaPayload)
}

// SpliceLabels left folds splicePair over labels. At least two are required
// and none may be the all zero label, which has no marker.
func SpliceLabels(labels ...Label) (Label, error) {
	if len(labels) < 2 {
		return 0, fmt.Errorf("%w: splice needs at least 2 labels, got %d", ErrArgument, len(labels))
	}
	for i, l := range labels {
		if l == 0 {
			return 0, fmt.Errorf("%w: label %d has no marker bit", ErrFormat, i)
		}
	}
	result := labels[0]
	for _, l := range labels[1:] {
		result = splicePair(result, l)
	}
	return result, nil
}

// SpliceBits splices bit vectors. splice(a, b, c) is splice(splice(a, b), c).
func SpliceBits(vectors ...Bits) (Bits, error) {
	labels := make([]Label, len(vectors))
	for i, v := range vectors {
		labels[i] = v.Label()
	}
	l, err := SpliceLabels(labels...)
	if err != nil {
		return Bits{}, err
	}
	return l.Bits(), nil
}

// Splice splices labels given in textual form.
func Splice(labels ...string) (string, error) {
	parsed, err := parseAll(labels)
	if err != nil {
		return "", err
	}
	l, err := SpliceLabels(parsed...)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}

func parseAll(labels []string) ([]Label, error) {
	parsed := make([]Label, len(labels))
	for i, s := range labels {
		l, err := ParseLabel(s)
		if err != nil {
			return nil, err
		}
		parsed[i] = l
	}
	return parsed, nil
}
