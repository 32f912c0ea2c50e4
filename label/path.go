package label

import (
	"fmt"
	"slices"
)

// PathHop is one hop of a path, nearest hop first.
//
// LabelN is the hop's own director bearing label under Scheme. LabelP, when
// known, is the label of the same link as seen from the previous hop; only its
// form width is used. Key identifies the node and is carried for the caller.
type PathHop struct {
	LabelP string
	Key    string
	Scheme Scheme
	LabelN string
}

// Path is the result of BuildLabel.
type Path struct {
	// Label is the spliced label for the whole path.
	Label string
	// Hops holds the per hop labels after width normalisation, in hop order.
	Hops []string
}

// BuildLabel builds the label for a path.
//
// Every hop but the last must have LabelN. Where a hop's LabelP uses a wider
// form than its LabelN, LabelN is re-encoded into LabelP's form first, so a
// narrow director is never spliced next to a wide one. The per hop labels are
// then spliced from the farthest hop to the nearest.
func BuildLabel(hops []PathHop) (Path, error) {
	if len(hops) == 0 {
		return Path{}, fmt.Errorf("%w: empty path", ErrArgument)
	}

	path := make([]string, 0, len(hops))
	for i, hop := range hops {
		if hop.LabelN == "" {
			if i < len(hops)-1 {
				return Path{}, fmt.Errorf("%w: hop %d", ErrMissingDirector, i)
			}
			continue
		}
		labelN, err := normalizeHop(hop)
		if err != nil {
			return Path{}, fmt.Errorf("hop %d: %w", i, err)
		}
		path = append(path, labelN)
	}
	if len(path) == 0 {
		return Path{}, fmt.Errorf("%w: no hop has labelN", ErrMissingDirector)
	}

	if len(path) == 1 {
		return Path{Label: path[0], Hops: path}, nil
	}

	reversed := slices.Clone(path)
	slices.Reverse(reversed)
	spliced, err := Splice(reversed...)
	if err != nil {
		return Path{}, err
	}
	return Path{Label: spliced, Hops: path}, nil
}

func normalizeHop(hop PathHop) (string, error) {
	labelN, err := ParseLabel(hop.LabelN)
	if err != nil {
		return "", err
	}
	if hop.LabelP == "" {
		return hop.LabelN, nil
	}
	labelP, err := ParseLabel(hop.LabelP)
	if err != nil {
		return "", err
	}

	formP := GetEncodingForm(labelP, hop.Scheme)
	if formP < 0 {
		return "", fmt.Errorf("%w: labelP %s in scheme %s", ErrDecode, labelP, hop.Scheme)
	}
	formN := GetEncodingForm(labelN, hop.Scheme)
	if formN < 0 {
		return "", fmt.Errorf("%w: labelN %s in scheme %s", ErrDecode, labelN, hop.Scheme)
	}

	if hop.Scheme.forms[formP].Width() <= hop.Scheme.forms[formN].Width() {
		return hop.LabelN, nil
	}
	out, err := ReEncodeLabel(labelN, hop.Scheme, formP)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
