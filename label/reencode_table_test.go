package label

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdata/v358_reencode.txt holds the re-encoding of every v358 label from
// 0x001 to 0x7ff into forms 0, 1 and 2 and the canonical form, as other
// switch implementations compute it. The legacy v358 handling is easy to get
// subtly wrong, so the whole space is pinned.
func TestReEncodeV358Table(t *testing.T) {
	f, err := os.Open("testdata/v358_reencode.txt")
	require.NoError(t, err)
	defer f.Close()

	forms := []int{0, 1, 2, FormCanonical}
	rows := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		require.Len(t, fields, 1+len(forms), "malformed row %q", line)

		in, err := strconv.ParseUint(fields[0], 16, 64)
		require.NoError(t, err)
		l := Label(in)

		for i, form := range forms {
			got, err := ReEncodeLabel(l, V358, form)
			if fields[i+1] == "-" {
				assert.ErrorIs(t, err, ErrReencode, "%s to form %s", l, formString(form))
				continue
			}
			want, perr := strconv.ParseUint(fields[i+1], 16, 64)
			require.NoError(t, perr)
			if assert.NoError(t, err, "%s to form %s", l, formString(form)) {
				assert.Equal(t, Label(want), got, "%s to form %s", l, formString(form))
			}
		}
		rows++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 0x7ff, rows)
}
