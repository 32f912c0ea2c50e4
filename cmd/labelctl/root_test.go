package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forestrie/go-meshlabel/label"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"splice", []string{"splice", "0000.0000.0000.0015", "0000.0000.0000.0013"}, "0000.0000.0000.0153"},
		{"unsplice", []string{"unsplice", "0000.0000.0000.0153", "0000.0000.0000.0013"}, "0000.0000.0000.0015"},
		{"routes-through", []string{"routes-through", "0000.0000.0000.0153", "0000.0000.0000.0013"}, "true"},
		{"form", []string{"form", "--scheme", "v358", "0000.0000.0000.0082"}, "1"},
		{"one-hop", []string{"one-hop", "--scheme", "v358", "0000.0000.0000.0133"}, "false"},
		{"reencode", []string{"reencode", "--scheme", "v358", "--form", "1", "0000.0000.0000.0013"}, "0000.0000.0000.0082"},
		{"reencode canonical", []string{"reencode", "--scheme", "v48", "0000.0000.0000.0206"}, "0000.0000.0000.0027"},
		{"schemes", []string{"schemes"}, "v358"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"splice one label", []string{"splice", "0000.0000.0000.0015"}, nil},
		{"bad label", []string{"splice", "0000.0000.0000.0015", "zz"}, label.ErrFormat},
		{"unsplice impossible", []string{"unsplice", "0000.0000.0000.0153", "0000.0000.0000.0014"}, label.ErrUnspliceImpossible},
		{"unknown scheme", []string{"form", "--scheme", "v9", "0000.0000.0000.0013"}, label.ErrUnknownScheme},
		{"self route", []string{"reencode", "--form", "1", "0000.0000.0000.0011"}, label.ErrSelfRoute},
		{"bad output", []string{"schemes", "-o", "yaml"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSpliceJSON(t *testing.T) {
	out, err := run(t, "", "splice", "-o", "json", "0000.0000.0000.0015", "0000.0000.0000.0013")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"label": "0000.0000.0000.0153"}, got)
}

const pathsJSON = `[
  {"id": "a", "hops": [
    {"scheme": "f4", "labelN": "0000.0000.0000.0015"},
    {"scheme": "f4", "labelN": "0000.0000.0000.0013"}
  ]},
  {"hops": [
    {"scheme": "v358", "labelN": "0000.0000.0000.0013"},
    {"scheme": "v358", "labelP": "0000.0000.0000.041c", "labelN": "0000.0000.0000.0013"}
  ]}
]`

func TestBuildStdin(t *testing.T) {
	out, err := run(t, pathsJSON, "build", "-o", "json")
	require.NoError(t, err)

	var got []routeJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []routeJSON{
		{ID: "a", Label: "0000.0000.0000.0135", Usable: true, Hops: []string{"0000.0000.0000.0015", "0000.0000.0000.0013"}},
		{ID: "#1", Label: "0000.0000.0000.4003", Usable: true, Hops: []string{"0000.0000.0000.0013", "0000.0000.0000.0400"}},
	}, got)
}

func TestBuildFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, os.WriteFile(file, []byte(pathsJSON), 0o600))

	out, err := run(t, "", "build", "--file", file, "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0000.0000.0000.0135")
	assert.Contains(t, out, "0000.0000.0000.4003")
}

func TestBuildBadInput(t *testing.T) {
	_, err := run(t, "not json", "build")
	require.Error(t, err)

	_, err = run(t, `[{"hops": [{"scheme": "v9", "labelN": "0000.0000.0000.0013"}]}]`, "build")
	require.ErrorIs(t, err, label.ErrUnknownScheme)
}

func TestBuildUnnamedPathIDs(t *testing.T) {
	paths := `[
  {"hops": [{"scheme": "f4", "labelN": "0000.0000.0000.0015"}]},
  {"id": "0", "hops": [{"scheme": "f4", "labelN": "0000.0000.0000.0013"}]}
]`
	out, err := run(t, paths, "build", "-o", "json")
	require.NoError(t, err)

	var got []routeJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "#0", got[0].ID)
	assert.Equal(t, "0", got[1].ID)

	_, err = run(t, `[{"id": "#0", "hops": [{"scheme": "f4", "labelN": "0000.0000.0000.0015"}]}]`, "build")
	require.ErrorContains(t, err, "reserved")
}
