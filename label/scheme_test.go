package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEncodingForm(t *testing.T) {
	tests := []struct {
		name   string
		label  Label
		scheme Scheme
		want   int
	}{
		{"f4 anything", 0x13, F4, 0},
		{"f8 anything", 0x3fe, F8, 0},
		{"v48 low bit set", 0x27, V48, 0},
		{"v48 low bit clear", 0x206, V48, 1},
		{"v358 ..1", 0x13, V358, 0},
		{"v358 ..10", 0x82, V358, 1},
		{"v358 ..00", 0x400, V358, 2},
		{"v37 ..1", 0x13, V37, 0},
		{"v37 ..0", 0x100, V37, 1},
		{"no match", 0x10, NewScheme(Form{BitCount: 4, Prefix: 0x01, PrefixLen: 2}), FormNotFound},
		{"empty scheme", 0x13, NewScheme(), FormNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetEncodingForm(tt.label, tt.scheme))
			assert.Equal(t, tt.want, GetEncodingForm(tt.label.Bits().Label(), tt.scheme))
		})
	}
}

func TestGetEncodingFormString(t *testing.T) {
	got, err := GetEncodingFormString("0000.0000.0000.0082", V358)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = GetEncodingFormString("bad", V358)
	require.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, FormNotFound, got)
}

func TestSchemeCatalogue(t *testing.T) {
	names := []string{}
	for _, s := range Schemes() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"f4", "f8", "v48", "v358", "v37"}, names)

	s, err := SchemeByName("v358")
	require.NoError(t, err)
	assert.True(t, s.Equal(V358))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Form{BitCount: 5, Prefix: 0x02, PrefixLen: 2}, s.Form(1))
	assert.Equal(t, 7, s.Form(1).Width())

	_, err = SchemeByName("v9")
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestNewSchemeNaming(t *testing.T) {
	same := NewScheme(V358.Forms()...)
	assert.Equal(t, "v358", same.Name())

	custom := NewScheme(Form{BitCount: 4, Prefix: 0x01, PrefixLen: 2})
	assert.Equal(t, "", custom.Name())
	assert.Equal(t, "[{bitCount:4 prefix:01 prefixLen:2}]", custom.String())
	assert.False(t, custom.Equal(V358))
}

func TestSchemeFormsIsACopy(t *testing.T) {
	forms := V48.Forms()
	forms[0].BitCount = 99
	assert.Equal(t, 4, V48.Form(0).BitCount)

	in := []Form{{BitCount: 4}}
	s := NewScheme(in...)
	in[0].BitCount = 99
	assert.Equal(t, 4, s.Form(0).BitCount)
}
