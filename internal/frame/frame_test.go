package frame

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		width, height int
	}{
		{name: "single cell", text: "#", width: 1, height: 1},
		{name: "trailing newline", text: "ab\ncd\n", width: 2, height: 2},
		{name: "ragged rows", text: " .\n.'.\n|", width: 3, height: 3},
		{name: "crlf", text: "abc\r\nde\r\n", width: 3, height: 2},
		{name: "multibyte", text: "█▀\n▄", width: 2, height: 2},
		{name: "longest row is not lexically largest", text: "zz\naaaa", width: 4, height: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse(tc.name, tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.width, f.Width())
			assert.Equal(t, tc.height, f.Height())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n"} {
		_, err := Parse("blank", text)
		assert.True(t, errors.Is(err, ErrEmptyFrame), "text %q", text)
	}
}

func TestEachSkipsTransparent(t *testing.T) {
	f := MustParse("box", "a b\n c")

	type cell struct {
		row, col int
		symbol   rune
	}
	var got []cell
	f.Each(func(row, col int, symbol rune) bool {
		got = append(got, cell{row, col, symbol})
		return true
	})

	assert.Equal(t, []cell{{0, 0, 'a'}, {0, 2, 'b'}, {1, 1, 'c'}}, got)
}

func TestEachStops(t *testing.T) {
	f := MustParse("row", "abc")
	calls := 0
	f.Each(func(_, _ int, _ rune) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestString(t *testing.T) {
	f := MustParse("ship", " .\n|o|\n")
	assert.Equal(t, " .\n|o|", f.String())
	assert.Equal(t, "ship", f.Name())
}

func TestLoadSortedByName(t *testing.T) {
	fsys := fstest.MapFS{
		"garbage/b.txt":     {Data: []byte("bb")},
		"garbage/a.txt":     {Data: []byte("a")},
		"garbage/notes.md":  {Data: []byte("ignored")},
		"garbage/sub/c.txt": {Data: []byte("nested")},
	}

	frames, err := Load(fsys, "garbage")
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "a", frames[0].Name())
	assert.Equal(t, "b", frames[1].Name())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := Load(fstest.MapFS{}, "rocket")
		assert.Error(t, err)
	})

	t.Run("no frames", func(t *testing.T) {
		fsys := fstest.MapFS{"rocket/readme": {Data: []byte("x")}}
		_, err := Load(fsys, "rocket")
		assert.ErrorIs(t, err, ErrNoFrames)
	})

	t.Run("malformed frame", func(t *testing.T) {
		fsys := fstest.MapFS{"rocket/empty.txt": {Data: []byte("\n")}}
		_, err := Load(fsys, "rocket")
		assert.ErrorIs(t, err, ErrEmptyFrame)
	})
}

func TestLoadSet(t *testing.T) {
	fsys := fstest.MapFS{
		"rocket/1.txt":  {Data: []byte("^")},
		"garbage/1.txt": {Data: []byte("#")},
	}

	set, err := LoadSet(fsys)
	require.NoError(t, err)
	assert.Len(t, set.Rocket, 1)
	assert.Len(t, set.Garbage, 1)

	_, err = LoadSet(fstest.MapFS{"rocket/1.txt": {Data: []byte("^")}})
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)
	assert.Len(t, set.Rocket, 2)
	assert.Len(t, set.Garbage, 6)
	for _, f := range append(set.Rocket, set.Garbage...) {
		assert.Positive(t, f.Width(), f.Name())
		assert.Positive(t, f.Height(), f.Name())
	}
}
