package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/sheikhrachel/glife/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	black = Color{0, 0, 0}
	red   = Color{255, 0, 0}
)

func TestLookupColor(t *testing.T) {
	c, err := LookupColor("  Dark_Green ")
	require.NoError(t, err)
	assert.Equal(t, Color{0, 100, 0}, c)

	_, err = LookupColor("ultraviolet")
	assert.True(t, errors.Is(err, ErrUnknownColor))
}

func TestColorNamesSorted(t *testing.T) {
	names := ColorNames()
	assert.Len(t, names, len(Palette))
	assert.IsIncreasing(t, names)
}

func TestCanvasBlockScaling(t *testing.T) {
	c := NewCanvas(2, 1, 2)
	c.Clear(black)
	c.Set(1, 0, red)

	assert.Equal(t, 4, c.PixelWidth())
	assert.Equal(t, 2, c.PixelHeight())
	assert.Equal(t, red, c.At(1, 0))
	assert.Equal(t, black, c.At(0, 0))

	// both scaled rows carry the red block in columns 2-3
	want := []uint8{
		0, 0, 0, 0, 0, 0, 255, 0, 0, 255, 0, 0,
		0, 0, 0, 0, 0, 0, 255, 0, 0, 255, 0, 0,
	}
	assert.Equal(t, want, c.Pixels())
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1, 1)
	c.Set(5, 5, red)
	c.Set(-1, 0, red)
	assert.Equal(t, black, c.At(0, 0))
	assert.Equal(t, Color{}, c.At(3, 3))
}

func TestStylePaint(t *testing.T) {
	b, err := model.NewBoard(2, 3, []model.Cell{{Row: 1, Col: 2}})
	require.NoError(t, err)

	c := &Canvas{}
	Style{Background: black, Alive: red, BlockSize: 1}.Paint(c, b)

	assert.Equal(t, 3, c.PixelWidth())
	assert.Equal(t, 2, c.PixelHeight())
	assert.Equal(t, red, c.At(2, 1))
	assert.Equal(t, black, c.At(1, 0))
}

func TestEncodePPM(t *testing.T) {
	c := NewCanvas(2, 1, 1)
	c.Clear(Color{1, 2, 3})
	c.Set(1, 0, Color{255, 128, 0})

	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, c))
	assert.Equal(t, "P3\n2 1\n255\n1 2 3\n255 128 0\n", buf.String())
}

func TestWritePPMCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	c := NewCanvas(1, 1, 1)

	require.NoError(t, WritePPM(dir, FrameName(7), c))

	data, err := os.ReadFile(filepath.Join(dir, "gen_7.ppm"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n1 1\n255\n"))
}

func TestBufferPoolReuse(t *testing.T) {
	p := NewBufferPool()
	c := p.Get(4, 4, 2)
	assert.Len(t, c.Pixels(), 8*8*3)
	p.Put(c)

	c = p.Get(1, 1, 1)
	assert.Len(t, c.Pixels(), 3)
}

func TestFrameWriterWritesEveryGeneration(t *testing.T) {
	dir := t.TempDir()
	b, err := model.NewBoard(3, 3, []model.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}})
	require.NoError(t, err)

	w := NewFrameWriter(context.Background(), dir, Style{Background: black, Alive: red, BlockSize: 2}, zap.NewNop())
	for gen := 1; gen <= 4; gen++ {
		require.NoError(t, w.Observe(gen, b))
		b = b.Advance()
	}
	require.NoError(t, w.Close())

	assert.EqualValues(t, 4, w.Written())
	for gen := 1; gen <= 4; gen++ {
		assert.FileExists(t, filepath.Join(dir, FrameName(gen)))
	}
}

func TestFrameWriterReportsFailure(t *testing.T) {
	// a regular file where the output directory should be
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	b, err := model.NewBoard(1, 1, nil)
	require.NoError(t, err)

	w := NewFrameWriter(context.Background(), blocker, Style{BlockSize: 1}, nil)
	_ = w.Observe(1, b)
	assert.Error(t, w.Close())
	assert.Zero(t, w.Written())
}
