package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFit_Downscales(t *testing.T) {
	p := NewProcessor(85, 100)

	out, err := p.Fit(bytes.NewReader(pngOf(t, 400, 200)))
	require.NoError(t, err)
	require.NotNil(t, out)

	w, h, err := Dimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestFit_KeepsSmallImages(t *testing.T) {
	p := NewProcessor(85, 100)

	out, err := p.Fit(bytes.NewReader(pngOf(t, 80, 60)))
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = NewProcessor(85, 0).Fit(bytes.NewReader(pngOf(t, 4000, 10)))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestFit_RejectsGarbage(t *testing.T) {
	_, err := NewProcessor(85, 100).Fit(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestSupports(t *testing.T) {
	p := NewProcessor(0, 100)
	assert.True(t, p.Supports("image/jpeg"))
	assert.True(t, p.Supports("image/png"))
	assert.False(t, p.Supports("image/webp"))
}
