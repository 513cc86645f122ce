package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/datauri"
)

// testImage renders a small gradient so JPEG encoding has something to chew on.
func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompress_DownscalesLongerSide(t *testing.T) {
	src := testImage(t, 1600, 1200)

	got, err := Compress(bytes.NewReader(src), 800, 0.8)
	require.NoError(t, err)

	assert.LessOrEqual(t, got.Width, 800)
	assert.LessOrEqual(t, got.Height, 800)
	// Aspect ratio of 4:3 survives rounding.
	assert.Equal(t, 800, got.Width)
	assert.Equal(t, 600, got.Height)
	assert.True(t, strings.HasPrefix(got.DataURI, "data:image/jpeg;base64,"))
}

func TestCompress_NeverUpscales(t *testing.T) {
	src := testImage(t, 100, 60)

	got, err := Compress(bytes.NewReader(src), 800, 0.8)
	require.NoError(t, err)

	assert.Equal(t, 100, got.Width)
	assert.Equal(t, 60, got.Height)
}

func TestCompress_OutputDecodesBack(t *testing.T) {
	src := testImage(t, 640, 480)

	got, err := Compress(bytes.NewReader(src), 320, 0.7)
	require.NoError(t, err)

	mediaType, raw, err := datauri.Decode(got.DataURI)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mediaType)
	assert.Equal(t, int64(len(raw)), got.Size)

	img, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestCompress_NotAnImage(t *testing.T) {
	_, err := Compress(strings.NewReader("definitely not pixels"), 800, 0.8)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDecode)
}

func TestCompress_ParameterValidation(t *testing.T) {
	src := testImage(t, 10, 10)

	_, err := Compress(bytes.NewReader(src), 0, 0.8)
	assert.Error(t, err)

	_, err = Compress(bytes.NewReader(src), 800, 0)
	assert.Error(t, err)

	_, err = Compress(bytes.NewReader(src), 800, 1.5)
	assert.Error(t, err)
}
