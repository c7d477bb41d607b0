package classifier

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreprocess_ShapeAndScale(t *testing.T) {
	data := encodePNG(t, 40, 30, color.RGBA{R: 255, G: 0, B: 51, A: 255})

	out, err := Preprocess(data)
	require.NoError(t, err)
	require.Len(t, out, InputSize*InputSize*InputChannels)

	assert.InDelta(t, 1.0, out[0], 1e-6)
	assert.InDelta(t, 0.0, out[1], 1e-6)
	assert.InDelta(t, 0.2, out[2], 1e-6)

	last := len(out) - InputChannels
	assert.InDelta(t, 1.0, out[last], 1e-6)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestPreprocess_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 500))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	out, err := Preprocess(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, out, InputSize*InputSize*InputChannels)
}

func TestPreprocess_InvalidImage(t *testing.T) {
	_, err := Preprocess([]byte("not an image"))
	assert.Error(t, err)
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		name    string
		in      []float32
		want    int
		wantErr bool
	}{
		{name: "first", in: []float32{0.9, 0.05, 0.05}, want: 0},
		{name: "last", in: []float32{0.1, 0.1, 0.1, 0.1, 0.6}, want: 4},
		{name: "tie takes lowest", in: []float32{0.2, 0.4, 0.4}, want: 1},
		{name: "empty", in: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArgMax(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
