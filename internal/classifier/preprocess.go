package classifier

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// InputSize is the edge length of the square model input.
const InputSize = 224

// InputChannels is the number of colour channels of the model input.
const InputChannels = 3

// Preprocess decodes an image and converts it into the model input: a
// 224x224x3 NHWC tensor of float32 values in [0, 1].
func Preprocess(data []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resize.Resize(InputSize, InputSize, img, resize.NearestNeighbor)
	bounds := resized.Bounds()

	out := make([]float32, InputSize*InputSize*InputChannels)
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*InputSize + x) * InputChannels
			out[i] = float32(r>>8) / 255
			out[i+1] = float32(g>>8) / 255
			out[i+2] = float32(b>>8) / 255
		}
	}
	return out, nil
}

// ArgMax returns the index of the greatest value. Ties resolve to the lowest index.
func ArgMax(v []float32) (int, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("empty probability vector")
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best, nil
}
