package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// PNGEncoder encodes the payload as PNG using Go's standard library.
// Used for the 256px entry, where a raw DIB would be ~256KB.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string { return "png" }

func (e *PNGEncoder) Encode(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
