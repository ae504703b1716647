// Package encoder serializes square icon rasters into the two payload
// formats the container supports: a raw 32-bit DIB for small sizes and
// PNG for the largest.
package encoder

import (
	"errors"
	"fmt"
	"image"

	"github.com/AnyUserName/icoforge-cli/internal/sizes"
)

// ErrUnsupportedSize is returned when an encoder is selected for an
// edge length outside the supported set. Unreachable when input goes
// through sizes.Normalize first.
var ErrUnsupportedSize = errors.New("unsupported icon size")

// pngThreshold is the edge length at which payloads switch from raw
// DIB to PNG. 256px stored uncompressed costs ~256KB per icon; PNG is
// the established convention for that entry.
const pngThreshold = 256

// Encoder encodes one square icon raster into payload bytes.
type Encoder interface {
	// Format returns the payload format name ("dib" or "png").
	Format() string

	// Encode serializes img, which must be edge×edge pixels.
	Encode(img *image.NRGBA) ([]byte, error)
}

// ForSize selects the payload encoder for the given edge length:
// PNG at 256, raw DIB below.
func ForSize(edge int) (Encoder, error) {
	if !sizes.IsSupported(edge) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, edge)
	}
	if edge >= pngThreshold {
		return &PNGEncoder{}, nil
	}
	return &DIBEncoder{}, nil
}
