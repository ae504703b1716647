// Package compose produces square icon canvases from arbitrary rasters.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrCompositionFailed is returned when the resampler collaborator
// could not produce the scaled raster.
var ErrCompositionFailed = errors.New("composition failed")

// Resampler scales a source image to the exact target dimensions.
// Implementations own filter choice and quality; the compositor only
// decides what dimensions to ask for.
type Resampler interface {
	Resample(src image.Image, width, height int) (image.Image, error)
}

// Lanczos resamples with the Lanczos kernel. It is the default
// collaborator for production use.
type Lanczos struct{}

func (Lanczos) Resample(src image.Image, width, height int) (image.Image, error) {
	return imaging.Resize(src, width, height, imaging.Lanczos), nil
}

// ScaledDims returns the dimensions the source should be resampled to
// so that its longer edge equals n, preserving aspect ratio. The short
// edge rounds to nearest and is clamped to [1, n].
func ScaledDims(srcW, srcH, n int) (int, int) {
	if srcW == srcH {
		return n, n
	}
	if srcW > srcH {
		h := (srcH*n + srcW/2) / srcW
		return n, clamp(h, 1, n)
	}
	w := (srcW*n + srcH/2) / srcH
	return clamp(w, 1, n), n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Square scales src so its longer edge equals n and centers the result
// on an n×n fully transparent canvas. Centering offsets use floor
// division, so odd remainders bias toward the top-left.
func Square(src image.Image, n int, r Resampler) (*image.NRGBA, error) {
	bounds := src.Bounds()
	sw, sh := ScaledDims(bounds.Dx(), bounds.Dy(), n)

	scaled, err := r.Resample(src, sw, sh)
	if err != nil {
		return nil, fmt.Errorf("%w: resample to %dx%d: %v", ErrCompositionFailed, sw, sh, err)
	}
	got := scaled.Bounds()
	if got.Dx() != sw || got.Dy() != sh {
		return nil, fmt.Errorf("%w: resampler returned %dx%d, want %dx%d",
			ErrCompositionFailed, got.Dx(), got.Dy(), sw, sh)
	}

	if sw == n && sh == n {
		return imaging.Clone(scaled), nil
	}

	canvas := imaging.New(n, n, color.NRGBA{})
	return imaging.Paste(canvas, scaled, image.Pt((n-sw)/2, (n-sh)/2)), nil
}
