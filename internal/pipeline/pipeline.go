// Package pipeline turns a decoded source image and a requested size
// list into a finished icon container buffer.
package pipeline

import (
	"fmt"
	"image"

	"github.com/AnyUserName/icoforge-cli/internal/compose"
	"github.com/AnyUserName/icoforge-cli/internal/encoder"
	"github.com/AnyUserName/icoforge-cli/internal/ico"
	"github.com/AnyUserName/icoforge-cli/internal/sizes"
)

// Config holds the collaborators and parameters for a conversion.
type Config struct {
	// Sizes are the requested edge lengths, in any order, duplicates
	// allowed. Normalization owns dedup and ordering.
	Sizes []int

	// Resampler scales rasters; nil selects Lanczos.
	Resampler compose.Resampler
}

// Pipeline converts source images to icon containers. The conversion
// is a pure function of (source, sizes): no I/O, no shared state, so
// a Pipeline is safe to reuse across independent sources.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Resampler == nil {
		cfg.Resampler = compose.Lanczos{}
	}
	return &Pipeline{cfg: cfg}
}

// Convert produces the container bytes for src.
func (p *Pipeline) Convert(src image.Image) ([]byte, error) {
	variants, err := p.Variants(src)
	if err != nil {
		return nil, err
	}
	return ico.Encode(variants)
}

// Variants encodes one payload per normalized size, ascending by edge
// length. Each composited raster is scoped to its loop iteration and
// released once its payload is encoded.
func (p *Pipeline) Variants(src image.Image) ([]ico.Variant, error) {
	normalized, err := sizes.Normalize(p.cfg.Sizes)
	if err != nil {
		return nil, err
	}

	variants := make([]ico.Variant, 0, len(normalized))
	for _, n := range normalized {
		enc, err := encoder.ForSize(n)
		if err != nil {
			return nil, err
		}

		canvas, err := compose.Square(src, n, p.cfg.Resampler)
		if err != nil {
			return nil, fmt.Errorf("compose %dpx: %w", n, err)
		}

		data, err := enc.Encode(canvas)
		if err != nil {
			return nil, fmt.Errorf("encode %dpx as %s: %w", n, enc.Format(), err)
		}

		variants = append(variants, ico.Variant{
			Edge:   n,
			Format: enc.Format(),
			Data:   data,
		})
	}
	return variants, nil
}
