// Package sizes validates and normalizes requested icon edge lengths.
package sizes

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSizeSet is returned when the requested size list is empty
// or contains an edge length outside the supported set.
var ErrInvalidSizeSet = errors.New("invalid size set")

// Supported lists the icon edge lengths the encoder can produce,
// ascending. 256 is the largest the directory entry can describe.
var Supported = []int{16, 32, 48, 256}

var supported = map[int]bool{16: true, 32: true, 48: true, 256: true}

// IsSupported reports whether n is a producible edge length.
func IsSupported(n int) bool {
	return supported[n]
}

// Normalize validates the requested edge lengths and returns them
// deduplicated and sorted ascending. Input order and duplicates never
// affect the result, so downstream output is deterministic.
func Normalize(requested []int) ([]int, error) {
	if len(requested) == 0 {
		return nil, fmt.Errorf("%w: no sizes requested", ErrInvalidSizeSet)
	}

	seen := map[int]bool{}
	var result []int
	for _, n := range requested {
		if !supported[n] {
			return nil, fmt.Errorf("%w: unsupported size %d (supported: %v)",
				ErrInvalidSizeSet, n, Supported)
		}
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}

	sort.Ints(result)
	return result, nil
}
