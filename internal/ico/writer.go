// Package ico assembles and parses the ICO container: a 6-byte header,
// one 16-byte directory entry per image, then the concatenated
// payloads. All multi-byte fields are little-endian.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headerSize = 6
	entrySize  = 16

	// typeIcon is the container type tag. 2 would mean a cursor
	// container, which this tool never writes.
	typeIcon = 1
)

// ErrEmptyVariantSet is returned when the writer is given no variants.
var ErrEmptyVariantSet = errors.New("empty variant set")

// Variant is one encoded image ready for the container: its edge
// length, payload format name, and payload bytes. Variants must be
// sorted ascending by Edge before writing; the writer preserves order.
type Variant struct {
	Edge   int
	Format string
	Data   []byte
}

// edgeByte encodes an edge length in the one-byte directory field.
// The field cannot hold 256, so the format reserves 0 as its alias.
func edgeByte(edge int) byte {
	if edge >= 256 {
		return 0
	}
	return byte(edge)
}

// Encode writes the full container for the given variants. Payload
// offsets are accumulated so the data section is contiguous: the first
// payload starts right after the directory, each next one right after
// the previous.
func Encode(variants []Variant) ([]byte, error) {
	if len(variants) == 0 {
		return nil, ErrEmptyVariantSet
	}

	total := headerSize + entrySize*len(variants)
	for _, v := range variants {
		total += len(v.Data)
	}
	buf := bytes.NewBuffer(make([]byte, 0, total))

	le := binary.LittleEndian
	binary.Write(buf, le, uint16(0)) // reserved
	binary.Write(buf, le, uint16(typeIcon))
	binary.Write(buf, le, uint16(len(variants)))

	offset := uint32(headerSize + entrySize*len(variants))
	for _, v := range variants {
		buf.WriteByte(edgeByte(v.Edge))
		buf.WriteByte(edgeByte(v.Edge))
		buf.WriteByte(0) // color count: truecolor
		buf.WriteByte(0) // reserved
		binary.Write(buf, le, uint16(1))  // color planes
		binary.Write(buf, le, uint16(32)) // bits per pixel
		binary.Write(buf, le, uint32(len(v.Data)))
		binary.Write(buf, le, offset)
		offset += uint32(len(v.Data))
	}

	for _, v := range variants {
		buf.Write(v.Data)
	}

	if buf.Len() != total {
		return nil, fmt.Errorf("container size mismatch: wrote %d, want %d", buf.Len(), total)
	}
	return buf.Bytes(), nil
}
