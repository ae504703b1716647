package encoder

import (
	"bytes"
	"encoding/binary"
	"image"
)

// DIB payload layout: a 40-byte BITMAPINFOHEADER, the XOR mask (BGRA
// pixel rows stored bottom-up), then the AND mask (1 bit per pixel).
// All multi-byte fields are little-endian.
const dibHeaderSize = 40

// DIBEncoder writes the uncompressed icon payload. The declared header
// height is doubled: the payload notionally stacks the color plane and
// the monochrome mask plane, even though the mask is vestigial at
// 32 bits per pixel.
type DIBEncoder struct{}

func (e *DIBEncoder) Format() string { return "dib" }

// xorStride is the byte width of one pixel row, padded to a 4-byte
// boundary. At 4 bytes per pixel the padding is always zero, but the
// stride is computed rather than assumed.
func xorStride(width int) int {
	return (width*4 + 3) &^ 3
}

// andStride is the byte width of one 1-bit mask row, padded to a
// 4-byte boundary.
func andStride(width int) int {
	return ((width + 31) / 32) * 4
}

// PayloadSize returns the encoded byte length for an edge×edge icon.
func (e *DIBEncoder) PayloadSize(edge int) int {
	return dibHeaderSize + xorStride(edge)*edge + andStride(edge)*edge
}

func (e *DIBEncoder) Encode(img *image.NRGBA) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	xs, as := xorStride(w), andStride(w)

	buf := bytes.NewBuffer(make([]byte, 0, dibHeaderSize+xs*h+as*h))

	binary.Write(buf, binary.LittleEndian, uint32(dibHeaderSize))
	binary.Write(buf, binary.LittleEndian, int32(w))
	binary.Write(buf, binary.LittleEndian, int32(h*2)) // color plane + mask plane
	binary.Write(buf, binary.LittleEndian, uint16(1))  // planes
	binary.Write(buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(0))  // BI_RGB, no compression
	binary.Write(buf, binary.LittleEndian, uint32(xs*h))
	binary.Write(buf, binary.LittleEndian, uint32(0)) // x pixels per meter
	binary.Write(buf, binary.LittleEndian, uint32(0)) // y pixels per meter
	binary.Write(buf, binary.LittleEndian, uint32(0)) // colors used
	binary.Write(buf, binary.LittleEndian, uint32(0)) // colors important

	// XOR mask: BGRA, bottom row first.
	row := make([]byte, xs)
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		i := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			row[i+0] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
			row[i+3] = c.A
			i += 4
		}
		for ; i < xs; i++ {
			row[i] = 0
		}
		buf.Write(row)
	}

	// AND mask: all bits clear, alpha governs transparency.
	buf.Write(make([]byte, as*h))

	return buf.Bytes(), nil
}
