package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrNotIcon is returned when the bytes do not start with a valid
// icon-container header.
var ErrNotIcon = errors.New("not an icon container")

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47}

// Entry is one parsed directory record plus its payload slice.
type Entry struct {
	// Edge is the decoded edge length, with the 0→256 alias resolved.
	Edge         int
	ColorCount   int
	Planes       int
	BitsPerPixel int
	Length       uint32
	Offset       uint32
	// Format is sniffed from the payload: "png", "dib", or "unknown".
	Format string
	Data   []byte
}

// Directory is the parsed container: header fields plus entries in
// file order.
type Directory struct {
	Type    int
	Entries []Entry
}

// Sizes returns the edge lengths of all entries in file order.
func (d *Directory) Sizes() []int {
	out := make([]int, len(d.Entries))
	for i, e := range d.Entries {
		out[i] = e.Edge
	}
	return out
}

// Decode parses the header and directory of an icon container and
// slices out each payload. Offsets must lie within the buffer; the
// payloads need not be contiguous for parsing (Validate checks that
// separately).
func Decode(data []byte) (*Directory, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotIcon, len(data))
	}
	le := binary.LittleEndian
	if le.Uint16(data[0:]) != 0 {
		return nil, fmt.Errorf("%w: reserved field not zero", ErrNotIcon)
	}
	typ := int(le.Uint16(data[2:]))
	if typ != typeIcon {
		return nil, fmt.Errorf("%w: type %d", ErrNotIcon, typ)
	}
	count := int(le.Uint16(data[4:]))
	if len(data) < headerSize+entrySize*count {
		return nil, fmt.Errorf("%w: directory truncated", ErrNotIcon)
	}

	dir := &Directory{Type: typ}
	for i := 0; i < count; i++ {
		rec := data[headerSize+entrySize*i:]
		e := Entry{
			Edge:         decodeEdge(rec[0]),
			ColorCount:   int(rec[2]),
			Planes:       int(le.Uint16(rec[4:])),
			BitsPerPixel: int(le.Uint16(rec[6:])),
			Length:       le.Uint32(rec[8:]),
			Offset:       le.Uint32(rec[12:]),
		}
		end := uint64(e.Offset) + uint64(e.Length)
		if end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d payload [%d, %d) outside file of %d bytes",
				ErrNotIcon, i, e.Offset, end, len(data))
		}
		e.Data = data[e.Offset:end]
		e.Format = sniffFormat(e.Data)
		dir.Entries = append(dir.Entries, e)
	}
	return dir, nil
}

func decodeEdge(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}

func sniffFormat(payload []byte) string {
	if bytes.HasPrefix(payload, pngSignature) {
		return "png"
	}
	if len(payload) >= 4 && binary.LittleEndian.Uint32(payload) == 40 {
		return "dib"
	}
	return "unknown"
}

// Validate checks the structural invariants a well-formed writer
// produces: the first payload right after the directory, payloads
// contiguous in entry order, and the last payload ending at EOF.
// Returns one message per violation.
func (d *Directory) Validate(fileSize int) []string {
	var errs []string

	want := uint32(headerSize + entrySize*len(d.Entries))
	for i, e := range d.Entries {
		if e.Offset != want {
			errs = append(errs, fmt.Sprintf("entry %d: offset %d, want %d", i, e.Offset, want))
			want = e.Offset // resync so one gap reports once
		}
		if e.Planes != 1 {
			errs = append(errs, fmt.Sprintf("entry %d: planes %d, want 1", i, e.Planes))
		}
		if e.BitsPerPixel != 32 {
			errs = append(errs, fmt.Sprintf("entry %d: bpp %d, want 32", i, e.BitsPerPixel))
		}
		if e.Format == "unknown" {
			errs = append(errs, fmt.Sprintf("entry %d: unrecognized payload format", i))
		}
		want += e.Length
	}
	if len(d.Entries) > 0 && int(want) != fileSize {
		errs = append(errs, fmt.Sprintf("trailing bytes: payloads end at %d, file is %d", want, fileSize))
	}
	return errs
}
