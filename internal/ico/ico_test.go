package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func fakeVariant(edge, size int) Variant {
	data := make([]byte, size)
	binary.LittleEndian.PutUint32(data, 40) // looks like a DIB header
	return Variant{Edge: edge, Format: "dib", Data: data}
}

func TestEncode_Empty(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, ErrEmptyVariantSet) {
		t.Fatalf("got %v, want ErrEmptyVariantSet", err)
	}
}

func TestEncode_HeaderAndDirectory(t *testing.T) {
	variants := []Variant{
		fakeVariant(16, 100),
		fakeVariant(48, 200),
		fakeVariant(256, 300),
	}
	data, err := Encode(variants)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	le := binary.LittleEndian
	if got := le.Uint16(data[0:]); got != 0 {
		t.Errorf("reserved: got %d", got)
	}
	if got := le.Uint16(data[2:]); got != 1 {
		t.Errorf("type: got %d, want 1", got)
	}
	if got := le.Uint16(data[4:]); got != 3 {
		t.Errorf("count: got %d, want 3", got)
	}

	// Entry 0: width/height bytes hold the literal edge.
	if data[6] != 16 || data[7] != 16 {
		t.Errorf("entry 0 dims: got %d/%d, want 16/16", data[6], data[7])
	}
	// Entry 2: 256 aliases to 0.
	if data[6+32] != 0 || data[7+32] != 0 {
		t.Errorf("entry 2 dims: got %d/%d, want 0/0", data[6+32], data[7+32])
	}

	// Offsets accumulate with no gaps from 6 + 16*count.
	wantOffset := uint32(6 + 16*3)
	for i, v := range variants {
		rec := data[6+16*i:]
		if got := le.Uint32(rec[8:]); got != uint32(len(v.Data)) {
			t.Errorf("entry %d length: got %d, want %d", i, got, len(v.Data))
		}
		if got := le.Uint32(rec[12:]); got != wantOffset {
			t.Errorf("entry %d offset: got %d, want %d", i, got, wantOffset)
		}
		wantOffset += uint32(len(v.Data))
	}
	if int(wantOffset) != len(data) {
		t.Errorf("total size: got %d, want %d", len(data), wantOffset)
	}
}

func TestEncode_PayloadsInOrder(t *testing.T) {
	a := Variant{Edge: 16, Format: "dib", Data: []byte{1, 2, 3, 4}}
	b := Variant{Edge: 32, Format: "dib", Data: []byte{5, 6}}
	data, err := Encode([]Variant{a, b})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	body := data[6+16*2:]
	if !bytes.Equal(body, []byte{1, 2, 3, 4, 5, 6}) {
		t.Errorf("payload section: got %v", body)
	}
}

func TestRoundTrip(t *testing.T) {
	variants := []Variant{
		fakeVariant(16, 64),
		fakeVariant(32, 128),
		fakeVariant(48, 192),
		fakeVariant(256, 77),
	}
	data, err := Encode(variants)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	dir, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := dir.Sizes()
	want := []int{16, 32, 48, 256}
	if len(got) != len(want) {
		t.Fatalf("sizes: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("size %d: got %d, want %d", i, got[i], want[i])
		}
	}
	for i, e := range dir.Entries {
		if !bytes.Equal(e.Data, variants[i].Data) {
			t.Errorf("entry %d payload differs", i)
		}
		if e.Format != "dib" {
			t.Errorf("entry %d format: got %q", i, e.Format)
		}
	}

	if errs := dir.Validate(len(data)); len(errs) != 0 {
		t.Errorf("validate: %v", errs)
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0, 0, 1}},
		{"bad reserved", []byte{1, 0, 1, 0, 0, 0}},
		{"cursor type", []byte{0, 0, 2, 0, 0, 0}},
		{"truncated directory", []byte{0, 0, 1, 0, 2, 0, 16, 16}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.data); !errors.Is(err, ErrNotIcon) {
				t.Fatalf("got %v, want ErrNotIcon", err)
			}
		})
	}
}

func TestDecode_PayloadOutOfBounds(t *testing.T) {
	data, err := Encode([]Variant{fakeVariant(16, 50)})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Truncate into the payload.
	if _, err := Decode(data[:len(data)-10]); !errors.Is(err, ErrNotIcon) {
		t.Fatalf("got %v, want ErrNotIcon", err)
	}
}

func TestValidate_DetectsGap(t *testing.T) {
	data, err := Encode([]Variant{fakeVariant(16, 50), fakeVariant(32, 60)})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Shift the second entry's offset forward by 4 to fake a gap.
	rec := data[6+16:]
	off := binary.LittleEndian.Uint32(rec[12:])
	binary.LittleEndian.PutUint32(rec[12:], off+4)

	// Grow the buffer so the shifted payload stays in bounds.
	data = append(data, 0, 0, 0, 0)

	dir, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errs := dir.Validate(len(data)); len(errs) == 0 {
		t.Error("expected validation errors for gapped payloads")
	}
}
