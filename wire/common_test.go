// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestVarIntWire round-trips variable length integers across every width
// boundary and checks the encoded form.
func TestVarIntWire(t *testing.T) {
	tests := []struct {
		in  uint64 // Value to encode
		buf []byte // Wire encoding
	}{
		// Latest protocol version.
		// Single byte
		{0, []byte{0x00}},
		// Max single byte
		{0xfc, []byte{0xfc}},
		// Min 2-byte
		{0xfd, []byte{0xfd, 0x0fd, 0x00}},
		// Max 2-byte
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		// Min 4-byte
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		// Max 4-byte
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		// Min 8-byte
		{
			0x100000000,
			[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
		},
		// Max 8-byte
		{
			0xffffffffffffffff,
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Encode to wire format.
		var buf bytes.Buffer
		err := WriteVarInt(&buf, test.in)
		if err != nil {
			t.Errorf("WriteVarInt #%d error %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("WriteVarInt #%d\n got: %s want: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}

		// Decode from wire format.
		rbuf := bytes.NewReader(test.buf)
		val, err := ReadVarInt(rbuf)
		if err != nil {
			t.Errorf("ReadVarInt #%d error %v", i, err)
			continue
		}
		if val != test.in {
			t.Errorf("ReadVarInt #%d\n got: %d want: %d", i,
				val, test.in)
			continue
		}

		if size := VarIntSerializeSize(test.in); size != len(test.buf) {
			t.Errorf("VarIntSerializeSize #%d got: %d want: %d", i,
				size, len(test.buf))
		}
	}
}

// TestVarIntNonCanonical ensures variable length integers that use more
// bytes than necessary are rejected on decode.
func TestVarIntNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   []byte // Wire encoding
	}{
		{"0 encoded with 3 bytes", []byte{0xfd, 0x00, 0x00}},
		{"max 1-byte value encoded with 3 bytes", []byte{0xfd, 0xfc, 0x00}},
		{"0 encoded with 5 bytes", []byte{0xfe, 0x00, 0x00, 0x00, 0x00}},
		{
			"max 2-byte value encoded with 5 bytes",
			[]byte{0xfe, 0xff, 0xff, 0x00, 0x00},
		},
		{
			"0 encoded with 9 bytes",
			[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			"max 4-byte value encoded with 9 bytes",
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00},
		},
	}

	for _, test := range tests {
		rbuf := bytes.NewReader(test.in)
		if _, err := ReadVarInt(rbuf); err == nil {
			t.Errorf("ReadVarInt (%s): expected an error", test.name)
		}
	}
}

// TestVarBytes round-trips length-prefixed byte strings and enforces the
// read limit.
func TestVarBytes(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 300)

	var buf bytes.Buffer
	if err := writeVarBytes(&buf, payload); err != nil {
		t.Fatalf("writeVarBytes: unexpected error: %v", err)
	}

	got, err := readVarBytes(bytes.NewReader(buf.Bytes()), 1024, "payload")
	if err != nil {
		t.Fatalf("readVarBytes: unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("payload did not round-trip")
	}

	_, err = readVarBytes(bytes.NewReader(buf.Bytes()), 100, "payload")
	if err == nil {
		t.Fatal("readVarBytes: expected an error for an oversized payload")
	}
}
