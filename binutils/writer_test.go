package binutils_test

import (
	"bytes"
	"testing"

	"github.com/tzwire/micheline/binutils"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		got      []byte
		expected []byte
	}{
		{binutils.AppendByte(nil, 0x2a), []byte{0x2a}},
		{binutils.AppendByte([]byte{0x01}, 0x02), []byte{0x01, 0x02}},
		{binutils.AppendUint16(nil, 0x0102), []byte{0x01, 0x02}},
		{binutils.AppendUint16(nil, 0xbeef), []byte{0xbe, 0xef}},
		{binutils.AppendUint32(nil, 0x01020304), []byte{0x01, 0x02, 0x03, 0x04}},
		{binutils.AppendUint32(nil, 4), []byte{0x00, 0x00, 0x00, 0x04}},
		{binutils.AppendBytes(nil, []byte{0xaa, 0xbb}), []byte{0xaa, 0xbb}},
		{binutils.AppendBytes([]byte{0x01}, nil), []byte{0x01}},
		{binutils.AppendDynBytes(nil, []byte{0x61, 0x62, 0x63}), []byte{0x00, 0x00, 0x00, 0x03, 0x61, 0x62, 0x63}},
		{binutils.AppendDynBytes(nil, nil), []byte{0x00, 0x00, 0x00, 0x00}},
	}

	for idx, test := range tests {
		if !bytes.Equal(test.got, test.expected) {
			t.Errorf("test %v failed: got 0x%x, wanted 0x%x", idx, test.got, test.expected)
		}
	}
}

func TestAppendKeepsPrefix(t *testing.T) {
	buf := make([]byte, 0, 16)
	buf = binutils.AppendByte(buf, 0x05)
	buf = binutils.AppendUint32(buf, 2)
	buf = binutils.AppendBytes(buf, []byte{0x0a, 0x0b})

	expected := []byte{0x05, 0x00, 0x00, 0x00, 0x02, 0x0a, 0x0b}
	if !bytes.Equal(buf, expected) {
		t.Errorf("sequential append failed: got 0x%x, wanted 0x%x", buf, expected)
	}
}
