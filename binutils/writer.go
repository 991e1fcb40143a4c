// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

// Package binutils provides the append-style byte sink primitives used by
// the micheline wire encoder. All multi-byte values are big endian, matching
// the wire format.
package binutils

import "encoding/binary"

// ---- Append functions ----

// AppendByte appends a single byte to dst
func AppendByte(dst []byte, b byte) []byte {
	dst = append(dst, b)
	return dst
}

// AppendUint16 appends a big endian uint16 to dst
func AppendUint16(dst []byte, i uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, i)
}

// AppendUint32 appends a big endian uint32 to dst
func AppendUint32(dst []byte, i uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, i)
}

// AppendBytes appends a raw byte run to dst
func AppendBytes(dst []byte, b []byte) []byte {
	dst = append(dst, b...)
	return dst
}

// AppendDynBytes appends a 4 byte big endian length prefix followed by b to dst
func AppendDynBytes(dst []byte, b []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(b)))
	return append(dst, b...)
}
