// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

// Package zarith implements the signed arbitrary-precision integer encoding
// of the wire format: base-128 groups with a continuation flag in bit 7,
// the sign carried in bit 6 of the first byte. The first byte holds the low
// 6 bits of the magnitude, every following byte holds the next 7 bits.
package zarith

import "math/big"

const (
	contBit = 0x80 // more bytes follow
	signBit = 0x40 // negative value, first byte only
)

// AppendInt appends the zarith encoding of z to dst. Zero encodes as the
// single byte 0x00. All arithmetic runs on big.Int, so magnitudes beyond any
// machine word width encode correctly.
func AppendInt(dst []byte, z *big.Int) []byte {
	mag := new(big.Int).Abs(z)

	b := lowByte(mag) & 0x3f
	if z.Sign() < 0 {
		b |= signBit
	}
	mag.Rsh(mag, 6)
	if mag.Sign() != 0 {
		b |= contBit
	}
	dst = append(dst, b)

	for mag.Sign() != 0 {
		b = lowByte(mag) & 0x7f
		mag.Rsh(mag, 7)
		if mag.Sign() != 0 {
			b |= contBit
		}
		dst = append(dst, b)
	}

	return dst
}

// Len returns the number of bytes AppendInt produces for z, without encoding.
func Len(z *big.Int) int {
	bits := z.BitLen()
	if bits <= 6 {
		return 1
	}
	return 1 + bits/7
}

// lowByte returns the low 8 bits of the non-negative z.
func lowByte(z *big.Int) byte {
	words := z.Bits()
	if len(words) == 0 {
		return 0
	}
	return byte(words[0])
}
