// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

package micheline

import "sync"

var (
	globalEncoder    *Encoder
	globalEncoderMux sync.Mutex
)

// DefaultEncoder returns the shared package level Encoder, creating it with
// default settings on first use.
func DefaultEncoder() *Encoder {
	globalEncoderMux.Lock()
	defer globalEncoderMux.Unlock()

	if globalEncoder == nil {
		globalEncoder = NewEncoder()
	}
	return globalEncoder
}

// SetDefaultEncoder replaces the shared package level Encoder, so programs
// can configure depth bounds or tracing in one place.
func SetDefaultEncoder(e *Encoder) {
	globalEncoderMux.Lock()
	defer globalEncoderMux.Unlock()

	globalEncoder = e
}

// Encode serializes n with the shared default Encoder.
func Encode(n Node) ([]byte, error) {
	return DefaultEncoder().Encode(n)
}

// EncodeTo appends the encoding of n to buf with the shared default Encoder.
func EncodeTo(buf []byte, n Node) ([]byte, error) {
	return DefaultEncoder().EncodeTo(buf, n)
}

// EncodedSize returns the exact wire size of n with the shared default
// Encoder.
func EncodedSize(n Node) (int, error) {
	return DefaultEncoder().EncodedSize(n)
}

// Validate checks n with the shared default Encoder.
func Validate(n Node) error {
	return DefaultEncoder().Validate(n)
}

// Pack serializes n with the packed data prefix using the shared default
// Encoder.
func Pack(n Node) ([]byte, error) {
	return DefaultEncoder().Pack(n)
}
