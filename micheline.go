// Package micheline encodes Micheline expressions, the tree form of the
// Michelson smart contract language, into their canonical binary wire
// representation. The output is byte exact: it is the form consumed by
// hashing, signing and broadcasting layers, and it interoperates with
// independent implementations of the same protocol. Decoding, parsing of
// textual source and type checking are outside the scope of this library.
//
// Copyright (c) 2026 by tzwire. See LICENSE file for details.
package micheline

import (
	"fmt"

	"github.com/tzwire/micheline/binutils"
)

// DefaultMaxDepth is the nesting bound applied when an Encoder does not
// configure its own. It is far above anything produced by real contracts
// and exists to keep recursion on untrusted trees in check.
const DefaultMaxDepth = 1024

// Encoder encodes Micheline expression trees into wire bytes.
//
// The zero value is ready for use and the package level functions share one
// default instance, so most callers never create an Encoder themselves.
// Separate instances only matter when per call configuration differs, for
// example a tighter depth bound for untrusted input.
//
// An Encoder holds no per call state; one instance can be used from many
// goroutines at once.
type Encoder struct {
	// MaxDepth bounds the tree nesting the encoder accepts. Values of zero
	// or below mean DefaultMaxDepth.
	MaxDepth int

	// Verbose enables a depth indented trace of the encode walk on stdout.
	// Useful for debugging, far too noisy for production.
	Verbose bool
}

// NewEncoder creates a new Encoder with default settings.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode serializes the expression tree rooted at n into its canonical wire
// encoding.
//
// The exact output size is computed up front, so the result is allocated in
// one piece. On error no partial output is returned; bytes produced by a
// failed encode must never be used.
//
// Parameters:
//   - n: The root of the expression tree. Trees are read only to the
//     encoder and may be shared.
//
// Returns:
//   - []byte: The canonical wire encoding as a fresh byte slice
//   - error: ErrUnknownPrimitive for names outside the canonical table,
//     ErrInvalidEncoding for malformed bytes hex or nil nodes and values,
//     ErrMaxDepthExceeded when nesting passes the configured bound
//
// Example:
//
//	data, err := enc.Encode(micheline.NewPrim("Pair", micheline.NewInt(1), micheline.NewInt(2)))
//	if err != nil {
//	    log.Fatal("encode failed:", err)
//	}
//	fmt.Printf("%x\n", data) // 070700010002
func (e *Encoder) Encode(n Node) ([]byte, error) {
	size, err := e.nodeSize(n, 1)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, size)
	newBuf, err := e.appendNode(buf, n, 1)
	if err != nil {
		return nil, err
	}

	if len(newBuf) != size {
		return nil, fmt.Errorf("encoded length does not match expected length (expected: %v, got: %v)", size, len(newBuf))
	}

	return newBuf, nil
}

// EncodeTo serializes the expression tree rooted at n and appends the output
// to buf, returning the extended slice. It allows buffer reuse across many
// encodes and efficient concatenation of several encoded expressions.
//
// On error the returned slice is nil and any bytes appended before the
// failure must be treated as invalid.
func (e *Encoder) EncodeTo(buf []byte, n Node) ([]byte, error) {
	return e.appendNode(buf, n, 1)
}

// EncodedSize returns the exact number of bytes Encode produces for the
// expression tree rooted at n, without encoding it. It fails on exactly the
// inputs Encode fails on.
func (e *Encoder) EncodedSize(n Node) (int, error) {
	return e.nodeSize(n, 1)
}

// Validate walks the expression tree rooted at n and reports the first
// problem an encode would hit: an unknown primitive name, malformed bytes
// hex, a nil node or integer value, or nesting beyond the depth bound. It
// produces no output bytes.
func (e *Encoder) Validate(n Node) error {
	_, err := e.nodeSize(n, 1)
	return err
}

// Pack serializes the expression tree rooted at n and prefixes it with the
// packed data lead byte 0x05. This is the byte form PACK produces and the
// form expression hashes are computed over; the hashing itself is left to
// the caller.
//
// Example:
//
//	data, err := enc.Pack(micheline.NewInt(100))
//	if err != nil {
//	    log.Fatal("pack failed:", err)
//	}
//	fmt.Printf("%x\n", data) // 0500a401
func (e *Encoder) Pack(n Node) ([]byte, error) {
	size, err := e.nodeSize(n, 1)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, size+1)
	buf = binutils.AppendByte(buf, packPrefix)
	return e.appendNode(buf, n, 1)
}

// maxDepth returns the effective nesting bound.
func (e *Encoder) maxDepth() int {
	if e.MaxDepth > 0 {
		return e.MaxDepth
	}
	return DefaultMaxDepth
}
