// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

package micheline

import (
	"fmt"
	"strings"

	"github.com/tzwire/micheline/binutils"
	"github.com/tzwire/micheline/zarith"
)

// Wire tags, one per node shape. The compact prim forms use their base tag
// plus one when annotations are present.
const (
	tagInt        = 0x00
	tagString     = 0x01
	tagSeq        = 0x02
	tagPrim0      = 0x03
	tagPrim0Annot = 0x04
	tagPrim1      = 0x05
	tagPrim1Annot = 0x06
	tagPrim2      = 0x07
	tagPrim2Annot = 0x08
	tagPrimGen    = 0x09
	tagBytes      = 0x0a
)

// packPrefix is the lead byte of packed expressions, consumed by the
// downstream hashing and PACK layers.
const packPrefix = 0x05

// appendNode appends the wire encoding of n to dst, dispatching on the node
// shape. depth counts nesting levels, starting at 1 for the root.
func (e *Encoder) appendNode(dst []byte, n Node, depth int) ([]byte, error) {
	if depth > e.maxDepth() {
		return nil, fmt.Errorf("%w (%v levels)", ErrMaxDepthExceeded, e.maxDepth())
	}
	if e.Verbose {
		fmt.Printf("%snode: %s\n", strings.Repeat(" ", depth), nodeKind(n))
	}

	switch n := n.(type) {
	case *IntNode:
		if n == nil || n.Value == nil {
			return nil, fmt.Errorf("%w: nil integer node", ErrInvalidEncoding)
		}
		dst = binutils.AppendByte(dst, tagInt)
		return zarith.AppendInt(dst, n.Value), nil

	case *StringNode:
		if n == nil {
			return nil, fmt.Errorf("%w: nil string node", ErrInvalidEncoding)
		}
		dst = binutils.AppendByte(dst, tagString)
		return binutils.AppendDynBytes(dst, []byte(n.Text)), nil

	case *BytesNode:
		if n == nil {
			return nil, fmt.Errorf("%w: nil bytes node", ErrInvalidEncoding)
		}
		raw, err := n.raw()
		if err != nil {
			return nil, err
		}
		dst = binutils.AppendByte(dst, tagBytes)
		return binutils.AppendDynBytes(dst, raw), nil

	case *SeqNode:
		if n == nil {
			return nil, fmt.Errorf("%w: nil sequence node", ErrInvalidEncoding)
		}
		return e.appendSeq(dst, n.Items, depth)

	case *PrimNode:
		if n == nil {
			return nil, fmt.Errorf("%w: nil primitive node", ErrInvalidEncoding)
		}
		return e.appendPrim(dst, n, depth)

	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrInvalidEncoding)

	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrInvalidEncoding, n)
	}
}

// appendSeq appends the sequence tag, the byte length of the concatenated
// item encodings and the items themselves. The length is computed with the
// size walker before any item is written.
func (e *Encoder) appendSeq(dst []byte, items []Node, depth int) ([]byte, error) {
	size, err := e.itemsSize(items, depth+1)
	if err != nil {
		return nil, err
	}

	dst = binutils.AppendByte(dst, tagSeq)
	dst = binutils.AppendUint32(dst, uint32(size))
	return e.appendItems(dst, items, depth+1)
}

// appendPrim appends a primitive application. Up to two arguments use the
// compact forms where the annotation field is optional and selects the +1
// tag. Three or more arguments use the generic form: a length prefixed run
// of the argument encodings followed by a mandatory annotation field, which
// is empty when the node carries no annotations.
func (e *Encoder) appendPrim(dst []byte, n *PrimNode, depth int) ([]byte, error) {
	prim, err := PrimIndex(n.Name)
	if err != nil {
		return nil, err
	}

	if len(n.Args) >= 3 {
		argsSize, err := e.itemsSize(n.Args, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", n.Name, err)
		}

		dst = binutils.AppendByte(dst, tagPrimGen)
		dst = binutils.AppendByte(dst, prim)
		dst = binutils.AppendUint32(dst, uint32(argsSize))
		dst, err = e.appendItems(dst, n.Args, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", n.Name, err)
		}
		return binutils.AppendDynBytes(dst, []byte(strings.Join(n.Annots, " "))), nil
	}

	tag := byte(tagPrim0 + 2*len(n.Args))
	if len(n.Annots) > 0 {
		tag++
	}
	dst = binutils.AppendByte(dst, tag)
	dst = binutils.AppendByte(dst, prim)

	dst, err = e.appendItems(dst, n.Args, depth+1)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", n.Name, err)
	}
	if len(n.Annots) > 0 {
		dst = binutils.AppendDynBytes(dst, []byte(strings.Join(n.Annots, " ")))
	}
	return dst, nil
}

// appendItems appends the encodings of items in order.
func (e *Encoder) appendItems(dst []byte, items []Node, depth int) ([]byte, error) {
	for idx, item := range items {
		newBuf, err := e.appendNode(dst, item, depth)
		if err != nil {
			return nil, fmt.Errorf("item %v: %w", idx, err)
		}
		dst = newBuf
	}
	return dst, nil
}

// nodeKind names a node's shape for trace output.
func nodeKind(n Node) string {
	switch n := n.(type) {
	case *IntNode:
		return "int"
	case *StringNode:
		return "string"
	case *BytesNode:
		return "bytes"
	case *SeqNode:
		if n == nil {
			return "seq"
		}
		return fmt.Sprintf("seq[%v]", len(n.Items))
	case *PrimNode:
		if n == nil {
			return "prim"
		}
		return "prim " + n.Name
	default:
		return fmt.Sprintf("%T", n)
	}
}
