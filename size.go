// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

package micheline

import (
	"fmt"

	"github.com/tzwire/micheline/zarith"
)

// nodeSize returns the exact wire size of a node. It walks the same shapes
// the encoder walks and fails on the same inputs, so Encode can allocate its
// output in one piece and Validate can reuse the walk without producing
// bytes.
func (e *Encoder) nodeSize(n Node, depth int) (int, error) {
	if depth > e.maxDepth() {
		return 0, fmt.Errorf("%w (%v levels)", ErrMaxDepthExceeded, e.maxDepth())
	}

	switch n := n.(type) {
	case *IntNode:
		if n == nil || n.Value == nil {
			return 0, fmt.Errorf("%w: nil integer node", ErrInvalidEncoding)
		}
		return 1 + zarith.Len(n.Value), nil

	case *StringNode:
		if n == nil {
			return 0, fmt.Errorf("%w: nil string node", ErrInvalidEncoding)
		}
		return 1 + 4 + len(n.Text), nil

	case *BytesNode:
		if n == nil {
			return 0, fmt.Errorf("%w: nil bytes node", ErrInvalidEncoding)
		}
		rawLen, err := n.rawLen()
		if err != nil {
			return 0, err
		}
		return 1 + 4 + rawLen, nil

	case *SeqNode:
		if n == nil {
			return 0, fmt.Errorf("%w: nil sequence node", ErrInvalidEncoding)
		}
		size, err := e.itemsSize(n.Items, depth+1)
		if err != nil {
			return 0, err
		}
		return 1 + 4 + size, nil

	case *PrimNode:
		if n == nil {
			return 0, fmt.Errorf("%w: nil primitive node", ErrInvalidEncoding)
		}
		return e.primSize(n, depth)

	case nil:
		return 0, fmt.Errorf("%w: nil node", ErrInvalidEncoding)

	default:
		return 0, fmt.Errorf("%w: unsupported node type %T", ErrInvalidEncoding, n)
	}
}

// primSize returns the wire size of a primitive application, honoring the
// same compact versus generic form selection as the encoder.
func (e *Encoder) primSize(n *PrimNode, depth int) (int, error) {
	if _, err := PrimIndex(n.Name); err != nil {
		return 0, err
	}

	argsSize, err := e.itemsSize(n.Args, depth+1)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", n.Name, err)
	}

	size := 2 + argsSize
	if len(n.Args) >= 3 {
		size += 4 + 4 + n.annotsLen()
	} else if len(n.Annots) > 0 {
		size += 4 + n.annotsLen()
	}
	return size, nil
}

// itemsSize sums the wire sizes of items.
func (e *Encoder) itemsSize(items []Node, depth int) (int, error) {
	size := 0
	for idx, item := range items {
		itemSize, err := e.nodeSize(item, depth)
		if err != nil {
			return 0, fmt.Errorf("item %v: %w", idx, err)
		}
		size += itemSize
	}
	return size, nil
}
