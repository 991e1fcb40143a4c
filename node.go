// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

package micheline

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Node is a single Micheline expression. The set of implementations is
// closed: IntNode, StringNode, BytesNode, SeqNode and PrimNode are the five
// shapes the wire format defines. Trees are built by an external parser or
// by hand through the constructors below and are never modified by the
// encoder.
type Node interface {
	// String returns a Michelson flavoured debug render of the expression.
	String() string

	exprNode()
}

// IntNode is an arbitrary precision integer literal.
type IntNode struct {
	Value *big.Int
}

// NewInt returns an integer literal holding v.
func NewInt(v int64) *IntNode {
	return &IntNode{Value: big.NewInt(v)}
}

// NewBig returns an integer literal holding z. The encoder reads the value
// but never modifies it.
func NewBig(z *big.Int) *IntNode {
	return &IntNode{Value: z}
}

// NewIntString returns an integer literal parsed from decimal text. Text
// that is not a plain decimal integer fails with ErrInvalidEncoding.
func NewIntString(s string) (*IntNode, error) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidEncoding, s)
	}
	return &IntNode{Value: z}, nil
}

func (n *IntNode) String() string {
	return n.Value.String()
}

func (n *IntNode) exprNode() {}

// StringNode is a text literal, written as UTF-8 on the wire.
type StringNode struct {
	Text string
}

// NewString returns a string literal holding s.
func NewString(s string) *StringNode {
	return &StringNode{Text: s}
}

func (n *StringNode) String() string {
	return strconv.Quote(n.Text)
}

func (n *StringNode) exprNode() {}

// BytesNode is a byte string literal held as hexadecimal text, two digits
// per byte. The text is validated when the node is encoded: odd length or
// non-hex digits fail with ErrInvalidEncoding.
type BytesNode struct {
	Hex string
}

// NewBytes returns a byte string literal for raw bytes.
func NewBytes(b []byte) *BytesNode {
	return &BytesNode{Hex: hex.EncodeToString(b)}
}

// NewBytesHex returns a byte string literal holding the given hex text
// without a 0x prefix.
func NewBytesHex(s string) *BytesNode {
	return &BytesNode{Hex: s}
}

func (n *BytesNode) String() string {
	return "0x" + n.Hex
}

func (n *BytesNode) exprNode() {}

// raw returns the decoded byte string.
func (n *BytesNode) raw() ([]byte, error) {
	b, err := hex.DecodeString(n.Hex)
	if err != nil {
		return nil, fmt.Errorf("%w: bad bytes hex %q", ErrInvalidEncoding, n.Hex)
	}
	return b, nil
}

// rawLen returns the decoded byte length without decoding.
func (n *BytesNode) rawLen() (int, error) {
	if len(n.Hex)%2 != 0 {
		return 0, fmt.Errorf("%w: bad bytes hex %q", ErrInvalidEncoding, n.Hex)
	}
	for i := 0; i < len(n.Hex); i++ {
		c := n.Hex[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return 0, fmt.Errorf("%w: bad bytes hex %q", ErrInvalidEncoding, n.Hex)
		}
	}
	return len(n.Hex) / 2, nil
}

// SeqNode is an ordered sequence of expressions. Order is significant and
// preserved on the wire.
type SeqNode struct {
	Items []Node
}

// NewSeq returns a sequence of the given items.
func NewSeq(items ...Node) *SeqNode {
	return &SeqNode{Items: items}
}

func (n *SeqNode) String() string {
	if len(n.Items) == 0 {
		return "{}"
	}
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = nodeString(item)
	}
	return "{ " + strings.Join(parts, " ; ") + " }"
}

func (n *SeqNode) exprNode() {}

// PrimNode is a primitive application: a name from the canonical table with
// ordered argument expressions and annotation strings.
type PrimNode struct {
	Name   string
	Args   []Node
	Annots []string
}

// NewPrim returns a primitive application of name to args.
func NewPrim(name string, args ...Node) *PrimNode {
	return &PrimNode{Name: name, Args: args}
}

// WithAnnots replaces the annotation list and returns the node, so prim
// literals can be built in one chain.
func (n *PrimNode) WithAnnots(annots ...string) *PrimNode {
	n.Annots = annots
	return n
}

func (n *PrimNode) String() string {
	if len(n.Args) == 0 && len(n.Annots) == 0 {
		return n.Name
	}
	parts := make([]string, 0, 1+len(n.Annots)+len(n.Args))
	parts = append(parts, n.Name)
	parts = append(parts, n.Annots...)
	for _, arg := range n.Args {
		parts = append(parts, nodeString(arg))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (n *PrimNode) exprNode() {}

// annotsLen returns the byte length of the space joined annotation field.
func (n *PrimNode) annotsLen() int {
	if len(n.Annots) == 0 {
		return 0
	}
	size := len(n.Annots) - 1
	for _, a := range n.Annots {
		size += len(a)
	}
	return size
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
