// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

package micheline_test

import (
	"fmt"
	"log"

	micheline "github.com/tzwire/micheline"
)

func ExampleEncode() {
	node := micheline.NewPrim("Pair", micheline.NewInt(1), micheline.NewInt(2))

	data, err := micheline.Encode(node)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%x\n", data)
	// Output: 070700010002
}

func ExampleEncoder_Encode() {
	enc := micheline.NewEncoder()
	script := micheline.NewSeq(
		micheline.NewPrim("CDR"),
		micheline.NewPrim("NIL", micheline.NewPrim("operation")),
		micheline.NewPrim("PAIR"),
	)

	data, err := enc.Encode(script)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%x\n", data)
	// Output: 02000000080317053d036d0342
}

func ExamplePack() {
	data, err := micheline.Pack(micheline.NewInt(100))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%x\n", data)
	// Output: 0500a401
}

func ExampleNode_String() {
	script := micheline.NewSeq(
		micheline.NewPrim("CDR"),
		micheline.NewPrim("NIL", micheline.NewPrim("operation")),
		micheline.NewPrim("PAIR"),
	)

	fmt.Println(script)
	// Output: { CDR ; (NIL operation) ; PAIR }
}
