// Copyright (c) 2026 tzwire
// SPDX-License-Identifier: Apache-2.0
// This file is part of the micheline library.

package micheline

import "fmt"

// primNames is the canonical primitive table. The position of each name is
// the byte written to the wire, so the order below is part of the wire format
// and must never be changed or compacted.
var primNames = [...]string{
	"parameter", // 0x00
	"storage",
	"code",
	"False",
	"Elt",
	"Left",
	"None",
	"Pair",
	"Right",
	"Some",
	"True",
	"Unit",
	"PACK",
	"UNPACK",
	"BLAKE2B",
	"SHA256",
	"SHA512", // 0x10
	"ABS",
	"ADD",
	"AMOUNT",
	"AND",
	"BALANCE",
	"CAR",
	"CDR",
	"CHECK_SIGNATURE",
	"COMPARE",
	"CONCAT",
	"CONS",
	"CREATE_ACCOUNT",
	"CREATE_CONTRACT",
	"IMPLICIT_ACCOUNT",
	"DIP",
	"DROP", // 0x20
	"DUP",
	"EDIV",
	"EMPTY_MAP",
	"EMPTY_SET",
	"EQ",
	"EXEC",
	"FAILWITH",
	"GE",
	"GET",
	"GT",
	"HASH_KEY",
	"IF",
	"IF_CONS",
	"IF_LEFT",
	"IF_NONE",
	"INT", // 0x30
	"LAMBDA",
	"LE",
	"LEFT",
	"LOOP",
	"LSL",
	"LSR",
	"LT",
	"MAP",
	"MEM",
	"MUL",
	"NEG",
	"NEQ",
	"NIL",
	"NONE",
	"NOT",
	"NOW", // 0x40
	"OR",
	"PAIR",
	"PUSH",
	"RIGHT",
	"SIZE",
	"SOME",
	"SOURCE",
	"SENDER",
	"SELF",
	"STEPS_TO_QUOTA",
	"SUB",
	"SWAP",
	"TRANSFER_TOKENS",
	"SET_DELEGATE",
	"UNIT",
	"UPDATE", // 0x50
	"XOR",
	"ITER",
	"LOOP_LEFT",
	"ADDRESS",
	"CONTRACT",
	"ISNAT",
	"CAST",
	"RENAME",
	"bool",
	"contract",
	"int",
	"key",
	"key_hash",
	"lambda",
	"list",
	"map", // 0x60
	"big_map",
	"nat",
	"option",
	"or",
	"pair",
	"set",
	"signature",
	"string",
	"bytes",
	"mutez",
	"timestamp",
	"unit",
	"operation",
	"address",
	"SLICE",
	"DIG", // 0x70
	"DUG",
	"EMPTY_BIG_MAP",
	"APPLY",
	"chain_id",
	"CHAIN_ID",
	"LEVEL",
	"SELF_ADDRESS",
	"never",
	"NEVER",
	"UNPAIR",
	"VOTING_POWER",
	"TOTAL_VOTING_POWER",
	"KECCAK",
	"SHA3",
	"PAIRING_CHECK",
	"bls12_381_g1", // 0x80
	"bls12_381_g2",
	"bls12_381_fr",
	"sapling_state",
	"sapling_transaction_deprecated",
	"SAPLING_EMPTY_STATE",
	"SAPLING_VERIFY_UPDATE",
	"ticket",
	"TICKET_DEPRECATED",
	"READ_TICKET",
	"SPLIT_TICKET",
	"JOIN_TICKETS",
	"GET_AND_UPDATE",
	"chest",
	"chest_key",
	"OPEN_CHEST",
	"VIEW", // 0x90
	"view",
	"constant",
	"SUB_MUTEZ",
	"tx_rollup_l2_address",
	"MIN_BLOCK_TIME",
	"sapling_transaction",
	"EMIT",
	"Lambda_rec",
	"LAMBDA_REC",
	"TICKET",
	"BYTES",
	"NAT",
	"Ticket", // 0x9d
}

// primIndex maps primitive names back to their wire byte.
var primIndex = make(map[string]byte, len(primNames))

func init() {
	for i, name := range primNames {
		primIndex[name] = byte(i)
	}
}

// PrimIndex returns the wire byte for a primitive name, or ErrUnknownPrimitive
// if the name is not part of the canonical table.
func PrimIndex(name string) (byte, error) {
	idx, ok := primIndex[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrimitive, name)
	}
	return idx, nil
}

// PrimName returns the primitive name assigned to a wire byte.
func PrimName(idx byte) (string, bool) {
	if int(idx) >= len(primNames) {
		return "", false
	}
	return primNames[idx], true
}
