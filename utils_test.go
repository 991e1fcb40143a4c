package micheline_test

import (
	"encoding/hex"

	. "github.com/tzwire/micheline"
)

// fromHex returns the bytes represented by the hexadecimal string s.
// s may be prefixed with "0x".
func fromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex2Bytes(s)
}

// has0xPrefix validates str begins with '0x' or '0X'.
func has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// hex2Bytes returns the bytes represented by the hexadecimal string str.
func hex2Bytes(str string) []byte {
	h, _ := hex.DecodeString(str)
	return h
}

// nestedSeq returns a sequence nested n levels around a single integer, so
// depth bound behavior can be pinned exactly.
func nestedSeq(n int) Node {
	node := Node(NewInt(1))
	for i := 0; i < n; i++ {
		node = NewSeq(node)
	}
	return node
}
