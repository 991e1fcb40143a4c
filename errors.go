package micheline

import "fmt"

var (
	ErrUnknownPrimitive = fmt.Errorf("unknown primitive")
	ErrInvalidEncoding  = fmt.Errorf("invalid encoding")
	ErrMaxDepthExceeded = fmt.Errorf("expression depth limit exceeded")
)
