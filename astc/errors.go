package astc

import "fmt"

// FormatError reports malformed ASTC input.
//
// Offset is the byte offset into the input where the problem was detected.
// Block is the index of the offending 16-byte block, or -1 when the error
// concerns the container header rather than a block payload.
type FormatError struct {
	Offset int
	Block  int
	Msg    string
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Block >= 0 {
		return fmt.Sprintf("astc: block %d (offset %d): %s", e.Block, e.Offset, e.Msg)
	}
	return fmt.Sprintf("astc: offset %d: %s", e.Offset, e.Msg)
}

func headerErrf(offset int, format string, args ...any) *FormatError {
	return &FormatError{Offset: offset, Block: -1, Msg: fmt.Sprintf(format, args...)}
}

func blockErrf(index int, format string, args ...any) *FormatError {
	return &FormatError{Offset: HeaderSize + index*BlockBytes, Block: index, Msg: fmt.Sprintf(format, args...)}
}
