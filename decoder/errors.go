package decoder

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEndOfStream is returned when an instruction needs more bytes
// than the stream has left.
var ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")

// ErrUnsupportedOpcode matches any *UnsupportedOpcodeError with errors.Is.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

type UnsupportedOpcodeError struct {
	Offset int
	Opcode byte
	// up to 4 bytes starting at the opcode, for diagnostics
	Window []byte
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode %08b at offset %d: %#v", e.Opcode, e.Offset, e.Window)
}

func (e *UnsupportedOpcodeError) Is(target error) bool {
	return target == ErrUnsupportedOpcode
}
