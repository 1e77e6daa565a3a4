package decoder

type MovType int

const (
	Mov_Invalid MovType = iota
	Mov_RegisterOrMemory_ToOrFrom_Register
	Mov_Immediate_To_Register
	Mov_Memory_To_Accumulator
	Mov_Accumulator_To_Memory
)

var movTypeNames = map[MovType]string{
	Mov_Invalid:                            "invalid",
	Mov_RegisterOrMemory_ToOrFrom_Register: "register/memory to/from register",
	Mov_Immediate_To_Register:              "immediate to register",
	Mov_Memory_To_Accumulator:              "memory to accumulator",
	Mov_Accumulator_To_Memory:              "accumulator to memory",
}

func (t MovType) String() string {
	return movTypeNames[t]
}

type opcodePrefix struct {
	bits    int
	pattern byte
	typ     MovType
}

// Tested in order. The 4-bit immediate form goes first, then the 6-bit and
// 7-bit forms.
var movPrefixes = []opcodePrefix{
	{4, 0b1011, Mov_Immediate_To_Register},
	{6, 0b100010, Mov_RegisterOrMemory_ToOrFrom_Register},
	{7, 0b1010000, Mov_Memory_To_Accumulator},
	{7, 0b1010001, Mov_Accumulator_To_Memory},
}

func (p opcodePrefix) match(b byte) bool {
	return b>>(8-p.bits) == p.pattern
}

// classify picks the instruction form for an opcode byte. It returns
// Mov_Invalid when no form matches.
func classify(b byte) MovType {
	for _, p := range movPrefixes {
		if p.match(b) {
			return p.typ
		}
	}

	return Mov_Invalid
}

// classifyNext inspects the next byte of r without consuming it.
func classifyNext(r *Reader) (MovType, error) {
	b, err := r.peek()
	if err != nil {
		return Mov_Invalid, err
	}

	typ := classify(b)
	if typ == Mov_Invalid {
		return typ, &UnsupportedOpcodeError{
			Offset: r.offset(),
			Opcode: b,
			Window: r.peekN(4),
		}
	}

	return typ, nil
}
