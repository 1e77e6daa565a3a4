package decoder

// indexed by the 3-bit reg/rm field
var REGISTERS_8 = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}
var REGISTERS_16 = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}

// base expressions for memory operands, indexed by rm
var EFFECTIVE_ADDRESSES = [8]string{"bx + si", "bx + di", "bp + si", "bp + di", "si", "di", "bp", "bx"}

// regName maps a register index and width bit to its name. Only the low
// 3 bits of idx are used.
func regName(idx byte, wide byte) string {
	if wide == 0 {
		return REGISTERS_8[idx&0b111]
	}

	return REGISTERS_16[idx&0b111]
}
