package decoder

import "fmt"

// Instruction is one decoded instruction.
type Instruction struct {
	Op   string
	Form MovType
	Dest Operand
	Src  Operand

	// position of the opcode byte in the stream and the number of bytes
	// the instruction occupies
	Offset int
	Size   int
}

func (i Instruction) Disassemble() string {
	return fmt.Sprintf("%s %s, %s", i.Op, i.Dest, i.Src)
}

func (i Instruction) String() string {
	return i.Disassemble()
}

// parseMov consumes exactly one mov instruction of form typ from r.
func parseMov(r *Reader, typ MovType) (Instruction, error) {
	result := Instruction{Op: "mov", Form: typ, Offset: r.offset()}

	firstByte, err := r.read()
	if err != nil {
		return result, err
	}

	switch typ {
	// 100010dw
	case Mov_RegisterOrMemory_ToOrFrom_Register:
		{
			d := (firstByte >> 1) & 1
			w := firstByte & 1

			c, err := parseCommon(r)
			if err != nil {
				return result, err
			}

			result.Dest, result.Src = c.operands(d, w)
		}
	// 1011wreg
	case Mov_Immediate_To_Register:
		{
			w := (firstByte >> 3) & 1

			data, err := r.readInt16W(w == 1)
			if err != nil {
				return result, err
			}

			result.Dest = registerOperand(firstByte&0b111, w)
			result.Src = immediateOperand(data)
		}
	// 1010000w, the accumulator is always ax
	case Mov_Memory_To_Accumulator:
		{
			addr, err := r.readUint16()
			if err != nil {
				return result, err
			}

			result.Dest = registerOperand(0, 1)
			result.Src = directOperand(addr)
		}
	// 1010001w
	case Mov_Accumulator_To_Memory:
		{
			addr, err := r.readUint16()
			if err != nil {
				return result, err
			}

			result.Dest = directOperand(addr)
			result.Src = registerOperand(0, 1)
		}
	default:
		return result, fmt.Errorf("invalid mov form %d for opcode %08b", typ, firstByte)
	}

	result.Size = r.offset() - result.Offset
	return result, nil
}
