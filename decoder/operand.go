package decoder

import "fmt"

type OperandKind int

const (
	Operand_None OperandKind = iota
	Operand_Register
	// base expression with optional displacement
	Operand_Memory
	// bare 16-bit address, mod=00 rm=110
	Operand_Direct
	Operand_Immediate
)

type Operand struct {
	Kind OperandKind

	// Operand_Register: register index and width bit
	// Operand_Memory: Reg is the rm field selecting the base expression
	Reg  byte
	Wide byte

	Disp    int16
	Address uint16
	Value   int16
}

func registerOperand(idx byte, wide byte) Operand {
	return Operand{Kind: Operand_Register, Reg: idx & 0b111, Wide: wide}
}

func immediateOperand(v int16) Operand {
	return Operand{Kind: Operand_Immediate, Value: v}
}

func directOperand(addr uint16) Operand {
	return Operand{Kind: Operand_Direct, Address: addr}
}

func (o Operand) String() string {
	switch o.Kind {
	case Operand_Register:
		return regName(o.Reg, o.Wide)
	case Operand_Memory:
		base := EFFECTIVE_ADDRESSES[o.Reg&0b111]
		if o.Disp == 0 {
			return fmt.Sprintf("[%s]", base)
		}
		return fmt.Sprintf("[%s + %d]", base, o.Disp)
	case Operand_Direct:
		return fmt.Sprintf("[%d]", o.Address)
	case Operand_Immediate:
		return fmt.Sprintf("%d", o.Value)
	}

	panic("unreachable")
}

const (
	Mod_Memory_No_Displacement = 0b00
	Mod_Memory_8Bit            = 0b01
	Mod_Memory_16Bit           = 0b10
	Mod_Register               = 0b11

	rmDirectAddress = 0b110
)

// Common holds the decoded mod/reg/rm byte together with the trailing
// displacement or direct address it pulled from the stream.
type Common struct {
	mod  byte
	reg  byte
	rm   byte
	disp int16
	addr uint16
}

func parseCommon(r *Reader) (Common, error) {
	result := Common{}
	b, err := r.read()
	if err != nil {
		return result, err
	}

	result.mod = (b >> 6) & 0b11
	result.reg = (b >> 3) & 0b111
	result.rm = b & 0b111

	switch {
	case result.mod == Mod_Memory_No_Displacement && result.rm == rmDirectAddress:
		result.addr, err = r.readUint16()
	case result.mod == Mod_Memory_8Bit:
		var d int8
		d, err = r.readInt8()
		result.disp = int16(d)
	case result.mod == Mod_Memory_16Bit:
		result.disp, err = r.readInt16()
	}

	if err != nil {
		return result, err
	}

	return result, nil
}

func (c *Common) regOperand(wide byte) Operand {
	return registerOperand(c.reg, wide)
}

func (c *Common) rmOperand(wide byte) Operand {
	switch c.mod {
	case Mod_Register:
		return registerOperand(c.rm, wide)
	case Mod_Memory_No_Displacement:
		if c.rm == rmDirectAddress {
			return directOperand(c.addr)
		}
		return Operand{Kind: Operand_Memory, Reg: c.rm}
	default:
		return Operand{Kind: Operand_Memory, Reg: c.rm, Disp: c.disp}
	}
}

// operands orders reg and rm by the direction bit: d=1 makes reg the
// destination.
func (c *Common) operands(d byte, wide byte) (dest Operand, src Operand) {
	dest = c.rmOperand(wide)
	src = c.regOperand(wide)

	if d == 1 {
		dest, src = src, dest
	}

	return dest, src
}
