// Package decoder turns a stream of 8086 machine code into mov instructions.
package decoder

import "fmt"

// Emitter receives decoded instructions in stream order.
type Emitter interface {
	Emit(ins Instruction) error
}

type EmitterFunc func(ins Instruction) error

func (f EmitterFunc) Emit(ins Instruction) error {
	return f(ins)
}

// Disassemble decodes buf from the start and hands every instruction to e
// as soon as it is decoded. The first error stops decoding. The failing
// instruction is never emitted.
func Disassemble(buf []byte, e Emitter) error {
	r := newReader(buf)

	for !r.isEmpty() {
		start := r.offset()

		typ, err := classifyNext(r)
		if err != nil {
			return err
		}

		ins, err := parseMov(r, typ)
		if err != nil {
			return fmt.Errorf("could not decode %s mov at offset %d: %w", typ, start, err)
		}

		if err := e.Emit(ins); err != nil {
			return fmt.Errorf("emit instruction at offset %d: %w", start, err)
		}
	}

	return nil
}

// DisassembleAll decodes the whole buffer. On error no instructions are
// returned.
func DisassembleAll(buf []byte) ([]Instruction, error) {
	var result []Instruction

	err := Disassemble(buf, EmitterFunc(func(ins Instruction) error {
		result = append(result, ins)
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return result, nil
}
