package main

import (
	"fmt"
	"io"

	"cjting.me/sim8086/decoder"
	"github.com/k0kubun/pp"
)

// printer writes one line per instruction and keeps the lines around for
// check mode.
type printer struct {
	w     io.Writer
	debug io.Writer
	lines []string
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Emit(ins decoder.Instruction) error {
	if p.debug != nil {
		pp.Fprintln(p.debug, ins)
	}

	str := ins.Disassemble()
	p.lines = append(p.lines, str)

	_, err := fmt.Fprintln(p.w, str)
	return err
}
