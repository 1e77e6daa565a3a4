package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"cjting.me/sim8086/decoder"
	"github.com/tebeka/atexit"
)

var debugFlag *bool

// check disassemble result by comparing reassemble binary with original binary
var checkFlag *bool

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), "usage: sim8086 [-check] [-debug] <binary>")
	flag.PrintDefaults()
}

func main() {
	checkFlag = flag.Bool("check", false, "reassemble the output with nasm and compare it with the input")
	debugFlag = flag.Bool("debug", false, "dump decoded instructions to stderr")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("sim8086: ")

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(2)
	}

	file := flag.Arg(0)

	buf, err := os.ReadFile(file)
	if err != nil {
		atexit.Fatalf("could not read file %s: %v", file, err)
	}

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		out.Flush()
	})

	p := newPrinter(out)
	if *debugFlag {
		p.debug = os.Stderr
	}

	if err := decoder.Disassemble(buf, p); err != nil {
		atexit.Fatalf("failed to disassemble %s: %v", file, err)
	}

	if *checkFlag {
		out.Flush()

		same, err := check(file, ".", p.lines)
		if err != nil {
			atexit.Fatalf("check failed: %v", err)
		}

		if !same {
			fmt.Fprintln(os.Stderr, "=== Error, not the same")
			atexit.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "=== Ok")
	}

	atexit.Exit(0)
}
