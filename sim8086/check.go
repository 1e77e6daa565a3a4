package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var nasmCommand = "nasm"

// check reassembles our output with nasm and compares it to the input
// binary.
// source: a
// our disassemble: <dir>/a.sim8086.asm
// nasm reassemble: <dir>/a.sim8086
func check(file string, dir string, lines []string) (bool, error) {
	base := filepath.Base(file)
	asmPath := filepath.Join(dir, fmt.Sprintf("%s.sim8086.asm", base))
	nasmPath := filepath.Join(dir, fmt.Sprintf("%s.sim8086", base))

	result := strings.Join(append([]string{"bits 16"}, lines...), "\n") + "\n"

	if err := os.WriteFile(asmPath, []byte(result), 0644); err != nil {
		return false, fmt.Errorf("could not write result into %s: %w", asmPath, err)
	}

	if err := nasmAssembleFile(asmPath, nasmPath); err != nil {
		return false, fmt.Errorf("nasm error: %w", err)
	}

	same, err := compareTwoFiles(file, nasmPath)
	if err != nil {
		return false, fmt.Errorf("could not compare %s and %s: %w", file, nasmPath, err)
	}

	return same, nil
}

func nasmAssembleFile(src string, dst string) error {
	cmd := exec.Command(nasmCommand, "-o", dst, src)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}
