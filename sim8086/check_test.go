package main

import (
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Check", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "sim8086")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	writeFile := func(name string, content []byte) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, content, 0644)).To(Succeed())
		return path
	}

	It("should compare files by content", func() {
		a := writeFile("a", []byte{0x89, 0xd8})
		b := writeFile("b", []byte{0x89, 0xd8})
		c := writeFile("c", []byte{0x8b, 0xd8})

		same, err := compareTwoFiles(a, b)
		Expect(err).NotTo(HaveOccurred())
		Expect(same).To(BeTrue())

		same, err = compareTwoFiles(a, c)
		Expect(err).NotTo(HaveOccurred())
		Expect(same).To(BeFalse())
	})

	It("should fail on a missing file", func() {
		a := writeFile("a", []byte{0x89, 0xd8})

		_, err := compareTwoFiles(a, filepath.Join(dir, "missing"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("should report nasm failures", func() {
		old := nasmCommand
		nasmCommand = filepath.Join(dir, "no-such-nasm")
		DeferCleanup(func() { nasmCommand = old })

		bin := writeFile("listing", []byte{0x89, 0xd8})
		_, err := check(bin, dir, []string{"mov ax, bx"})
		Expect(err).To(HaveOccurred())
		Expect(filepath.Join(dir, "listing.sim8086.asm")).To(BeARegularFile())
	})

	It("should reassemble to the same binary", func() {
		if _, err := exec.LookPath(nasmCommand); err != nil {
			Skip("nasm is not installed")
		}

		bin := writeFile("listing", []byte{0x89, 0xd8, 0xa1, 0x34, 0x12, 0x8b, 0x41, 0xdb})
		same, err := check(bin, dir, []string{
			"mov ax, bx",
			"mov ax, [4660]",
			"mov ax, [bx + di + -37]",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(same).To(BeTrue())
	})
})
