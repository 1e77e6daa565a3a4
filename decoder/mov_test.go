package decoder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parseMov", func() {
	It("should reject an invalid form", func() {
		_, err := parseMov(newReader([]byte{0x90}), Mov_Invalid)
		Expect(err).To(HaveOccurred())
	})

	It("should record the form and size", func() {
		r := newReader([]byte{0xb0, 0xff, 0xa3, 0xfa, 0x09})

		ins, err := parseMov(r, Mov_Immediate_To_Register)
		Expect(err).NotTo(HaveOccurred())
		Expect(ins.Form).To(Equal(Mov_Immediate_To_Register))
		Expect(ins.Size).To(Equal(2))
		Expect(ins.Src).To(Equal(immediateOperand(-1)))

		ins, err = parseMov(r, Mov_Accumulator_To_Memory)
		Expect(err).NotTo(HaveOccurred())
		Expect(ins.Offset).To(Equal(2))
		Expect(ins.Size).To(Equal(3))
		Expect(ins.Dest).To(Equal(directOperand(2554)))
		Expect(ins.Src).To(Equal(registerOperand(0, 1)))
		Expect(ins.String()).To(Equal("mov [2554], ax"))
	})

	It("should use the word accumulator for byte forms", func() {
		ins, err := parseMov(newReader([]byte{0xa2, 0x01, 0x00}), Mov_Accumulator_To_Memory)
		Expect(err).NotTo(HaveOccurred())
		Expect(ins.Disassemble()).To(Equal("mov [1], ax"))
	})

	It("should honor the direction bit for direct addresses", func() {
		ins, err := parseMov(newReader([]byte{0x8b, 0x1e, 0x34, 0x12}), Mov_RegisterOrMemory_ToOrFrom_Register)
		Expect(err).NotTo(HaveOccurred())
		Expect(ins.Disassemble()).To(Equal("mov bx, [4660]"))
		Expect(ins.Size).To(Equal(4))
	})
})
