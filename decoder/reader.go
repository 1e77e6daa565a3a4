package decoder

// Reader is a forward-only view over an instruction stream.
// idx never moves backward.
type Reader struct {
	idx int
	buf []byte
}

func newReader(buf []byte) *Reader {
	return &Reader{0, buf}
}

func (r *Reader) isEmpty() bool {
	return r.idx >= len(r.buf)
}

func (r *Reader) offset() int {
	return r.idx
}

func (r *Reader) remaining() int {
	result := len(r.buf) - r.idx

	if result < 0 {
		return 0
	}

	return result
}

func (r *Reader) peek() (byte, error) {
	if r.isEmpty() {
		return 0, ErrUnexpectedEndOfStream
	}

	return r.buf[r.idx], nil
}

// peekN returns up to n upcoming bytes without consuming them.
func (r *Reader) peekN(n int) []byte {
	n = min(n, r.remaining())
	return r.buf[r.idx : r.idx+n]
}

func (r *Reader) read() (byte, error) {
	if r.idx >= len(r.buf) {
		return 0, ErrUnexpectedEndOfStream
	}

	result := r.buf[r.idx]
	r.idx += 1
	return result, nil
}

func (r *Reader) readN(n int) ([]byte, error) {
	if n > r.remaining() {
		return nil, ErrUnexpectedEndOfStream
	}

	result := r.buf[r.idx : r.idx+n]
	r.idx += n
	return result, nil
}

// little endian
func (r *Reader) readUint16() (uint16, error) {
	buf, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	low := uint16(buf[0])
	high := uint16(buf[1])
	return (high << 8) | low, nil
}

func (r *Reader) readInt16() (int16, error) {
	result, err := r.readUint16()
	return int16(result), err
}

func (r *Reader) readInt8() (int8, error) {
	result, err := r.read()
	return int8(result), err
}

// readInt16W reads a word when wide is set, otherwise a byte sign-extended
// to 16 bits.
func (r *Reader) readInt16W(wide bool) (int16, error) {
	if wide {
		return r.readInt16()
	}

	result, err := r.readInt8()
	return int16(result), err
}
