package cpu

// aluResult carries an 8-bit result and the four flags it produces.
type aluResult struct {
	res         byte
	z, n, h, cy bool
}

// Flags are always computed from the operands, widened so that wraparound
// in the result cannot hide a carry.

func add8(a, b byte) aluResult {
	r := uint16(a) + uint16(b)
	return aluResult{
		res: byte(r),
		z:   byte(r) == 0,
		h:   (a&0x0F)+(b&0x0F) > 0x0F,
		cy:  r > 0xFF,
	}
}

func adc8(a, b byte, carryIn bool) aluResult {
	ci := byte(0)
	if carryIn {
		ci = 1
	}
	r := uint16(a) + uint16(b) + uint16(ci)
	return aluResult{
		res: byte(r),
		z:   byte(r) == 0,
		h:   (a&0x0F)+(b&0x0F)+ci > 0x0F,
		cy:  r > 0xFF,
	}
}

func sub8(a, b byte) aluResult {
	r := a - b
	return aluResult{
		res: r,
		z:   r == 0,
		n:   true,
		h:   a&0x0F < b&0x0F,
		cy:  uint16(a) < uint16(b),
	}
}

func sbc8(a, b byte, carryIn bool) aluResult {
	ci := byte(0)
	if carryIn {
		ci = 1
	}
	r := a - b - ci
	return aluResult{
		res: r,
		z:   r == 0,
		n:   true,
		h:   a&0x0F < b&0x0F+ci,
		cy:  uint16(a) < uint16(b)+uint16(ci),
	}
}

func and8(a, b byte) aluResult {
	r := a & b
	return aluResult{res: r, z: r == 0, h: true}
}

func xor8(a, b byte) aluResult {
	r := a ^ b
	return aluResult{res: r, z: r == 0}
}

func or8(a, b byte) aluResult {
	r := a | b
	return aluResult{res: r, z: r == 0}
}

// inc8 and dec8 leave carry alone; the caller passes the current value.
func inc8(v byte, carry bool) aluResult {
	r := v + 1
	return aluResult{res: r, z: r == 0, h: v&0x0F == 0x0F, cy: carry}
}

func dec8(v byte, carry bool) aluResult {
	r := v - 1
	return aluResult{res: r, z: r == 0, n: true, h: v&0x0F == 0x00, cy: carry}
}

// add16 is ADD HL,rr. Zero is not part of the result; callers keep the old Z.
func add16(a, b uint16) (res uint16, h, cy bool) {
	r := uint32(a) + uint32(b)
	return uint16(r), (a&0x0FFF)+(b&0x0FFF) > 0x0FFF, r > 0xFFFF
}

// addSPOffset is SP+e8 as used by ADD SP,e8 and LD HL,SP+e8. H and C come
// from the unsigned low-byte addition.
func addSPOffset(sp uint16, e byte) (res uint16, h, cy bool) {
	res = uint16(int32(sp) + int32(int8(e)))
	h = (sp&0x000F)+uint16(e&0x0F) > 0x000F
	cy = (sp&0x00FF)+uint16(e) > 0x00FF
	return
}

// daa adjusts A after a BCD add or subtract. In the additive path the
// correction can only raise carry, never clear it.
func daa(a byte, n, h, carry bool) (byte, bool) {
	if !n {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if h || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if h {
			a -= 0x06
		}
	}
	return a, carry
}

// rotate/shift group shared by the accumulator rotates and the 0xCB table.
// Each returns the result and the bit shifted out.

func rlc(v byte) (byte, bool) { return v<<1 | v>>7, v&0x80 != 0 }
func rrc(v byte) (byte, bool) { return v>>1 | v<<7, v&0x01 != 0 }

func rl(v byte, carry bool) (byte, bool) {
	r := v << 1
	if carry {
		r |= 0x01
	}
	return r, v&0x80 != 0
}

func rr(v byte, carry bool) (byte, bool) {
	r := v >> 1
	if carry {
		r |= 0x80
	}
	return r, v&0x01 != 0
}

func sla(v byte) (byte, bool)  { return v << 1, v&0x80 != 0 }
func sra(v byte) (byte, bool)  { return v>>1 | v&0x80, v&0x01 != 0 }
func swap(v byte) (byte, bool) { return v<<4 | v>>4, false }
func srl(v byte) (byte, bool)  { return v >> 1, v&0x01 != 0 }
