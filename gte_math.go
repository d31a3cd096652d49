// gte_math.go - Saturating fixed-point helpers shared by the GTE opcodes

/*
 ██▀███   ▒█████    ▄████ ▓█████  ███▄ ▄███▓
▓██ ▒ ██▒▒██▒  ██▒ ██▒ ▀█▒▓█   ▀ ▓██▒▀█▀ ██▒
▓██ ░▄█ ▒▒██░  ██▒▒██░▄▄▄░▒███   ▓██    ▓██░
▒██▀▀█▄  ▒██   ██░░▓█  ██▓▒▓█  ▄ ▒██    ▒██
░██▓ ▒██▒░ ████▓▒░░▒▓███▀▒░▒████▒▒██▒   ░██▒

(c) 2026 rogem contributors
https://github.com/rogem-emu/rogem

License: GPLv3 or later
*/

package rogem

// FLAG register bit positions. Bit 31 (error summary) is derived, never set directly here.
const (
	flagBitMAC1Neg    = 12
	flagBitMAC2Neg    = 13
	flagBitMAC3Neg    = 14
	flagBitIR1Sat     = 18
	flagBitIR2Sat     = 19
	flagBitIR3Sat     = 20
	flagBitColorRSat  = 23
	flagBitColorGSat  = 22
	flagBitColorBSat  = 21
	flagBitSZ3Sat     = 24
	flagBitDivideOvf  = 25
	flagBitMAC0NegOvf = 26
	flagBitMAC0PosOvf = 27
	flagBitSX2Sat     = 28
	flagBitSY2Sat     = 29
	flagBitIR0Sat     = 30

	flagBitMAC1Pos = 15
	flagBitMAC2Pos = 16
	flagBitMAC3Pos = 17
)

func (g *GTE) setFlagBit(bit uint) {
	g.control[gteFLAG] |= 1 << bit
}

// clearFlag resets FLAG to zero. Called at the start of every instruction.
func (g *GTE) clearFlag() {
	g.control[gteFLAG] = 0
}

// flushFlag recomputes the bit-31 error-summary bit from the bits
// accumulated during the instruction, mirroring Ctc's own FLAG write
// path.
func (g *GTE) flushFlag() {
	v := g.control[gteFLAG]
	if v&(flagErrorHighMask|flagErrorLowMask) != 0 {
		v |= 1 << 31
	}
	g.control[gteFLAG] = v
}

// mac43 range bounds: a MAC1/2/3 accumulator is a 44-bit signed value in
// hardware (43 bits of magnitude plus sign); values outside [-2^43, 2^43)
// set the matching overflow flag and are truncated to 32 bits for
// storage.
const (
	mac43Min = -(int64(1) << 43)
	mac43Max = (int64(1) << 43) - 1
	mac31Min = -(int64(1) << 31)
	mac31Max = (int64(1) << 31) - 1
)

// setMAC stores one of MAC1/2/3, flagging + truncating on overflow.
func (g *GTE) setMAC(which int, v int64, posBit, negBit uint) int32 {
	if v > mac43Max {
		g.setFlagBit(posBit)
	} else if v < mac43Min {
		g.setFlagBit(negBit)
	}
	truncated := int32(uint32(v))
	g.data[which] = uint32(truncated)
	return truncated
}

func (g *GTE) setMAC1(v int64) int32 { return g.setMAC(gteMAC1, v, flagBitMAC1Pos, flagBitMAC1Neg) }
func (g *GTE) setMAC2(v int64) int32 { return g.setMAC(gteMAC2, v, flagBitMAC2Pos, flagBitMAC2Neg) }
func (g *GTE) setMAC3(v int64) int32 { return g.setMAC(gteMAC3, v, flagBitMAC3Pos, flagBitMAC3Neg) }

// setMAC0 stores the scalar accumulator, whose overflow range is 31 bits
// rather than 43.
func (g *GTE) setMAC0(v int64) int32 {
	if v > mac31Max {
		g.setFlagBit(flagBitMAC0PosOvf)
	} else if v < mac31Min {
		g.setFlagBit(flagBitMAC0NegOvf)
	}
	truncated := int32(uint32(v))
	g.data[gteMAC0] = uint32(truncated)
	return truncated
}

// saturateIR clamps a MAC accumulator value into IR1/2/3's representable
// range: [-0x8000, 0x7FFF] normally, [0, 0x7FFF] when lm is set.
func saturateIR(v int64, lm bool) (int16, bool) {
	lo, hi := int64(-0x8000), int64(0x7FFF)
	if lm {
		lo = 0
	}
	if v < lo {
		return int16(lo), true
	}
	if v > hi {
		return int16(hi), true
	}
	return int16(v), false
}

func (g *GTE) setIR1(v int64, lm bool) int16 {
	r, sat := saturateIR(v, lm)
	g.data[gteIR1] = uint32(int32(r))
	if sat {
		g.setFlagBit(flagBitIR1Sat)
	}
	return r
}

func (g *GTE) setIR2(v int64, lm bool) int16 {
	r, sat := saturateIR(v, lm)
	g.data[gteIR2] = uint32(int32(r))
	if sat {
		g.setFlagBit(flagBitIR2Sat)
	}
	return r
}

func (g *GTE) setIR3(v int64, lm bool) int16 {
	r, sat := saturateIR(v, lm)
	g.data[gteIR3] = uint32(int32(r))
	if sat {
		g.setFlagBit(flagBitIR3Sat)
	}
	return r
}

// setIR0 is IR0's own saturation range: [0x0000, 0x1000] per hardware,
// always unsigned-lm regardless of the instruction's lm bit.
func (g *GTE) setIR0(v int64) int16 {
	if v < 0 {
		g.setFlagBit(flagBitIR0Sat)
		v = 0
	} else if v > 0x1000 {
		g.setFlagBit(flagBitIR0Sat)
		v = 0x1000
	}
	g.data[gteIR0] = uint32(int32(v))
	return int16(v)
}

// saturateColor clamps an 8-bit color channel, flagging on clamp.
func (g *GTE) saturateColor(v int64, bit uint) uint8 {
	if v < 0 {
		g.setFlagBit(bit)
		return 0
	}
	if v > 0xFF {
		g.setFlagBit(bit)
		return 0xFF
	}
	return uint8(v)
}

// saturateSZ3 clamps SZ3/OTZ to [0, 0xFFFF].
func (g *GTE) saturateSZ3(v int64) uint16 {
	if v < 0 {
		g.setFlagBit(flagBitSZ3Sat)
		return 0
	}
	if v > 0xFFFF {
		g.setFlagBit(flagBitSZ3Sat)
		return 0xFFFF
	}
	return uint16(v)
}

// saturateSX/SY clamp the projected screen coordinates to signed 11 bits:
// [-0x400, 0x3FF].
func (g *GTE) saturateSX(v int64) int16 {
	if v < -0x400 {
		g.setFlagBit(flagBitSX2Sat)
		return -0x400
	}
	if v > 0x3FF {
		g.setFlagBit(flagBitSX2Sat)
		return 0x3FF
	}
	return int16(v)
}

func (g *GTE) saturateSY(v int64) int16 {
	if v < -0x400 {
		g.setFlagBit(flagBitSY2Sat)
		return -0x400
	}
	if v > 0x3FF {
		g.setFlagBit(flagBitSY2Sat)
		return 0x3FF
	}
	return int16(v)
}

// divideUNR approximates the chip's unsigned Newton-Raphson reciprocal
// used to perform the perspective divide H/SZ3. Bit-exact UNR table
// reproduction is not attempted; the documented overflow condition and
// clamp are reproduced exactly.
func (g *GTE) divideUNR(h uint16, sz3 uint16) uint32 {
	if sz3 == 0 || uint32(h) <= uint32(sz3)/2 {
		g.setFlagBit(flagBitDivideOvf)
		return 0x1FFFF
	}
	result := (uint64(h) << 17) / uint64(sz3)
	if result > 0x1FFFF {
		g.setFlagBit(flagBitDivideOvf)
		result = 0x1FFFF
	}
	return uint32(result)
}
