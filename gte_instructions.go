// gte_instructions.go - Cop2 instruction set

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

// gteOpcode decodes the bitfields of a GTE instruction word shared by
// every opcode.
type gteOpcode struct {
	raw uint32
	fn  uint32
	sf  bool
	mx  uint32
	vx  uint32
	tx  uint32
	lm  bool
}

func decodeGTEOpcode(raw uint32) gteOpcode {
	return gteOpcode{
		raw: raw,
		fn:  raw & 0x3F,
		sf:  (raw>>19)&1 != 0,
		mx:  (raw >> 17) & 3,
		vx:  (raw >> 15) & 3,
		tx:  (raw >> 13) & 3,
		lm:  (raw>>10)&1 != 0,
	}
}

func (op gteOpcode) shift() uint {
	if op.sf {
		return 12
	}
	return 0
}

type vec3 struct{ x, y, z int32 }

func (g *GTE) vector(n int) vec3 {
	switch n {
	case 0:
		return vec3{int32(lo16(g.data[gteVXY0])), int32(hi16(g.data[gteVXY0])), int32(g.data[gteVZ0])}
	case 1:
		return vec3{int32(lo16(g.data[gteVXY1])), int32(hi16(g.data[gteVXY1])), int32(g.data[gteVZ1])}
	default:
		return vec3{int32(lo16(g.data[gteVXY2])), int32(hi16(g.data[gteVXY2])), int32(g.data[gteVZ2])}
	}
}

func (g *GTE) ir() vec3 {
	return vec3{int32(g.data[gteIR1]), int32(g.data[gteIR2]), int32(g.data[gteIR3])}
}

type mat3 [3][3]int32

// matrix reads one of the three selectable 3x3 matrices used by MVMVA/the
// fixed-function opcodes: 0=rotation (RT), 1=light (LLM), 2=color (LCM).
// mx==3 selects a degenerate "garbage" matrix on real hardware; treated
// as the zero matrix here since it is never exercised by well-formed
// display lists.
func (g *GTE) matrix(which uint32) mat3 {
	var base int
	switch which {
	case 0:
		base = gteR11R12
	case 1:
		base = gteL11L12
	case 2:
		base = gteLR1LR2
	default:
		return mat3{}
	}
	switch which {
	case 0:
		return mat3{
			{int32(lo16(g.control[base])), int32(hi16(g.control[base])), int32(lo16(g.control[base+1]))},
			{int32(hi16(g.control[base+1])), int32(lo16(g.control[base+2])), int32(hi16(g.control[base+2]))},
			{int32(lo16(g.control[base+3])), int32(hi16(g.control[base+3])), int32(g.control[gteR33])},
		}
	default:
		return mat3{
			{int32(lo16(g.control[base])), int32(hi16(g.control[base])), int32(lo16(g.control[base+1]))},
			{int32(hi16(g.control[base+1])), int32(lo16(g.control[base+2])), int32(hi16(g.control[base+2]))},
			{int32(lo16(g.control[base+3])), int32(hi16(g.control[base+3])), int32(g.control[base+4])},
		}
	}
}

func (g *GTE) translation(which uint32) vec3 {
	switch which {
	case 0:
		return vec3{int32(g.control[gteTRX]), int32(g.control[gteTRY]), int32(g.control[gteTRZ])}
	case 1:
		return vec3{int32(g.control[gteRBK]), int32(g.control[gteGBK]), int32(g.control[gteBBK])}
	case 2:
		return vec3{int32(g.control[gteRFC]), int32(g.control[gteGFC]), int32(g.control[gteBFC])}
	default:
		return vec3{}
	}
}

func (g *GTE) rgbc() (r, gc, b, code uint8) {
	v := g.data[gteRGBC]
	return uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)
}

// multiplyAddMatrix computes (m . v) + t, writing MAC1/2/3 and IR1/2/3.
// This is the workhorse behind MVMVA and every fixed-function lighting
// opcode.
func (g *GTE) multiplyAddMatrix(m mat3, v vec3, t vec3, shift uint, lm bool) {
	mac1 := (int64(t.x) << 12) + int64(m[0][0])*int64(v.x) + int64(m[0][1])*int64(v.y) + int64(m[0][2])*int64(v.z)
	mac2 := (int64(t.y) << 12) + int64(m[1][0])*int64(v.x) + int64(m[1][1])*int64(v.y) + int64(m[1][2])*int64(v.z)
	mac3 := (int64(t.z) << 12) + int64(m[2][0])*int64(v.x) + int64(m[2][1])*int64(v.y) + int64(m[2][2])*int64(v.z)

	m1 := g.setMAC1(mac1 >> shift)
	m2 := g.setMAC2(mac2 >> shift)
	m3 := g.setMAC3(mac3 >> shift)

	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
}

// pushScreenFromZ performs the final RTPS/RTPT steps shared by both:
// divide by depth, scale by the screen-space offsets, push SXY/SZ.
func (g *GTE) pushScreenFromZ(sz uint16) {
	g.pushSZ(sz)
	h := uint16(g.control[gteH])
	quotient := g.divideUNR(h, sz)

	ofx := int64(int32(g.control[gteOFX]))
	ofy := int64(int32(g.control[gteOFY]))
	irx := int64(int32(g.data[gteIR1]))
	iry := int64(int32(g.data[gteIR2]))

	sx := (irx*int64(quotient) + ofx) >> 16
	sy := (iry*int64(quotient) + ofy) >> 16
	g.pushSXY(g.saturateSX(sx), g.saturateSY(sy))

	dqa := int64(int32(int16(uint16(g.control[gteDQA]))))
	dqb := int64(int32(g.control[gteDQB]))
	mac0 := dqb + dqa*int64(quotient)
	g.setMAC0(mac0)
	g.setIR0(mac0 >> 12)
}

func (g *GTE) rtps(v vec3) {
	rt := g.matrix(0)
	tr := g.translation(0)
	g.multiplyAddMatrixRTPS(rt, v, tr)
	sz := g.saturateSZ3(int64(g.data[gteMAC3]))
	g.pushScreenFromZ(sz)
}

// multiplyAddMatrixRTPS is multiplyAddMatrix specialised to always use a
// 12-bit shift, matching RTPS/RTPT's fixed behaviour regardless of sf.
func (g *GTE) multiplyAddMatrixRTPS(m mat3, v vec3, t vec3) {
	g.multiplyAddMatrix(m, v, t, 12, false)
}

func (g *GTE) nclip() {
	sx0 := int64(int32(lo16(g.data[gteSXY0])))
	sy0 := int64(int32(hi16(g.data[gteSXY0])))
	sx1 := int64(int32(lo16(g.data[gteSXY1])))
	sy1 := int64(int32(hi16(g.data[gteSXY1])))
	sx2 := int64(int32(lo16(g.data[gteSXY2])))
	sy2 := int64(int32(hi16(g.data[gteSXY2])))

	v := sx0*(sy1-sy2) + sx1*(sy2-sy0) + sx2*(sy0-sy1)
	g.setMAC0(v)
}

func (g *GTE) op(shift uint, lm bool) {
	rt := g.matrix(0)
	ir := g.ir()

	mac1 := int64(rt[1][1])*int64(ir.z) - int64(rt[2][2])*int64(ir.y)
	mac2 := int64(rt[2][2])*int64(ir.x) - int64(rt[0][0])*int64(ir.z)
	mac3 := int64(rt[0][0])*int64(ir.y) - int64(rt[1][1])*int64(ir.x)

	m1 := g.setMAC1(mac1 >> shift)
	m2 := g.setMAC2(mac2 >> shift)
	m3 := g.setMAC3(mac3 >> shift)

	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
}

func (g *GTE) sqr(shift uint, lm bool) {
	ir := g.ir()
	m1 := g.setMAC1((int64(ir.x) * int64(ir.x)) >> shift)
	m2 := g.setMAC2((int64(ir.y) * int64(ir.y)) >> shift)
	m3 := g.setMAC3((int64(ir.z) * int64(ir.z)) >> shift)
	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
}

func (g *GTE) avsz3() {
	zsf3 := int64(int32(int16(uint16(g.control[gteZSF3]))))
	sum := int64(g.data[gteSZ1]) + int64(g.data[gteSZ2]) + int64(g.data[gteSZ3])
	mac0 := zsf3 * sum
	g.setMAC0(mac0)
	g.data[gteOTZ] = uint32(g.saturateSZ3(mac0 >> 12))
}

func (g *GTE) avsz4() {
	zsf4 := int64(int32(int16(uint16(g.control[gteZSF4]))))
	sum := int64(g.data[gteSZ0]) + int64(g.data[gteSZ1]) + int64(g.data[gteSZ2]) + int64(g.data[gteSZ3])
	mac0 := zsf4 * sum
	g.setMAC0(mac0)
	g.data[gteOTZ] = uint32(g.saturateSZ3(mac0 >> 12))
}

// mvmva is the general matrix*vector+translation instruction; mx/vx/tx
// select which matrix, vector and translation source feed
// multiplyAddMatrix.
func (g *GTE) mvmva(op gteOpcode) {
	m := g.matrix(op.mx)
	var v vec3
	switch op.vx {
	case 0, 1, 2:
		v = g.vector(int(op.vx))
	default:
		v = g.ir()
	}
	t := g.translation(op.tx)
	g.multiplyAddMatrix(m, v, t, op.shift(), op.lm)
}

// normalColor implements the NCDS/NCDT/NCCS/NCCT/NCS/NCT family:
// light a vertex normal with LLM, apply the color matrix LCM against the
// background color, then modulate by RGBC (and, for the "D" variants,
// depth-cue toward the far color).
func (g *GTE) normalColor(v vec3, shift uint, lm bool, depthCue bool) {
	llm := g.matrix(1)
	g.multiplyAddMatrix(llm, v, vec3{}, shift, lm)

	lcm := g.matrix(2)
	g.multiplyAddMatrix(lcm, g.ir(), g.translation(1), shift, lm)
	irAfterLight := g.ir()
	fc := g.translation(2)
	r, gc, b, code := g.rgbc()

	if depthCue {
		mac1 := int64(r) * int64(irAfterLight.x) << 4
		mac2 := int64(gc) * int64(irAfterLight.y) << 4
		mac3 := int64(b) * int64(irAfterLight.z) << 4
		ir0 := int64(int32(g.data[gteIR0]))
		mac1 = (int64(fc.x)<<12-mac1)*ir0>>12 + mac1
		mac2 = (int64(fc.y)<<12-mac2)*ir0>>12 + mac2
		mac3 = (int64(fc.z)<<12-mac3)*ir0>>12 + mac3
		m1 := g.setMAC1(mac1 >> shift)
		m2 := g.setMAC2(mac2 >> shift)
		m3 := g.setMAC3(mac3 >> shift)
		g.setIR1(int64(m1), lm)
		g.setIR2(int64(m2), lm)
		g.setIR3(int64(m3), lm)
	} else {
		m1 := g.setMAC1((int64(r) * int64(irAfterLight.x) << 4) >> shift)
		m2 := g.setMAC2((int64(gc) * int64(irAfterLight.y) << 4) >> shift)
		m3 := g.setMAC3((int64(b) * int64(irAfterLight.z) << 4) >> shift)
		g.setIR1(int64(m1), lm)
		g.setIR2(int64(m2), lm)
		g.setIR3(int64(m3), lm)
	}

	cr := g.saturateColor(int64(g.data[gteMAC1])>>4, flagBitColorRSat)
	cg := g.saturateColor(int64(g.data[gteMAC2])>>4, flagBitColorGSat)
	cb := g.saturateColor(int64(g.data[gteMAC3])>>4, flagBitColorBSat)
	g.pushRGB(cr, cg, cb, code)
}

// colorOnly implements CC/CDP: no normal lighting step, go straight from
// RGBC and the already-loaded IR vector into the color matrix.
func (g *GTE) colorOnly(shift uint, lm bool, depthCue bool) {
	g.normalColor(g.ir(), shift, lm, depthCue)
}

func (g *GTE) dpcs(shift uint, lm bool, repeats int) {
	r, gc, b, code := g.rgbc()
	fc := g.translation(2)
	ir0 := int64(int32(g.data[gteIR0]))

	for i := 0; i < repeats; i++ {
		mac1 := int64(r) << 16
		mac2 := int64(gc) << 16
		mac3 := int64(b) << 16
		mac1 = ((int64(fc.x)<<12-mac1)*ir0)>>12 + mac1
		mac2 = ((int64(fc.y)<<12-mac2)*ir0)>>12 + mac2
		mac3 = ((int64(fc.z)<<12-mac3)*ir0)>>12 + mac3
		m1 := g.setMAC1(mac1 >> shift)
		m2 := g.setMAC2(mac2 >> shift)
		m3 := g.setMAC3(mac3 >> shift)
		g.setIR1(int64(m1), lm)
		g.setIR2(int64(m2), lm)
		g.setIR3(int64(m3), lm)
		cr := g.saturateColor(int64(m1)>>4, flagBitColorRSat)
		cg := g.saturateColor(int64(m2)>>4, flagBitColorGSat)
		cb := g.saturateColor(int64(m3)>>4, flagBitColorBSat)
		g.pushRGB(cr, cg, cb, code)
	}
}

func (g *GTE) dcpl(shift uint, lm bool) {
	r, gc, b, code := g.rgbc()
	fc := g.translation(2)
	ir0 := int64(int32(g.data[gteIR0]))
	ir := g.ir()

	mac1 := int64(r) * int64(ir.x) << 4
	mac2 := int64(gc) * int64(ir.y) << 4
	mac3 := int64(b) * int64(ir.z) << 4
	mac1 = ((int64(fc.x)<<12-mac1)*ir0)>>12 + mac1
	mac2 = ((int64(fc.y)<<12-mac2)*ir0)>>12 + mac2
	mac3 = ((int64(fc.z)<<12-mac3)*ir0)>>12 + mac3
	m1 := g.setMAC1(mac1 >> shift)
	m2 := g.setMAC2(mac2 >> shift)
	m3 := g.setMAC3(mac3 >> shift)
	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
	cr := g.saturateColor(int64(m1)>>4, flagBitColorRSat)
	cg := g.saturateColor(int64(m2)>>4, flagBitColorGSat)
	cb := g.saturateColor(int64(m3)>>4, flagBitColorBSat)
	g.pushRGB(cr, cg, cb, code)
}

func (g *GTE) intpl(shift uint, lm bool) {
	ir := g.ir()
	fc := g.translation(2)
	ir0 := int64(int32(g.data[gteIR0]))

	mac1 := int64(ir.x) << 12
	mac2 := int64(ir.y) << 12
	mac3 := int64(ir.z) << 12
	mac1 = ((int64(fc.x)<<12-mac1)*ir0)>>12 + mac1
	mac2 = ((int64(fc.y)<<12-mac2)*ir0)>>12 + mac2
	mac3 = ((int64(fc.z)<<12-mac3)*ir0)>>12 + mac3
	m1 := g.setMAC1(mac1 >> shift)
	m2 := g.setMAC2(mac2 >> shift)
	m3 := g.setMAC3(mac3 >> shift)
	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
	_, _, _, code := g.rgbc()
	cr := g.saturateColor(int64(m1)>>4, flagBitColorRSat)
	cg := g.saturateColor(int64(m2)>>4, flagBitColorGSat)
	cb := g.saturateColor(int64(m3)>>4, flagBitColorBSat)
	g.pushRGB(cr, cg, cb, code)
}

// gpf/gpl are the general-purpose interpolation opcodes: IR*IR0, with GPL
// additionally preloading MAC from the current accumulator before the
// multiply-accumulate.
func (g *GTE) gpf(shift uint, lm bool) {
	ir0 := int64(int32(g.data[gteIR0]))
	ir := g.ir()
	m1 := g.setMAC1((ir0 * int64(ir.x)) >> shift)
	m2 := g.setMAC2((ir0 * int64(ir.y)) >> shift)
	m3 := g.setMAC3((ir0 * int64(ir.z)) >> shift)
	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
	_, _, _, code := g.rgbc()
	cr := g.saturateColor(int64(m1)>>4, flagBitColorRSat)
	cg := g.saturateColor(int64(m2)>>4, flagBitColorGSat)
	cb := g.saturateColor(int64(m3)>>4, flagBitColorBSat)
	g.pushRGB(cr, cg, cb, code)
}

func (g *GTE) gpl(shift uint, lm bool) {
	ir0 := int64(int32(g.data[gteIR0]))
	ir := g.ir()
	mac1 := (int64(int32(g.data[gteMAC1])) << shift) + ir0*int64(ir.x)
	mac2 := (int64(int32(g.data[gteMAC2])) << shift) + ir0*int64(ir.y)
	mac3 := (int64(int32(g.data[gteMAC3])) << shift) + ir0*int64(ir.z)
	m1 := g.setMAC1(mac1 >> shift)
	m2 := g.setMAC2(mac2 >> shift)
	m3 := g.setMAC3(mac3 >> shift)
	g.setIR1(int64(m1), lm)
	g.setIR2(int64(m2), lm)
	g.setIR3(int64(m3), lm)
	_, _, _, code := g.rgbc()
	cr := g.saturateColor(int64(m1)>>4, flagBitColorRSat)
	cg := g.saturateColor(int64(m2)>>4, flagBitColorGSat)
	cb := g.saturateColor(int64(m3)>>4, flagBitColorBSat)
	g.pushRGB(cr, cg, cb, code)
}

// Execute runs one Cop2 instruction. FLAG is always
// cleared first.
func (g *GTE) Execute(opcode uint32) {
	g.clearFlag()
	op := decodeGTEOpcode(opcode)
	shift := op.shift()

	switch op.fn {
	case 0x01: // RTPS
		g.rtps(g.vector(0))
	case 0x06: // NCLIP
		g.nclip()
	case 0x0C: // OP
		g.op(shift, op.lm)
	case 0x10: // DPCS
		g.dpcs(shift, op.lm, 1)
	case 0x11: // INTPL
		g.intpl(shift, op.lm)
	case 0x12: // MVMVA
		g.mvmva(op)
	case 0x13: // NCDS
		g.normalColor(g.vector(0), shift, op.lm, true)
	case 0x14: // CDP
		g.colorOnly(shift, op.lm, true)
	case 0x16: // NCDT
		g.normalColor(g.vector(0), shift, op.lm, true)
		g.normalColor(g.vector(1), shift, op.lm, true)
		g.normalColor(g.vector(2), shift, op.lm, true)
	case 0x1B: // NCCS
		g.normalColor(g.vector(0), shift, op.lm, false)
	case 0x1C: // CC
		g.colorOnly(shift, op.lm, false)
	case 0x1E: // NCS
		g.normalColor(g.vector(0), shift, op.lm, false)
	case 0x20: // NCT
		g.normalColor(g.vector(0), shift, op.lm, false)
		g.normalColor(g.vector(1), shift, op.lm, false)
		g.normalColor(g.vector(2), shift, op.lm, false)
	case 0x28: // SQR
		g.sqr(shift, op.lm)
	case 0x29: // DCPL
		g.dcpl(shift, op.lm)
	case 0x2A: // DPCT
		g.dpcs(shift, op.lm, 3)
	case 0x2D: // AVSZ3
		g.avsz3()
	case 0x2E: // AVSZ4
		g.avsz4()
	case 0x30: // RTPT
		g.rtps(g.vector(0))
		g.rtps(g.vector(1))
		g.rtps(g.vector(2))
	case 0x3D: // GPF
		g.gpf(shift, op.lm)
	case 0x3E: // GPL
		g.gpl(shift, op.lm)
	case 0x3F: // NCCT
		g.normalColor(g.vector(0), shift, op.lm, false)
		g.normalColor(g.vector(1), shift, op.lm, false)
		g.normalColor(g.vector(2), shift, op.lm, false)
	}

	g.flushFlag()
}
