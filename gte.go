// gte.go - Geometry Transformation Engine (Cop2) register file

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

// GTE implements the coprocessor-2 data/control register file and its
// fixed-point instruction set. A GTE is never shared across
// threads; it is exclusively owned by whichever goroutine drives the CPU.
type GTE struct {
	data    [32]uint32
	control [32]uint32
	flag    uint32
}

func NewGTE() *GTE {
	g := &GTE{}
	return g
}

// Data register indices.
const (
	gteVXY0 = 0
	gteVZ0  = 1
	gteVXY1 = 2
	gteVZ1  = 3
	gteVXY2 = 4
	gteVZ2  = 5
	gteRGBC = 6
	gteOTZ  = 7
	gteIR0  = 8
	gteIR1  = 9
	gteIR2  = 10
	gteIR3  = 11
	gteSXY0 = 12
	gteSXY1 = 13
	gteSXY2 = 14
	gteSXYP = 15
	gteSZ0  = 16
	gteSZ1  = 17
	gteSZ2  = 18
	gteSZ3  = 19
	gteRGB0 = 20
	gteRGB1 = 21
	gteRGB2 = 22
	gteRES1 = 23
	gteMAC0 = 24
	gteMAC1 = 25
	gteMAC2 = 26
	gteMAC3 = 27
	gteIRGB = 28
	gteORGB = 29
	gteLZCS = 30
	gteLZCR = 31
)

// Control register indices.
const (
	gteR11R12 = 0
	gteR13R21 = 1
	gteR22R23 = 2
	gteR31R32 = 3
	gteR33    = 4
	gteTRX    = 5
	gteTRY    = 6
	gteTRZ    = 7
	gteL11L12 = 8
	gteL13L21 = 9
	gteL22L23 = 10
	gteL31L32 = 11
	gteL33    = 12
	gteRBK    = 13
	gteGBK    = 14
	gteBBK    = 15
	gteLR1LR2 = 16
	gteLR3LG1 = 17
	gteLG2LG3 = 18
	gteLB1LB2 = 19
	gteLB3    = 20
	gteRFC    = 21
	gteGFC    = 22
	gteBFC    = 23
	gteOFX    = 24
	gteOFY    = 25
	gteH      = 26
	gteDQA    = 27
	gteDQB    = 28
	gteZSF3   = 29
	gteZSF4   = 30
	gteFLAG   = 31
)

func signExtend16(v uint32) int32 { return int32(int16(uint16(v))) }

func lo16(v uint32) int16 { return int16(uint16(v)) }
func hi16(v uint32) int16 { return int16(uint16(v >> 16)) }

func pack16(lo, hi int16) uint32 { return uint32(uint16(lo)) | uint32(uint16(hi))<<16 }

// Mtc writes data register i, applying its type-specific side effects.
func (g *GTE) Mtc(i int, value uint32) {
	switch i {
	case gteVZ0, gteVZ1, gteVZ2:
		g.data[i] = uint32(int32(int16(uint16(value))))
	case gteOTZ:
		g.data[i] = uint32(uint16(value))
	case gteIR0, gteIR1, gteIR2, gteIR3:
		g.data[i] = uint32(int32(int16(uint16(value))))
	case gteSXYP:
		g.pushSXY(int16(uint16(value)), int16(uint16(value>>16)))
	case gteIRGB:
		g.data[gteIRGB] = value & 0x7FFF
		g.data[gteORGB] = value & 0x7FFF
		g.data[gteIR1] = uint32(int32((value & 0x1F) * 0x80))
		g.data[gteIR2] = uint32(int32(((value >> 5) & 0x1F) * 0x80))
		g.data[gteIR3] = uint32(int32(((value >> 10) & 0x1F) * 0x80))
	case gteORGB:
		// read-only mirror of IRGB: writes are dropped.
	case gteLZCS:
		g.data[gteLZCS] = value
		g.data[gteLZCR] = uint32(countLeadingSameBits(value))
	case gteLZCR:
		// read-only: writes are dropped.
	default:
		g.data[i] = value
	}
}

// Mfc reads data register i, applying its read-side mirroring rules.
func (g *GTE) Mfc(i int) uint32 {
	switch i {
	case gteVZ0, gteVZ1, gteVZ2, gteIR0, gteIR1, gteIR2, gteIR3:
		return g.data[i]
	case gteIRGB, gteORGB:
		return g.packIRGB()
	default:
		return g.data[i]
	}
}

func (g *GTE) packIRGB() uint32 {
	r := clampU5(int32(g.data[gteIR1]) / 0x80)
	gg := clampU5(int32(g.data[gteIR2]) / 0x80)
	b := clampU5(int32(g.data[gteIR3]) / 0x80)
	return uint32(r) | uint32(gg)<<5 | uint32(b)<<10
}

func clampU5(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 0x1F {
		return 0x1F
	}
	return v
}

// countLeadingSameBits counts leading bits equal to the sign (bit 31) of
// v, PlayStation's LZCS/LZCR leading-zero/one counter.
func countLeadingSameBits(v uint32) int {
	sign := v >> 31
	count := 0
	for i := 31; i >= 0; i-- {
		if (v>>uint(i))&1 != sign {
			break
		}
		count++
	}
	return count
}

// flagErrorHighMask and flagErrorLowMask cover bits 23..30 and 13..18;
// FLAG bit 31 is the OR of all of them.
const (
	flagErrorHighMask = 0x7F800000 // bits 30..23
	flagErrorLowMask  = 0x0007E000 // bits 18..13
)

// Ctc writes control register i; writing FLAG recomputes the
// error-summary bit.
func (g *GTE) Ctc(i int, value uint32) {
	if i == gteFLAG {
		v := value & 0x7FFFF000
		if v&(flagErrorHighMask|flagErrorLowMask) != 0 {
			v |= 1 << 31
		}
		g.control[gteFLAG] = v
		g.flag = v
		return
	}
	g.control[i] = value
}

// Cfc reads control register i directly.
func (g *GTE) Cfc(i int) uint32 {
	return g.control[i]
}

func (g *GTE) pushSXY(x, y int16) {
	g.data[gteSXY0] = g.data[gteSXY1]
	g.data[gteSXY1] = g.data[gteSXY2]
	g.data[gteSXY2] = pack16(x, y)
}

func (g *GTE) pushSZ(z uint16) {
	g.data[gteSZ0] = g.data[gteSZ1]
	g.data[gteSZ1] = g.data[gteSZ2]
	g.data[gteSZ2] = g.data[gteSZ3]
	g.data[gteSZ3] = uint32(z)
}

func (g *GTE) pushRGB(r, gc, b, code uint8) {
	g.data[gteRGB0] = g.data[gteRGB1]
	g.data[gteRGB1] = g.data[gteRGB2]
	g.data[gteRGB2] = uint32(r) | uint32(gc)<<8 | uint32(b)<<16 | uint32(code)<<24
}

// Flag returns the current FLAG register value.
func (g *GTE) Flag() uint32 { return g.control[gteFLAG] }
