// memory_control.go - Memory-Control register files

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

// MemoryControl1 holds the nine 32-bit I/O-delay registers at
// 0x1F801000..0x1F801024. 8/16-bit access is unsupported on
// real hardware and is unhandled here too: reads yield 0, writes are
// dropped, both with a diagnostic.
type MemoryControl1 struct {
	registers [9]uint32
	diags     *Diagnostics
}

func NewMemoryControl1(diags *Diagnostics) *MemoryControl1 {
	return &MemoryControl1{diags: diags}
}

func (m *MemoryControl1) regIndex(addr uint32) (int, bool) {
	off := MemoryControl1Range.Offset(addr)
	idx := off / 4
	if idx >= uint32(len(m.registers)) {
		return 0, false
	}
	return int(idx), true
}

func (m *MemoryControl1) Read32(addr uint32) uint32 {
	idx, ok := m.regIndex(addr)
	if !ok {
		m.diags.Warnf("MemoryControl1: read word out of range at 0x%08X", addr)
		return 0
	}
	return m.registers[idx]
}

func (m *MemoryControl1) Write32(addr uint32, val uint32) {
	idx, ok := m.regIndex(addr)
	if !ok {
		m.diags.Warnf("MemoryControl1: write word out of range at 0x%08X", addr)
		return
	}
	m.registers[idx] = val
}

func (m *MemoryControl1) Read8(addr uint32) uint8 {
	m.diags.Warnf("MemoryControl1: unhandled read byte at 0x%08X", addr)
	return 0
}

func (m *MemoryControl1) Read16(addr uint32) uint16 {
	m.diags.Warnf("MemoryControl1: unhandled read halfword at 0x%08X", addr)
	return 0
}

func (m *MemoryControl1) Write8(addr uint32, _ uint8) {
	m.diags.Warnf("MemoryControl1: unhandled write byte at 0x%08X", addr)
}

func (m *MemoryControl1) Write16(addr uint32, _ uint16) {
	m.diags.Warnf("MemoryControl1: unhandled write halfword at 0x%08X", addr)
}

// MemoryControl2 is the single RAM_SIZE register at 0x1F801060.
type MemoryControl2 struct {
	ramSize uint32
	diags   *Diagnostics
}

func NewMemoryControl2(diags *Diagnostics) *MemoryControl2 {
	return &MemoryControl2{diags: diags}
}

func (m *MemoryControl2) Read32(addr uint32) uint32 {
	if MemoryControl2Range.Offset(addr) != 0 {
		m.diags.Warnf("MemoryControl2: read word out of range at 0x%08X", addr)
		return 0
	}
	return m.ramSize
}

func (m *MemoryControl2) Write32(addr uint32, val uint32) {
	if MemoryControl2Range.Offset(addr) != 0 {
		m.diags.Warnf("MemoryControl2: write word out of range at 0x%08X", addr)
		return
	}
	m.ramSize = val
}

func (m *MemoryControl2) Read8(addr uint32) uint8 {
	m.diags.Warnf("MemoryControl2: unhandled read byte at 0x%08X", addr)
	return 0
}

func (m *MemoryControl2) Read16(addr uint32) uint16 {
	m.diags.Warnf("MemoryControl2: unhandled read halfword at 0x%08X", addr)
	return 0
}

func (m *MemoryControl2) Write8(addr uint32, _ uint8) {
	m.diags.Warnf("MemoryControl2: unhandled write byte at 0x%08X", addr)
}

func (m *MemoryControl2) Write16(addr uint32, _ uint16) {
	m.diags.Warnf("MemoryControl2: unhandled write halfword at 0x%08X", addr)
}
