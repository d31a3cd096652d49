// ram.go - 2 MiB main memory

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

import "encoding/binary"

// RAMSize is the size of main memory in bytes.
const RAMSize = 2 * 1024 * 1024

// RAM is mutable, byte-addressable, little-endian main memory. It enforces
// no alignment; the CPU is responsible for alignment faults upstream.
type RAM struct {
	data  [RAMSize]byte
	diags *Diagnostics
}

func NewRAM(diags *Diagnostics) *RAM {
	return &RAM{diags: diags}
}

func (r *RAM) Read8(addr uint32) uint8 {
	off := RAMRange.Offset(addr)
	if off >= RAMSize {
		r.diags.Warnf("RAM: read byte out of range at 0x%08X", addr)
		return 0
	}
	return r.data[off]
}

func (r *RAM) Read16(addr uint32) uint16 {
	off := RAMRange.Offset(addr)
	if off+2 > RAMSize {
		r.diags.Warnf("RAM: read halfword out of range at 0x%08X", addr)
		return 0
	}
	return binary.LittleEndian.Uint16(r.data[off : off+2])
}

func (r *RAM) Read32(addr uint32) uint32 {
	off := RAMRange.Offset(addr)
	if off+4 > RAMSize {
		r.diags.Warnf("RAM: read word out of range at 0x%08X", addr)
		return 0
	}
	return binary.LittleEndian.Uint32(r.data[off : off+4])
}

func (r *RAM) Write8(addr uint32, val uint8) {
	off := RAMRange.Offset(addr)
	if off >= RAMSize {
		r.diags.Warnf("RAM: write byte out of range at 0x%08X", addr)
		return
	}
	r.data[off] = val
}

func (r *RAM) Write16(addr uint32, val uint16) {
	off := RAMRange.Offset(addr)
	if off+2 > RAMSize {
		r.diags.Warnf("RAM: write halfword out of range at 0x%08X", addr)
		return
	}
	binary.LittleEndian.PutUint16(r.data[off:off+2], val)
}

func (r *RAM) Write32(addr uint32, val uint32) {
	off := RAMRange.Offset(addr)
	if off+4 > RAMSize {
		r.diags.Warnf("RAM: write word out of range at 0x%08X", addr)
		return
	}
	binary.LittleEndian.PutUint32(r.data[off:off+4], val)
}
