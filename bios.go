// bios.go - 512 KiB boot ROM image

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

import (
	"encoding/binary"
	"fmt"
	"os"
)

// BIOSSize is the exact size a BIOS image must be; BIOS.LoadFromFile fails
// for anything else.
const BIOSSize = 512 * 1024

// BIOS is an immutable 512 KiB byte vector loaded from a host file. It
// never accepts writes; the PlayStation's BIOS ROM is not writable.
type BIOS struct {
	data  [BIOSSize]byte
	diags *Diagnostics
}

// NewBIOS returns an empty (all-zero) BIOS. Load it with LoadFromFile
// before use.
func NewBIOS(diags *Diagnostics) *BIOS {
	return &BIOS{diags: diags}
}

// LoadFromFile reads path into the BIOS image. It fails — leaving the
// image all-zero — if the file is absent, unreadable, or not exactly
// BIOSSize bytes.
func (b *BIOS) LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("bios: cannot open %q: %w", path, err)
	}
	if len(raw) != BIOSSize {
		return fmt.Errorf("bios: %q is %d bytes, expected %d", path, len(raw), BIOSSize)
	}
	copy(b.data[:], raw)
	return nil
}

func (b *BIOS) Read8(addr uint32) uint8 {
	off := BIOSRange.Offset(addr)
	if off >= BIOSSize {
		b.diags.Warnf("BIOS: read byte out of range at 0x%08X", addr)
		return 0
	}
	return b.data[off]
}

func (b *BIOS) Read16(addr uint32) uint16 {
	off := BIOSRange.Offset(addr)
	if off+2 > BIOSSize {
		b.diags.Warnf("BIOS: read halfword out of range at 0x%08X", addr)
		return 0
	}
	return binary.LittleEndian.Uint16(b.data[off : off+2])
}

func (b *BIOS) Read32(addr uint32) uint32 {
	off := BIOSRange.Offset(addr)
	if off+4 > BIOSSize {
		b.diags.Warnf("BIOS: read word out of range at 0x%08X", addr)
		return 0
	}
	return binary.LittleEndian.Uint32(b.data[off : off+4])
}

// Write8/16/32 exist to satisfy the Device interface; the BIOS is
// read-only hardware, so writes are dropped with a diagnostic.
func (b *BIOS) Write8(addr uint32, _ uint8) {
	b.diags.Warnf("BIOS: write to read-only ROM at 0x%08X ignored", addr)
}

func (b *BIOS) Write16(addr uint32, _ uint16) {
	b.diags.Warnf("BIOS: write to read-only ROM at 0x%08X ignored", addr)
}

func (b *BIOS) Write32(addr uint32, _ uint32) {
	b.diags.Warnf("BIOS: write to read-only ROM at 0x%08X ignored", addr)
}
