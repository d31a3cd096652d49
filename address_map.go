// address_map.go - Physical address map for the RogEm core

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

// AddressRange names a contiguous physical address window. Ranges are
// constant for the lifetime of the process and, after Bus canonicalization,
// disjoint.
type AddressRange struct {
	Base   uint32
	Length uint32
}

// Contains reports whether the canonical physical address addr falls
// inside the range.
func (r AddressRange) Contains(addr uint32) bool {
	return addr >= r.Base && addr-r.Base < r.Length
}

// Offset returns addr's position within the range, relative to Base.
// Devices call this themselves rather than relying on the Bus to
// pre-subtract the base; see DESIGN.md "Open Questions" for why.
func (r AddressRange) Offset(addr uint32) uint32 {
	return addr - r.Base
}

// The fixed physical device ranges of the machine. They never change at
// runtime and are not configurable.
var (
	RAMRange            = AddressRange{Base: 0x00000000, Length: 2 * 1024 * 1024}
	MemoryControl1Range = AddressRange{Base: 0x1F801000, Length: 36}
	MemoryControl2Range = AddressRange{Base: 0x1F801060, Length: 4}
	DMARange            = AddressRange{Base: 0x1F801080, Length: 0x80}
	CDROMRange          = AddressRange{Base: 0x1F801800, Length: 4}
	GPURange            = AddressRange{Base: 0x1F801810, Length: 8}
	CacheControlRange   = AddressRange{Base: 0xFFFE0130, Length: 4}
	BIOSRange           = AddressRange{Base: 0x1FC00000, Length: 512 * 1024}
)

const (
	// DMA sub-registers, relative to DMARange.Base.
	dmaDPCROffset = 0x70
	dmaDICROffset = 0x74
)
