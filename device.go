// device.go - Uniform device access contract

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

// Device is the narrow capability every memory-mapped peripheral exposes
// to the Bus. addr is always the canonical physical bus
// address, never pre-offset by the Bus; a device computes its own offset
// via its AddressRange.Offset (see DESIGN.md, Open Questions, §1).
//
// No method ever returns an error. An out-of-range offset or an
// unsupported width reads as zero and drops writes, with a diagnostic —
// never a fault.
type Device interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32

	Write8(addr uint32, val uint8)
	Write16(addr uint32, val uint16)
	Write32(addr uint32, val uint32)
}
