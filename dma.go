// dma.go - DMA controller: 7 channels plus DPCR/DICR

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

// DMAChannelCount is the number of DMA channels (MDECin, MDECout, GPU,
// CDROM, SPU, PIO, OTC).
const DMAChannelCount = 7

// dmaChannel holds the three 32-bit fields of a single DMA channel: base
// address (masked to 24 bits on write), block control, and channel
// control.
type dmaChannel struct {
	base    uint32 // masked to 24 bits
	block   uint32
	control uint32
}

// DMA implements the 7-channel DMA controller plus the DPCR/DICR global
// registers. Like MemoryControl1 and CacheControl, it takes
// the absolute bus address and performs its own offset decode.
type DMA struct {
	channels [DMAChannelCount]dmaChannel
	dpcr     uint32
	dicr     uint32
	diags    *Diagnostics
}

func NewDMA(diags *Diagnostics) *DMA {
	return &DMA{diags: diags}
}

func (d *DMA) Read32(addr uint32) uint32 {
	off := DMARange.Offset(addr)
	switch {
	case off < 0x70:
		ch := off >> 4
		field := (off >> 2) & 3
		switch field {
		case 0:
			return d.channels[ch].base
		case 1:
			return d.channels[ch].block
		default:
			return d.channels[ch].control
		}
	case off == dmaDPCROffset:
		return d.dpcr
	case off == dmaDICROffset:
		return d.dicr
	default:
		d.diags.Warnf("DMA: read word from unknown register at 0x%08X", addr)
		return 0
	}
}

func (d *DMA) Write32(addr uint32, val uint32) {
	off := DMARange.Offset(addr)
	switch {
	case off < 0x70:
		ch := off >> 4
		field := (off >> 2) & 3
		switch field {
		case 0:
			d.channels[ch].base = val & 0xFFFFFF
		case 1:
			d.channels[ch].block = val
		default:
			d.channels[ch].control = val
		}
	case off == dmaDPCROffset:
		d.dpcr = val
	case off == dmaDICROffset:
		d.dicr = val
	default:
		// Unknown register (e.g. 0x78): silently accepted.
	}
}

func (d *DMA) Read8(addr uint32) uint8 {
	d.diags.Warnf("DMA: unhandled read byte at 0x%08X", addr)
	return 0
}

func (d *DMA) Read16(addr uint32) uint16 {
	d.diags.Warnf("DMA: unhandled read halfword at 0x%08X", addr)
	return 0
}

func (d *DMA) Write8(addr uint32, _ uint8) {
	d.diags.Warnf("DMA: unhandled write byte at 0x%08X", addr)
}

func (d *DMA) Write16(addr uint32, _ uint16) {
	d.diags.Warnf("DMA: unhandled write halfword at 0x%08X", addr)
}
