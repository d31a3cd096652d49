// bus.go - System bus: address canonicalization and device dispatch

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

// Segment boundaries of the 32-bit MIPS address space this bus
// canonicalizes before dispatch.
const (
	kuSegEnd   = 0x7FFFFFFF
	kSeg0Start = 0x80000000
	kSeg0End   = 0x9FFFFFFF
	kSeg1Start = 0xA0000000
	kSeg1End   = 0xBFFFFFFF
	kSeg2Start = 0xC0000000

	regionMask = 0x1FFFFFFF
)

// Canonicalize maps a KUSEG, KSEG0 (cached) or KSEG1 (uncached) address to
// the physical offset the bus dispatches on. KSEG0 and KSEG1 accesses to the
// same device land on the same offset. KSEG2 (0xC0000000 upward), where
// the cache-control register lives, is addressed literally, never masked
// down into the KUSEG physical range.
func Canonicalize(addr uint32) uint32 {
	switch {
	case addr <= kuSegEnd:
		return addr
	case addr >= kSeg0Start && addr <= kSeg0End:
		return addr - kSeg0Start
	case addr >= kSeg1Start && addr <= kSeg1End:
		return addr - kSeg1Start
	case addr >= kSeg2Start:
		return addr
	default:
		return addr & regionMask
	}
}

// Bus is the single point of dispatch for every load/store a CPU core
// issues. It owns no storage of its own; it only routes to the devices
// registered against it.
type Bus struct {
	bios           *BIOS
	ram            *RAM
	memoryControl1 *MemoryControl1
	memoryControl2 *MemoryControl2
	cacheControl   *CacheControl
	dma            *DMA
	gpu            *GPUCommand
	diags          *Diagnostics
}

// NewBus wires a complete set of devices into a bus. Any argument may be
// nil; accesses that would have reached a nil device are diagnosed and
// return zero / drop the write, the same behavior a real console shows
// when nothing answers on the bus.
func NewBus(bios *BIOS, ram *RAM, mc1 *MemoryControl1, mc2 *MemoryControl2, cache *CacheControl, dma *DMA, gpu *GPUCommand, diags *Diagnostics) *Bus {
	return &Bus{
		bios:           bios,
		ram:            ram,
		memoryControl1: mc1,
		memoryControl2: mc2,
		cacheControl:   cache,
		dma:            dma,
		gpu:            gpu,
		diags:          diags,
	}
}

// deviceFor returns the device whose AddressRange contains the
// canonicalized address, or nil when nothing is mapped there.
func (b *Bus) deviceFor(canon uint32) Device {
	switch {
	case RAMRange.Contains(canon) && b.ram != nil:
		return b.ram
	case BIOSRange.Contains(canon) && b.bios != nil:
		return b.bios
	case MemoryControl1Range.Contains(canon) && b.memoryControl1 != nil:
		return b.memoryControl1
	case MemoryControl2Range.Contains(canon) && b.memoryControl2 != nil:
		return b.memoryControl2
	case CacheControlRange.Contains(canon) && b.cacheControl != nil:
		return b.cacheControl
	case DMARange.Contains(canon) && b.dma != nil:
		return b.dma
	case GPURange.Contains(canon) && b.gpu != nil:
		return gpuDeviceAdapter{b.gpu}
	default:
		return nil
	}
}

func (b *Bus) Read8(addr uint32) uint8 {
	canon := Canonicalize(addr)
	if d := b.deviceFor(canon); d != nil {
		return d.Read8(canon)
	}
	b.diags.Warnf("Bus: Read8 from unmapped address 0x%08X", addr)
	return 0
}

func (b *Bus) Write8(addr uint32, value uint8) {
	canon := Canonicalize(addr)
	if d := b.deviceFor(canon); d != nil {
		d.Write8(canon, value)
		return
	}
	b.diags.Warnf("Bus: Write8 to unmapped address 0x%08X", addr)
}

func (b *Bus) Read16(addr uint32) uint16 {
	canon := Canonicalize(addr)
	if d := b.deviceFor(canon); d != nil {
		return d.Read16(canon)
	}
	b.diags.Warnf("Bus: Read16 from unmapped address 0x%08X", addr)
	return 0
}

func (b *Bus) Write16(addr uint32, value uint16) {
	canon := Canonicalize(addr)
	if d := b.deviceFor(canon); d != nil {
		d.Write16(canon, value)
		return
	}
	b.diags.Warnf("Bus: Write16 to unmapped address 0x%08X", addr)
}

func (b *Bus) Read32(addr uint32) uint32 {
	canon := Canonicalize(addr)
	if d := b.deviceFor(canon); d != nil {
		return d.Read32(canon)
	}
	b.diags.Warnf("Bus: Read32 from unmapped address 0x%08X", addr)
	return 0
}

func (b *Bus) Write32(addr uint32, value uint32) {
	canon := Canonicalize(addr)
	if d := b.deviceFor(canon); d != nil {
		d.Write32(canon, value)
		return
	}
	b.diags.Warnf("Bus: Write32 to unmapped address 0x%08X", addr)
}

// gpuDeviceAdapter exposes the GP0/GP1 command ports through the Device
// interface so the GPU can sit in the same dispatch table as every other
// memory-mapped component. GP0 is the low word of the range, GP1 the
// high; both are write-mostly command streams with a read-back status
// word, so only the 32-bit width is meaningful here.
type gpuDeviceAdapter struct {
	gpu *GPUCommand
}

func (a gpuDeviceAdapter) Read8(addr uint32) uint8       { return uint8(a.Read32(addr)) }
func (a gpuDeviceAdapter) Write8(addr uint32, v uint8)   { a.Write32(addr, uint32(v)) }
func (a gpuDeviceAdapter) Read16(addr uint32) uint16     { return uint16(a.Read32(addr)) }
func (a gpuDeviceAdapter) Write16(addr uint32, v uint16) { a.Write32(addr, uint32(v)) }

func (a gpuDeviceAdapter) Read32(addr uint32) uint32 {
	off := GPURange.Offset(addr)
	if off == 4 {
		return 0x1C000000 // GPUSTAT: idle, ready-to-receive, no display area
	}
	return 0
}

func (a gpuDeviceAdapter) Write32(addr uint32, value uint32) {
	off := GPURange.Offset(addr)
	if off == 0 {
		if a.gpu.Type() == GPUCommandNone {
			a.gpu.Set(value)
		} else {
			a.gpu.AddParam(value)
		}
		if a.gpu.ExpectedParams() >= 0 && len(a.gpu.Params()) >= a.gpu.ExpectedParams() {
			a.gpu.Reset()
		}
	}
	// GP1 (off == 4) is the display-control port; outside this core's
	// rendering-free scope, so writes are dropped.
}
