package rogem

import "testing"

func TestCanonicalizeKUSEG(t *testing.T) {
	if got := Canonicalize(0x00100000); got != 0x00100000 {
		t.Errorf("KUSEG Canonicalize = 0x%08X, want unchanged", got)
	}
}

func TestCanonicalizeKSEG0AndKSEG1Alias(t *testing.T) {
	phys := uint32(0x1F800100)
	k0 := Canonicalize(kSeg0Start + phys)
	k1 := Canonicalize(kSeg1Start + phys)
	if k0 != phys || k1 != phys {
		t.Errorf("KSEG0=0x%08X KSEG1=0x%08X, want both 0x%08X", k0, k1, phys)
	}
}

func TestCanonicalizeKSEG2PassesThrough(t *testing.T) {
	if got := Canonicalize(CacheControlRange.Base); got != CacheControlRange.Base {
		t.Errorf("KSEG2 Canonicalize(0x%08X) = 0x%08X, want unchanged", CacheControlRange.Base, got)
	}
}

func newTestBus() *Bus {
	return NewBus(
		NewBIOS(nil),
		NewRAM(nil),
		NewMemoryControl1(nil),
		NewMemoryControl2(nil),
		NewCacheControl(nil),
		NewDMA(nil),
		NewGPUCommand(nil),
		nil,
	)
}

func TestBusRoutesRAMThroughAllSegments(t *testing.T) {
	b := newTestBus()
	b.Write32(0x00001000, 0xCAFEBABE)

	if got := b.Read32(kSeg0Start + 0x1000); got != 0xCAFEBABE {
		t.Errorf("KSEG0 read = 0x%08X, want 0xCAFEBABE", got)
	}
	if got := b.Read32(kSeg1Start + 0x1000); got != 0xCAFEBABE {
		t.Errorf("KSEG1 read = 0x%08X, want 0xCAFEBABE", got)
	}
}

func TestBusRoutesCacheControlInKSEG2(t *testing.T) {
	b := newTestBus()
	b.Write32(CacheControlRange.Base, 0x1E988)
	if got := b.Read32(CacheControlRange.Base); got != 0x1E988 {
		t.Errorf("Bus-mediated CacheControl read = 0x%08X, want 0x1E988", got)
	}
}

func TestBusUnmappedAddressReadsZero(t *testing.T) {
	b := newTestBus()
	if got := b.Read32(0x1F802000); got != 0 {
		t.Errorf("unmapped Read32 = 0x%08X, want 0", got)
	}
	// Should not panic with a nil Diagnostics.
	b.Write32(0x1F802000, 0x1)
}

func TestBusDMAViaKSEG1(t *testing.T) {
	b := newTestBus()
	addr := kSeg1Start + DMARange.Base + dmaDPCROffset
	b.Write32(addr, 0x07654321)
	if got := b.Read32(addr); got != 0x07654321 {
		t.Errorf("DMA DPCR via KSEG1 = 0x%08X, want 0x07654321", got)
	}
}
