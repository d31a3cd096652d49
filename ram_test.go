package rogem

import "testing"

func TestRAMReadWriteRoundTrip(t *testing.T) {
	r := NewRAM(nil)
	r.Write32(0x100, 0xDEADBEEF)
	if got := r.Read32(0x100); got != 0xDEADBEEF {
		t.Errorf("Read32 = 0x%08X, want 0xDEADBEEF", got)
	}
	if got := r.Read8(0x100); got != 0xEF {
		t.Errorf("Read8 (little-endian low byte) = 0x%02X, want 0xEF", got)
	}
	if got := r.Read16(0x102); got != 0xDEAD {
		t.Errorf("Read16 = 0x%04X, want 0xDEAD", got)
	}
}

func TestRAMOutOfRangeIsSilent(t *testing.T) {
	r := NewRAM(nil)
	if got := r.Read32(RAMSize - 2); got != 0 {
		t.Errorf("Read32 straddling the end = 0x%08X, want 0", got)
	}
	r.Write32(RAMSize-2, 0x11223344)
}

func TestRAMByteOrderIndependence(t *testing.T) {
	r := NewRAM(nil)
	r.Write8(0, 1)
	r.Write8(1, 2)
	r.Write8(2, 3)
	r.Write8(3, 4)
	if got := r.Read32(0); got != 0x04030201 {
		t.Errorf("Read32 = 0x%08X, want 0x04030201", got)
	}
}
