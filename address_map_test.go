package rogem

import "testing"

func TestAddressRangeContains(t *testing.T) {
	r := AddressRange{Base: 0x1F801000, Length: 36}

	cases := []struct {
		addr uint32
		want bool
	}{
		{0x1F801000, true},
		{0x1F801023, true},
		{0x1F800FFF, false},
		{0x1F801024, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.addr); got != c.want {
			t.Errorf("Contains(0x%08X) = %v, want %v", c.addr, got, c.want)
		}
	}
}

func TestAddressRangeOffset(t *testing.T) {
	r := AddressRange{Base: 0x1F801080, Length: 0x80}
	if off := r.Offset(0x1F8010B0); off != 0x30 {
		t.Errorf("Offset = 0x%X, want 0x30", off)
	}
}

func TestDeviceRangesDisjoint(t *testing.T) {
	ranges := []AddressRange{
		RAMRange, MemoryControl1Range, MemoryControl2Range,
		DMARange, CDROMRange, GPURange, BIOSRange,
	}
	for i := range ranges {
		for j := range ranges {
			if i == j {
				continue
			}
			a, b := ranges[i], ranges[j]
			if a.Contains(b.Base) || (b.Length > 0 && a.Contains(b.Base+b.Length-1)) {
				t.Errorf("ranges %d and %d overlap: %+v, %+v", i, j, a, b)
			}
		}
	}
}
