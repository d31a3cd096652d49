package rogem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMSFLBARoundTrip(t *testing.T) {
	cases := []struct{ m, s, f uint8 }{
		{0, 2, 0},
		{1, 30, 10},
		{10, 0, 74},
	}
	for _, c := range cases {
		lba := MSFToLBA(c.m, c.s, c.f)
		m, s, f := LBAToMSF(lba)
		if m != c.m || s != c.s || f != c.f {
			t.Errorf("round trip %d:%d:%d -> lba %d -> %d:%d:%d", c.m, c.s, c.f, lba, m, s, f)
		}
	}
}

func TestBCDRoundTrip(t *testing.T) {
	for v := uint8(0); v <= 99; v++ {
		bcd := ToBCD(v)
		if got := FromBCD(bcd); got != v {
			t.Errorf("FromBCD(ToBCD(%d)) = %d", v, got)
		}
	}
}

func TestDiscOpenAndReadSector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disc.bin")
	data := make([]byte, RawSectorSize*2)
	for i := range data[RawSectorSize : RawSectorSize+4] {
		data[RawSectorSize+i] = byte(i + 1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d := NewDisc(nil)
	if err := d.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	if got := d.TotalSectors(); got != 2 {
		t.Fatalf("TotalSectors = %d, want 2", got)
	}

	buf := make([]byte, RawSectorSize)
	if err := d.ReadSector(1, buf); err != nil {
		t.Fatalf("ReadSector: %v", err)
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 || buf[3] != 4 {
		t.Errorf("sector 1 data = %v, want [1 2 3 4 ...]", buf[:4])
	}
}

func TestDiscReadSectorOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disc.bin")
	os.WriteFile(path, make([]byte, RawSectorSize), 0o644)

	d := NewDisc(nil)
	if err := d.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	buf := make([]byte, RawSectorSize)
	if err := d.ReadSector(5, buf); err == nil {
		t.Fatal("expected error reading out-of-range sector")
	}
}

func TestDiscReadSectorBeforeOpen(t *testing.T) {
	d := NewDisc(nil)
	buf := make([]byte, RawSectorSize)
	if err := d.ReadSector(0, buf); err == nil {
		t.Fatal("expected error reading before Open")
	}
}
