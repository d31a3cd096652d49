package rogem

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func buildPSXExe(t *testing.T, code []byte, pc, gp, dest, size, spBase, spOff uint32) string {
	t.Helper()
	header := make([]byte, psxExeHeaderSize)
	binary.LittleEndian.PutUint32(header[exeOffInitialPC:], pc)
	binary.LittleEndian.PutUint32(header[exeOffInitialGP:], gp)
	binary.LittleEndian.PutUint32(header[exeOffRAMDestination:], dest)
	binary.LittleEndian.PutUint32(header[exeOffSize:], size)
	binary.LittleEndian.PutUint32(header[exeOffInitialSPBase:], spBase)
	binary.LittleEndian.PutUint32(header[exeOffInitialSPOff:], spOff)

	path := filepath.Join(t.TempDir(), "game.exe")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	f.Write(header)
	f.Write(code)
	return path
}

func TestPSXExecutableLoad(t *testing.T) {
	code := []byte{0x01, 0x02, 0x03, 0x04}
	path := buildPSXExe(t, code, 0x80010000, 0x80020000, 0x80010000, uint32(len(code)), 0x801FFF00, 0x100)

	var exe PSXExecutable
	if ok := exe.Load(path); !ok {
		t.Fatal("Load returned false for well-formed file")
	}
	if exe.InitialPC != 0x80010000 {
		t.Errorf("InitialPC = 0x%08X, want 0x80010000", exe.InitialPC)
	}
	if exe.RAMDestination != 0x80010000 {
		t.Errorf("RAMDestination = 0x%08X, want 0x80010000", exe.RAMDestination)
	}
	if len(exe.Data) != len(code) {
		t.Fatalf("Data length = %d, want %d", len(exe.Data), len(code))
	}
	for i, b := range code {
		if exe.Data[i] != b {
			t.Errorf("Data[%d] = 0x%02X, want 0x%02X", i, exe.Data[i], b)
		}
	}
}

func TestPSXExecutableLoadShortCode(t *testing.T) {
	path := buildPSXExe(t, []byte{0x01, 0x02}, 0, 0, 0, 16, 0, 0)

	var exe PSXExecutable
	if ok := exe.Load(path); ok {
		t.Fatal("Load returned true for a truncated code image")
	}
	if exe.InitialPC != 0 || exe.Data != nil {
		t.Error("failed Load should leave the executable zeroed")
	}
}

func TestPSXExecutableLoadMissingFile(t *testing.T) {
	var exe PSXExecutable
	if ok := exe.Load(filepath.Join(t.TempDir(), "nope.exe")); ok {
		t.Fatal("Load returned true for a missing file")
	}
}
