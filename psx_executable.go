// psx_executable.go - PSX-EXE header parser and code image loader

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
	"os"
)

// psxExeHeaderSize is the fixed size of the header preceding the code
// image.
const psxExeHeaderSize = 2048

// Fixed byte offsets of the fields this core cares about, within the
// 2048-byte header.
const (
	exeOffInitialPC      = 0x10
	exeOffInitialGP      = 0x14
	exeOffRAMDestination = 0x18
	exeOffSize           = 0x1C
	exeOffInitialSPBase  = 0x30
	exeOffInitialSPOff   = 0x34
)

// PSXExecutable holds the parsed header fields and code image of a raw
// PSX-EXE file. On a failed Load, every field is left
// at its zero value.
type PSXExecutable struct {
	InitialPC       uint32
	InitialGP       uint32
	RAMDestination  uint32
	Size            uint32
	InitialSPBase   uint32
	InitialSPOffset uint32
	Data            []byte
}

// Load reads and parses path. It returns false on any short read or a
// missing file.
func (e *PSXExecutable) Load(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, psxExeHeaderSize)
	if n, err := f.Read(header); err != nil || n != psxExeHeaderSize {
		return false
	}

	e.InitialPC = binary.LittleEndian.Uint32(header[exeOffInitialPC:])
	e.InitialGP = binary.LittleEndian.Uint32(header[exeOffInitialGP:])
	e.RAMDestination = binary.LittleEndian.Uint32(header[exeOffRAMDestination:])
	e.Size = binary.LittleEndian.Uint32(header[exeOffSize:])
	e.InitialSPBase = binary.LittleEndian.Uint32(header[exeOffInitialSPBase:])
	e.InitialSPOffset = binary.LittleEndian.Uint32(header[exeOffInitialSPOff:])

	data := make([]byte, e.Size)
	n, err := f.Read(data)
	if err != nil || uint32(n) != e.Size {
		*e = PSXExecutable{}
		return false
	}
	e.Data = data
	return true
}
