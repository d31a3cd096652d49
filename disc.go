// disc.go - Raw 2352-byte sector CD-ROM image reader

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
	"fmt"
	"os"
)

// RawSectorSize is the size in bytes of one raw CD-ROM sector. The
// sync/header/data/EDC/ECC layout inside it is opaque to this core.
const RawSectorSize = 2352

// msfLeadIn is the number of lead-in sectors subtracted between an MSF
// address and its LBA equivalent.
const msfLeadIn = 150

// Disc is a random-access reader over a disc image file, one raw sector
// at a time.
type Disc struct {
	file         *os.File
	totalSectors uint32
	diags        *Diagnostics
}

func NewDisc(diags *Diagnostics) *Disc {
	return &Disc{diags: diags}
}

// Open discovers the sector count from the file size.
func (d *Disc) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("disc: failed to open %q: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("disc: failed to stat %q: %w", path, err)
	}
	d.file = f
	d.totalSectors = uint32(info.Size() / RawSectorSize)
	return nil
}

func (d *Disc) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.totalSectors = 0
	return err
}

func (d *Disc) IsOpen() bool { return d.file != nil }

func (d *Disc) TotalSectors() uint32 { return d.totalSectors }

// ReadSector reads the lba-th raw sector into buf, which must be at least
// RawSectorSize bytes. It fails for an out-of-range lba.
func (d *Disc) ReadSector(lba uint32, buf []byte) error {
	if d.file == nil {
		return fmt.Errorf("disc: not open")
	}
	if lba >= d.totalSectors {
		d.diags.Warnf("Disc: LBA %d out of range (total %d)", lba, d.totalSectors)
		return fmt.Errorf("disc: lba %d out of range (total %d)", lba, d.totalSectors)
	}
	n, err := d.file.ReadAt(buf[:RawSectorSize], int64(lba)*RawSectorSize)
	if err != nil {
		return fmt.Errorf("disc: read sector %d: %w", lba, err)
	}
	if n != RawSectorSize {
		return fmt.Errorf("disc: short read of sector %d (%d bytes)", lba, n)
	}
	return nil
}

// MSFToLBA converts a decimal (not BCD) Minute:Second:Frame address to a
// logical block address.
func MSFToLBA(minute, second, frame uint8) uint32 {
	return (uint32(minute)*60+uint32(second))*75 + uint32(frame) - msfLeadIn
}

// LBAToMSF is the inverse of MSFToLBA.
func LBAToMSF(lba uint32) (minute, second, frame uint8) {
	absolute := lba + msfLeadIn
	minute = uint8(absolute / (60 * 75))
	absolute %= 60 * 75
	second = uint8(absolute / 75)
	frame = uint8(absolute % 75)
	return
}

// ToBCD packs a two-digit decimal value into a BCD byte.
func ToBCD(value uint8) uint8 {
	return (value/10)<<4 | value%10
}

// FromBCD unpacks a BCD byte into its decimal value.
func FromBCD(bcd uint8) uint8 {
	return (bcd>>4)*10 + bcd&0x0F
}
