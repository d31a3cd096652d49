// cache_control.go - Single cache-control register

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

// CacheControl is a single 32-bit register that only answers at the exact
// absolute address 0xFFFE0130. 16-bit writes only update the
// low halfword; 8-bit access of any kind is unhandled.
type CacheControl struct {
	value uint32
	diags *Diagnostics
}

func NewCacheControl(diags *Diagnostics) *CacheControl {
	return &CacheControl{diags: diags}
}

func (c *CacheControl) Read8(addr uint32) uint8 {
	c.diags.Warnf("CacheControl: unhandled read byte at 0x%08X", addr)
	return 0
}

func (c *CacheControl) Write8(addr uint32, _ uint8) {
	c.diags.Warnf("CacheControl: unhandled write byte at 0x%08X", addr)
}

func (c *CacheControl) Read16(addr uint32) uint16 {
	if addr != CacheControlRange.Base {
		c.diags.Warnf("CacheControl: read halfword from unknown address 0x%08X", addr)
		return 0
	}
	return uint16(c.value & 0xFFFF)
}

func (c *CacheControl) Write16(addr uint32, val uint16) {
	if addr != CacheControlRange.Base {
		c.diags.Warnf("CacheControl: write halfword to unknown address 0x%08X", addr)
		return
	}
	c.value = (c.value & 0xFFFF0000) | uint32(val)
}

func (c *CacheControl) Read32(addr uint32) uint32 {
	if addr != CacheControlRange.Base {
		c.diags.Warnf("CacheControl: read word from unknown address 0x%08X", addr)
		return 0
	}
	return c.value
}

func (c *CacheControl) Write32(addr uint32, val uint32) {
	if addr != CacheControlRange.Base {
		c.diags.Warnf("CacheControl: write word to unknown address 0x%08X", addr)
		return
	}
	c.value = val
}
