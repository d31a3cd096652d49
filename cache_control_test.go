package rogem

import "testing"

func TestCacheControlExactAddressOnly(t *testing.T) {
	c := NewCacheControl(nil)
	c.Write32(CacheControlRange.Base, 0x1E988)
	if got := c.Read32(CacheControlRange.Base); got != 0x1E988 {
		t.Errorf("Read32 = 0x%05X, want 0x1E988", got)
	}
	if got := c.Read32(CacheControlRange.Base + 4); got != 0 {
		t.Errorf("Read32 at wrong address = 0x%08X, want 0", got)
	}
}

func TestCacheControlHalfwordUpdatesLowOnly(t *testing.T) {
	c := NewCacheControl(nil)
	c.Write32(CacheControlRange.Base, 0xABCD1234)
	c.Write16(CacheControlRange.Base, 0x5678)
	if got := c.Read32(CacheControlRange.Base); got != 0xABCD5678 {
		t.Errorf("Read32 after halfword write = 0x%08X, want 0xABCD5678", got)
	}
}

func TestCacheControlByteAccessUnhandled(t *testing.T) {
	c := NewCacheControl(nil)
	if got := c.Read8(CacheControlRange.Base); got != 0 {
		t.Errorf("Read8 = 0x%02X, want 0", got)
	}
}
