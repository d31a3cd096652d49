package rogem

import "testing"

func TestGPUCommandClassifyByTopBits(t *testing.T) {
	c := NewGPUCommand(nil)
	c.Set(0x20000000) // flat, 3-vertex polygon
	if c.Type() != GPUCommandDrawPolygon {
		t.Fatalf("Type = %v, want DrawPolygon", c.Type())
	}
	if c.Flags().NbVertices != 3 {
		t.Errorf("NbVertices = %d, want 3", c.Flags().NbVertices)
	}
	if c.ExpectedParams() != 4 {
		t.Errorf("ExpectedParams = %d, want 4", c.ExpectedParams())
	}
	if len(c.Params()) != 1 || c.Params()[0] != 0 {
		t.Errorf("Params after Set = %v, want [0]", c.Params())
	}
}

func TestGPUCommandShadedQuadExpectedParams(t *testing.T) {
	c := NewGPUCommand(nil)
	// top=1 (polygon), bit28 shaded, bit27 quad (4 vertices)
	c.Set(0x20000000 | 1<<28 | 1<<27)
	if c.Flags().NbVertices != 4 {
		t.Fatalf("NbVertices = %d, want 4", c.Flags().NbVertices)
	}
	if !c.Flags().Shaded {
		t.Fatal("expected Shaded flag set")
	}
	// 4*(1+1+0) - 1 + 1 = 8
	if got := c.ExpectedParams(); got != 8 {
		t.Errorf("ExpectedParams = %d, want 8", got)
	}
}

func TestGPUCommandLowByteFamilies(t *testing.T) {
	cases := []struct {
		word uint32
		want GPUCommandType
	}{
		{0x00000000, GPUCommandNOP},
		{0x01000000, GPUCommandClearCache},
		{0x02000000, GPUCommandQuickRectFill},
	}
	for _, c := range cases {
		cmd := NewGPUCommand(nil)
		cmd.Set(c.word)
		if cmd.Type() != c.want {
			t.Errorf("Set(0x%08X).Type() = %v, want %v", c.word, cmd.Type(), c.want)
		}
	}
}

func TestGPUCommandUnknownLowByte(t *testing.T) {
	c := NewGPUCommand(nil)
	c.Set(0x03000000)
	if c.Type() != GPUCommandNone {
		t.Errorf("Type = %v, want None for an unrecognized command byte", c.Type())
	}
}

func TestGPUCommandParamCapacity(t *testing.T) {
	c := NewGPUCommand(nil)
	for i := 0; i < GPUParamCapacity+5; i++ {
		c.AddParam(uint32(i))
	}
	if got := len(c.Params()); got != GPUParamCapacity {
		t.Errorf("Params length = %d, want capped at %d", got, GPUParamCapacity)
	}
}

func TestGPUCommandResetClearsState(t *testing.T) {
	c := NewGPUCommand(nil)
	c.Set(0x20000000)
	c.AddParam(1)
	c.Reset()
	if c.Type() != GPUCommandNone || len(c.Params()) != 0 || c.ExpectedParams() != 0 {
		t.Errorf("Reset left Type=%v Params=%v ExpectedParams=%d", c.Type(), c.Params(), c.ExpectedParams())
	}
}

func TestGPUCommandPolylineSentinelExpectedParams(t *testing.T) {
	c := NewGPUCommand(nil)
	c.Set(0x41000000) // line, polyline bit set
	if !c.Flags().Polyline {
		t.Fatal("expected Polyline flag set")
	}
	if c.ExpectedParams() != -1 {
		t.Errorf("ExpectedParams = %d, want -1 for an open-ended polyline", c.ExpectedParams())
	}
}
