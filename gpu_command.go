// gpu_command.go - GPU display-list command decoder

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

// GPUParamCapacity is the fixed hardware capacity of a command's
// parameter buffer.
const GPUParamCapacity = 32

// PolylineTerminator is the sentinel word that ends a variable-length
// polyline parameter stream.
const PolylineTerminator = 0x5555_5555

// GPUCommandType classifies a decoded GPU command.
type GPUCommandType int

const (
	GPUCommandNone GPUCommandType = iota - 1
	GPUCommandNOP
	GPUCommandDrawPolygon
	GPUCommandDrawLine
	GPUCommandDrawRectangle
	GPUCommandVramVramCopy
	GPUCommandCpuVramCopy
	GPUCommandVramCpuCopy
	GPUCommandEnv
	GPUCommandClearCache
	GPUCommandQuickRectFill
)

func (t GPUCommandType) String() string {
	switch t {
	case GPUCommandNone:
		return "None"
	case GPUCommandNOP:
		return "NOP"
	case GPUCommandDrawPolygon:
		return "DrawPolygon"
	case GPUCommandDrawLine:
		return "DrawLine"
	case GPUCommandDrawRectangle:
		return "DrawRectangle"
	case GPUCommandVramVramCopy:
		return "VramVramCopy"
	case GPUCommandCpuVramCopy:
		return "CpuVramCopy"
	case GPUCommandVramCpuCopy:
		return "VramCpuCopy"
	case GPUCommandEnv:
		return "Env"
	case GPUCommandClearCache:
		return "ClearCache"
	case GPUCommandQuickRectFill:
		return "QuickRectFill"
	default:
		return "Unknown"
	}
}

// GPURectSize is the fixed/variable size selector in a rectangle command.
type GPURectSize uint8

const (
	GPURectVariable GPURectSize = iota
	GPURectSize1x1
	GPURectSize8x8
	GPURectSize16x16
)

// GPUCommandFlags holds every field a decoded command family can set.
// Only the fields relevant to the command's family are meaningful.
type GPUCommandFlags struct {
	Shaded          bool
	Textured        bool
	NbVertices      uint8
	SemiTransparent bool
	RawTexture      bool
	Polyline        bool
	RectFlag        GPURectSize
}

// gpuParamArray is the fixed-capacity, append-only parameter buffer
// hardware gives every GPU command.
type gpuParamArray struct {
	data [GPUParamCapacity]uint32
	n    uint8
}

func (p *gpuParamArray) add(word uint32) {
	if p.n >= GPUParamCapacity {
		return
	}
	p.data[p.n] = word
	p.n++
}

func (p *gpuParamArray) Size() int { return int(p.n) }

func (p *gpuParamArray) Data() []uint32 { return p.data[:p.n] }

func (p *gpuParamArray) clear() { p.n = 0 }

// GPUCommand decodes one variable-length display-list packet word by word.
type GPUCommand struct {
	typ            GPUCommandType
	flags          GPUCommandFlags
	params         gpuParamArray
	expectedParams int
	diags          *Diagnostics
}

func NewGPUCommand(diags *Diagnostics) *GPUCommand {
	c := &GPUCommand{diags: diags}
	c.Reset()
	return c
}

func (c *GPUCommand) Type() GPUCommandType { return c.typ }

func (c *GPUCommand) Flags() GPUCommandFlags { return c.flags }

func (c *GPUCommand) Params() []uint32 { return c.params.Data() }

func (c *GPUCommand) ExpectedParams() int { return c.expectedParams }

// Reset clears the command back to its power-on state.
func (c *GPUCommand) Reset() {
	c.params.clear()
	c.typ = GPUCommandNone
	c.flags = GPUCommandFlags{}
	c.expectedParams = 0
}

// AddParam appends a parameter word, silently dropping it once the
// 32-word capacity is reached.
func (c *GPUCommand) AddParam(word uint32) {
	c.params.add(word)
}

// Set classifies word into a command type and decodes its fixed fields.
func (c *GPUCommand) Set(word uint32) {
	c.classify(word)
	c.decode(word)
}

func (c *GPUCommand) classify(word uint32) {
	top := word >> 29
	if top != 0 {
		c.typ = GPUCommandType(top)
		return
	}
	switch (word >> 24) & 0xFF {
	case 0x00:
		c.typ = GPUCommandNOP
	case 0x01:
		c.typ = GPUCommandClearCache
	case 0x02:
		c.typ = GPUCommandQuickRectFill
	default:
		c.diags.Errorf("GPUCommand: unknown command 0x%08X", word)
		c.typ = GPUCommandNone
	}
}

func bit(word uint32, n uint) bool { return (word>>n)&1 != 0 }

func (c *GPUCommand) decode(word uint32) {
	switch c.typ {
	case GPUCommandDrawPolygon:
		c.flags = GPUCommandFlags{
			Shaded:          bit(word, 28),
			Textured:        bit(word, 26),
			SemiTransparent: bit(word, 25),
			RawTexture:      bit(word, 24),
		}
		if bit(word, 27) {
			c.flags.NbVertices = 4
		} else {
			c.flags.NbVertices = 3
		}
		shaded, textured := b2i(c.flags.Shaded), b2i(c.flags.Textured)
		c.expectedParams = int(c.flags.NbVertices)*(1+shaded+textured) - shaded + 1
		c.params.add(word & 0xFFFFFF)

	case GPUCommandDrawLine:
		c.flags = GPUCommandFlags{
			Shaded:          bit(word, 28),
			SemiTransparent: bit(word, 25),
			Polyline:        bit(word, 24),
		}
		switch {
		case c.flags.Polyline:
			c.expectedParams = -1
		case c.flags.Shaded:
			c.expectedParams = 4
		default:
			c.expectedParams = 3
		}
		c.params.add(word & 0xFFFFFF)

	case GPUCommandDrawRectangle:
		c.flags = GPUCommandFlags{
			RectFlag:        GPURectSize((word >> 27) & 3),
			Textured:        bit(word, 26),
			SemiTransparent: bit(word, 25),
			RawTexture:      bit(word, 24),
		}
		c.expectedParams = 2 + b2i(c.flags.RectFlag == GPURectVariable) + b2i(c.flags.Textured)
		c.params.add(word & 0xFFFFFF)

	case GPUCommandCpuVramCopy:
		c.expectedParams = 2

	case GPUCommandVramVramCopy:
		c.expectedParams = 3

	case GPUCommandQuickRectFill:
		c.expectedParams = 3
		c.params.add(word & 0xFFFFFF)

	case GPUCommandNOP, GPUCommandClearCache:
		c.expectedParams = 0

	case GPUCommandVramCpuCopy, GPUCommandEnv:
		// Neither family's sub-command stream is parsed by this decoder;
		// expectedParams stays 0 and the caller parses further words itself.
		c.diags.Errorf("GPUCommand: parsing of %v is the caller's responsibility (0x%08X)", c.typ, word)
		c.expectedParams = 0

	default:
		c.diags.Errorf("GPUCommand: parsing of unsupported command 0x%08X", word)
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
