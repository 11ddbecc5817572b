package resources

import (
	"golang.org/x/image/font/sfnt"
)

// Texture is a decoded image held CPU-side as tightly packed RGBA
// pixels. Uploading to a GPU is the renderer's job, not the cache's.
type Texture struct {
	Name         string
	Width        uint32
	Height       uint32
	ChannelCount uint8
	Pixels       []uint8
}

// FontFace is a parsed vector font ready for glyph rasterization.
type FontFace struct {
	Family     string
	UnitsPerEm uint16
	Font       *sfnt.Font
	// Raw file bytes backing Font; sfnt parses lazily so these must
	// outlive it.
	Data []byte
}

// BitmapFont mirrors an AngelCode .fnt descriptor: a pre-rasterized
// glyph atlas plus layout tables.
type BitmapFont struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	Glyphs     []FontGlyph
	Kernings   []FontKerning
	Pages      []BitmapFontPage
}

type FontGlyph struct {
	Codepoint rune
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

type BitmapFontPage struct {
	ID   int8
	File string
}

// AudioBuffer is a decoded PCM stream in interleaved 16-bit samples.
type AudioBuffer struct {
	SampleRate    uint32
	ChannelCount  uint8
	BitsPerSample uint8
	FrameCount    uint32
	Samples       []int16
}
