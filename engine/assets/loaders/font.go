package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fzipp/bmfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/spaghettifunk/hoard/engine/assets"
	"github.com/spaghettifunk/hoard/engine/resources"
)

// SystemFontLoader parses vector fonts (TTF/OTF and their collection
// variants) into faces ready for glyph rasterization.
type SystemFontLoader struct{}

func (fl *SystemFontLoader) Load(path string) (*resources.FontFace, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ttf", ".otf", ".ttc", ".otc":
	default:
		return nil, assets.NewOtherError(path, "unsupported font format '%s'", filepath.Ext(path))
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, assets.NewIOError(path, err)
	}

	var fnt *sfnt.Font
	switch ext {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(fontBytes)
		if err != nil {
			return nil, assets.WrapError(path, fmt.Errorf("parsing font collection: %w", err))
		}
		// First face only. Callers wanting a specific collection member
		// should extract it into its own file.
		fnt, err = coll.Font(0)
		if err != nil {
			return nil, assets.WrapError(path, fmt.Errorf("extracting first collection face: %w", err))
		}
	default:
		fnt, err = opentype.Parse(fontBytes)
		if err != nil {
			return nil, assets.WrapError(path, fmt.Errorf("parsing font: %w", err))
		}
	}

	family, err := fnt.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &resources.FontFace{
		Family:     family,
		UnitsPerEm: uint16(fnt.UnitsPerEm()),
		Font:       fnt,
		Data:       fontBytes,
	}, nil
}

func (fl *SystemFontLoader) Unload(ff *resources.FontFace) error {
	ff.Font = nil
	ff.Data = nil
	return nil
}

// BitmapFontLoader parses AngelCode .fnt descriptors. Page atlas
// images are referenced by file name only; rasterizing them is the
// texture cache's job.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string) (*resources.BitmapFont, error) {
	if strings.ToLower(filepath.Ext(path)) != ".fnt" {
		return nil, assets.NewOtherError(path, "unsupported bitmap font format '%s'", filepath.Ext(path))
	}

	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, assets.WrapError(path, fmt.Errorf("parsing bitmap font: %w", err))
	}

	out := &resources.BitmapFont{
		Face:       desc.Info.Face,
		Size:       uint32(desc.Info.Size),
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		AtlasSizeX: int32(desc.Common.ScaleW),
		AtlasSizeY: int32(desc.Common.ScaleH),
		Glyphs:     make([]resources.FontGlyph, 0, len(desc.Chars)),
		Kernings:   make([]resources.FontKerning, 0, len(desc.Kerning)),
		Pages:      make([]resources.BitmapFontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		out.Pages = append(out.Pages, resources.BitmapFontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		out.Glyphs = append(out.Glyphs, resources.FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for p, k := range desc.Kerning {
		out.Kernings = append(out.Kernings, resources.FontKerning{
			Codepoint0: p.First,
			Codepoint1: p.Second,
			Amount:     int16(k.Amount),
		})
	}

	return out, nil
}

func (fl *BitmapFontLoader) Unload(bf *resources.BitmapFont) error {
	bf.Glyphs = nil
	bf.Kernings = nil
	bf.Pages = nil
	return nil
}
