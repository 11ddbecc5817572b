package loaders

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/spaghettifunk/hoard/engine/assets"
	"github.com/spaghettifunk/hoard/engine/resources"
)

const textureChannelCount = 4

// TextureLoader decodes image files into CPU-side RGBA textures.
type TextureLoader struct {
	// FlipY flips rows so the origin ends up bottom-left, which most
	// GPU texture coordinate conventions expect.
	FlipY bool
}

func (tl *TextureLoader) Load(path string) (*resources.Texture, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp":
	default:
		return nil, assets.NewOtherError(path, "unsupported texture format '%s'", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, assets.NewIOError(path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, assets.WrapError(path, fmt.Errorf("decoding image: %w", err))
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := rgba.Pix
	if tl.FlipY {
		pixels = flipRows(pixels, rgba.Stride, bounds.Dy())
	}

	return &resources.Texture{
		Name:         strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:        uint32(bounds.Dx()),
		Height:       uint32(bounds.Dy()),
		ChannelCount: textureChannelCount,
		Pixels:       pixels,
	}, nil
}

func (tl *TextureLoader) Unload(t *resources.Texture) error {
	t.Pixels = nil
	return nil
}

func flipRows(pixels []uint8, stride, rows int) []uint8 {
	flipped := make([]uint8, len(pixels))
	for y := 0; y < rows; y++ {
		src := pixels[y*stride : (y+1)*stride]
		copy(flipped[(rows-1-y)*stride:], src)
	}
	return flipped
}
