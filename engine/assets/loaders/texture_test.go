package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/hoard/engine/assets"
)

func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestTextureLoaderDecodesPNG(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	path := writePNG(t, "tile.png", img)

	tl := &TextureLoader{}
	tex, err := tl.Load(path)
	r.NoError(err)

	r.Equal("tile", tex.Name)
	r.Equal(uint32(2), tex.Width)
	r.Equal(uint32(2), tex.Height)
	r.Equal(uint8(4), tex.ChannelCount)
	r.Len(tex.Pixels, 2*2*4)
	// Top-left pixel is red.
	r.Equal(uint8(255), tex.Pixels[0])
}

func TestTextureLoaderFlipsRows(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// 1x2: red on top, blue on bottom.
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	path := writePNG(t, "grad.png", img)

	tl := &TextureLoader{FlipY: true}
	tex, err := tl.Load(path)
	r.NoError(err)

	// After the flip the first row is the blue one.
	r.Equal(uint8(0), tex.Pixels[0])
	r.Equal(uint8(255), tex.Pixels[2])
}

func TestTextureLoaderMissingFileIsIOError(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	tl := &TextureLoader{}
	_, err := tl.Load(filepath.Join(t.TempDir(), "nope.png"))

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindIO, le.Kind)
}

func TestTextureLoaderMalformedFileIsOtherError(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "junk.png")
	r.NoError(os.WriteFile(path, []byte("definitely not a png"), 0o644))

	tl := &TextureLoader{}
	_, err := tl.Load(path)

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindOther, le.Kind)
}

func TestTextureLoaderRejectsUnknownExtension(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	tl := &TextureLoader{}
	_, err := tl.Load("model.obj")

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindOther, le.Kind)
}

func TestTextureLoaderUnloadDropsPixels(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	path := writePNG(t, "one.png", img)

	tl := &TextureLoader{}
	tex, err := tl.Load(path)
	r.NoError(err)

	r.NoError(tl.Unload(tex))
	r.Nil(tex.Pixels)
}
