package loaders

import (
	"github.com/spaghettifunk/hoard/engine/assets"
	"github.com/spaghettifunk/hoard/engine/audio"
	"github.com/spaghettifunk/hoard/engine/resources"
)

// One cache per resource kind; each pairs the generic manager with the
// matching loader.

type TextureCache = assets.Manager[*resources.Texture]

func NewTextureCache(flipY bool) *TextureCache {
	return assets.NewManager[*resources.Texture]("texture", &TextureLoader{FlipY: flipY})
}

type SystemFontCache = assets.Manager[*resources.FontFace]

func NewSystemFontCache() *SystemFontCache {
	return assets.NewManager[*resources.FontFace]("system_font", &SystemFontLoader{})
}

type BitmapFontCache = assets.Manager[*resources.BitmapFont]

func NewBitmapFontCache() *BitmapFontCache {
	return assets.NewManager[*resources.BitmapFont]("bitmap_font", &BitmapFontLoader{})
}

type AudioCache = assets.Manager[*resources.AudioBuffer]

func NewAudioCache(device *audio.Device) *AudioCache {
	return assets.NewManager[*resources.AudioBuffer]("audio", NewAudioLoader(device))
}
