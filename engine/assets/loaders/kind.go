package loaders

import (
	"path/filepath"
	"strings"
)

// Kind identifies which cache a file on disk belongs to.
type Kind int

const (
	KindNone Kind = iota
	KindTexture
	KindSystemFont
	KindBitmapFont
	KindAudio
)

// KindForPath classifies a file by extension. Used to route watcher
// invalidations to the right cache.
func KindForPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp":
		return KindTexture
	case ".ttf", ".otf", ".ttc", ".otc":
		return KindSystemFont
	case ".fnt":
		return KindBitmapFont
	case ".wav":
		return KindAudio
	default:
		return KindNone
	}
}
