package loaders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindForPath(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.Equal(KindTexture, KindForPath("sprites/hero.PNG"))
	r.Equal(KindTexture, KindForPath("wall.jpeg"))
	r.Equal(KindSystemFont, KindForPath("fonts/roboto.ttf"))
	r.Equal(KindBitmapFont, KindForPath("fonts/hud.fnt"))
	r.Equal(KindAudio, KindForPath("sfx/jump.wav"))
	r.Equal(KindNone, KindForPath("models/car.obj"))
	r.Equal(KindNone, KindForPath("README"))
}
