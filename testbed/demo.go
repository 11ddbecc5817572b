/*
Small host application that exercises the asset caches: it warms every
cache from the configured asset root, then keeps running and evicts
entries as files change on disk.
*/
package testbed

import (
	"os"
	"path/filepath"

	"github.com/spaghettifunk/hoard/engine/assets"
	"github.com/spaghettifunk/hoard/engine/assets/loaders"
	"github.com/spaghettifunk/hoard/engine/audio"
	"github.com/spaghettifunk/hoard/engine/config"
	"github.com/spaghettifunk/hoard/engine/core"
)

type Demo struct {
	cfg    *config.Config
	device *audio.Device

	textures    *loaders.TextureCache
	systemFonts *loaders.SystemFontCache
	bitmapFonts *loaders.BitmapFontCache
	sounds      *loaders.AudioCache

	watcher *assets.Watcher
	handles []func()
	done    chan struct{}
}

func New(cfg *config.Config) (*Demo, error) {
	core.SetLogLevel(cfg.Log.Level)

	device, err := audio.NewDevice(cfg.Assets.Audio.SampleRate, cfg.Assets.Audio.Channels)
	if err != nil {
		return nil, err
	}

	d := &Demo{
		cfg:         cfg,
		device:      device,
		textures:    loaders.NewTextureCache(cfg.Assets.Textures.FlipY),
		systemFonts: loaders.NewSystemFontCache(),
		bitmapFonts: loaders.NewBitmapFontCache(),
		sounds:      loaders.NewAudioCache(device),
		done:        make(chan struct{}),
	}

	if cfg.Assets.WatchChanges {
		w, err := assets.NewWatcher()
		if err != nil {
			return nil, err
		}
		if err := w.Watch(cfg.Assets.RootDir); err != nil {
			core.LogWarn("cannot watch '%s': %v", cfg.Assets.RootDir, err)
		}
		d.watcher = w
	}

	return d, nil
}

// Run warms the caches and then applies watcher invalidations until
// Shutdown is called. All cache access happens on this goroutine.
func (d *Demo) Run() error {
	defer d.cleanup()

	d.warm()

	if d.watcher == nil {
		<-d.done
		return nil
	}

	for {
		select {
		case inv, ok := <-d.watcher.Events():
			if !ok {
				return nil
			}
			d.invalidate(inv)
		case <-d.done:
			return nil
		}
	}
}

// Shutdown asks Run to stop. Safe to call from a signal handler
// goroutine.
func (d *Demo) Shutdown() {
	close(d.done)
}

func (d *Demo) warm() {
	root := d.cfg.Assets.RootDir
	err := filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		d.load(path)
		return nil
	})
	if err != nil {
		core.LogWarn("asset scan of '%s' stopped: %v", root, err)
	}
}

func (d *Demo) load(path string) {
	var err error
	switch loaders.KindForPath(path) {
	case loaders.KindTexture:
		handle, e := d.textures.GetOrLoad(path)
		if e == nil {
			t := handle.Resource()
			core.LogInfo("texture '%s': %dx%d, %d channel(s)", t.Name, t.Width, t.Height, t.ChannelCount)
			d.handles = append(d.handles, handle.Release)
		}
		err = e
	case loaders.KindSystemFont:
		handle, e := d.systemFonts.GetOrLoad(path)
		if e == nil {
			f := handle.Resource()
			core.LogInfo("font '%s': %d units per em", f.Family, f.UnitsPerEm)
			d.handles = append(d.handles, handle.Release)
		}
		err = e
	case loaders.KindBitmapFont:
		handle, e := d.bitmapFonts.GetOrLoad(path)
		if e == nil {
			f := handle.Resource()
			core.LogInfo("bitmap font '%s': %d glyphs over %d page(s)", f.Face, len(f.Glyphs), len(f.Pages))
			d.handles = append(d.handles, handle.Release)
		}
		err = e
	case loaders.KindAudio:
		handle, e := d.sounds.GetOrLoad(path)
		if e == nil {
			b := handle.Resource()
			core.LogInfo("audio '%s': %d frames at %d Hz", path, b.FrameCount, b.SampleRate)
			d.handles = append(d.handles, handle.Release)
		}
		err = e
	default:
		return
	}
	if err != nil {
		core.LogError("loading '%s': %v", path, err)
	}
}

func (d *Demo) invalidate(inv assets.Invalidation) {
	kind := loaders.KindForPath(inv.Path)
	if kind == loaders.KindNone {
		return
	}
	core.LogInfo("asset changed on disk, evicting '%s'", inv.Path)
	switch kind {
	case loaders.KindTexture:
		d.textures.Evict(inv.Path)
	case loaders.KindSystemFont:
		d.systemFonts.Evict(inv.Path)
	case loaders.KindBitmapFont:
		d.bitmapFonts.Evict(inv.Path)
	case loaders.KindAudio:
		d.sounds.Evict(inv.Path)
	}
}

func (d *Demo) cleanup() {
	if d.watcher != nil {
		d.watcher.Close()
	}
	for _, release := range d.handles {
		release()
	}
	d.textures.Clear()
	d.systemFonts.Clear()
	d.bitmapFonts.Clear()
	d.sounds.Clear()
	if err := d.device.Close(); err != nil {
		core.LogError("closing audio device: %v", err)
	}
}
