package audio

import (
	"fmt"

	"github.com/spaghettifunk/hoard/engine/core"
)

// Device is the playback-device context audio loaders decode against.
// It is constructed explicitly and passed explicitly; there is no
// process-wide lazily initialized backend. At most one Device may be
// open at a time — a second NewDevice fails until the first is closed.
type Device struct {
	sampleRate uint32
	channels   uint8
	closed     bool
}

var deviceOpen bool

const (
	DefaultSampleRate uint32 = 44100
	DefaultChannels   uint8  = 2
)

func NewDevice(sampleRate uint32, channels uint8) (*Device, error) {
	if deviceOpen {
		return nil, fmt.Errorf("audio device already open, close it before creating another")
	}
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	if channels == 0 {
		channels = DefaultChannels
	}
	deviceOpen = true
	core.LogDebug("audio device open: %d Hz, %d channel(s)", sampleRate, channels)
	return &Device{
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (d *Device) SampleRate() uint32 {
	return d.sampleRate
}

func (d *Device) Channels() uint8 {
	return d.channels
}

func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	deviceOpen = false
	core.LogDebug("audio device closed")
	return nil
}
