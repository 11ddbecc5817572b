package audio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Single test on purpose: Device enforces one open instance per
// process, so the lifecycle must be exercised sequentially.
func TestDeviceLifecycle(t *testing.T) {
	r := require.New(t)

	dev, err := NewDevice(48000, 2)
	r.NoError(err)
	r.Equal(uint32(48000), dev.SampleRate())
	r.Equal(uint8(2), dev.Channels())

	_, err = NewDevice(44100, 2)
	r.Error(err)

	r.NoError(dev.Close())
	r.NoError(dev.Close())

	second, err := NewDevice(0, 0)
	r.NoError(err)
	r.Equal(DefaultSampleRate, second.SampleRate())
	r.Equal(DefaultChannels, second.Channels())
	r.NoError(second.Close())
}
