package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/hoard/engine/assets"
)

// buildWAV assembles a minimal RIFF/WAVE file around the given raw PCM
// bytes.
func buildWAV(t *testing.T, format uint16, channels uint16, sampleRate uint32, bitsPerSample uint16, pcm []byte) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString("WAVE")

	body.WriteString("fmt ")
	binary.Write(&body, binary.LittleEndian, uint32(16))
	binary.Write(&body, binary.LittleEndian, format)
	binary.Write(&body, binary.LittleEndian, channels)
	binary.Write(&body, binary.LittleEndian, sampleRate)
	byteRate := sampleRate * uint32(channels) * uint32(bitsPerSample) / 8
	binary.Write(&body, binary.LittleEndian, byteRate)
	blockAlign := channels * bitsPerSample / 8
	binary.Write(&body, binary.LittleEndian, blockAlign)
	binary.Write(&body, binary.LittleEndian, bitsPerSample)

	body.WriteString("data")
	binary.Write(&body, binary.LittleEndian, uint32(len(pcm)))
	body.Write(pcm)
	if len(pcm)%2 == 1 {
		body.WriteByte(0)
	}

	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeWAV(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestAudioLoaderDecodes16BitPCM(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var pcm bytes.Buffer
	for _, s := range []int16{0, 1000, -1000, 32767} {
		binary.Write(&pcm, binary.LittleEndian, s)
	}
	path := writeWAV(t, "beep.wav", buildWAV(t, wavFormatPCM, 2, 44100, 16, pcm.Bytes()))

	al := NewAudioLoader(nil)
	buf, err := al.Load(path)
	r.NoError(err)

	r.Equal(uint32(44100), buf.SampleRate)
	r.Equal(uint8(2), buf.ChannelCount)
	r.Equal(uint8(16), buf.BitsPerSample)
	r.Equal(uint32(2), buf.FrameCount)
	r.Equal([]int16{0, 1000, -1000, 32767}, buf.Samples)
}

func TestAudioLoaderDecodes8BitPCM(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// Unsigned 8-bit: 128 is silence.
	pcm := []byte{128, 255, 0}
	path := writeWAV(t, "click.wav", buildWAV(t, wavFormatPCM, 1, 22050, 8, pcm))

	al := NewAudioLoader(nil)
	buf, err := al.Load(path)
	r.NoError(err)

	r.Equal(uint8(8), buf.BitsPerSample)
	r.Equal(uint32(3), buf.FrameCount)
	r.Equal([]int16{0, 127 << 8, -128 << 8}, buf.Samples)
}

func TestAudioLoaderRejectsNonPCM(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// Format 3 is IEEE float.
	path := writeWAV(t, "float.wav", buildWAV(t, 3, 2, 44100, 32, nil))

	al := NewAudioLoader(nil)
	_, err := al.Load(path)

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindOther, le.Kind)
	r.Contains(le.Error(), "PCM")
}

func TestAudioLoaderRejectsGarbage(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	path := writeWAV(t, "noise.wav", []byte("this is not RIFF data"))

	al := NewAudioLoader(nil)
	_, err := al.Load(path)

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindOther, le.Kind)
}

func TestAudioLoaderMissingFileIsIOError(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	al := NewAudioLoader(nil)
	_, err := al.Load(filepath.Join(t.TempDir(), "silence.wav"))

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindIO, le.Kind)
}

func TestAudioLoaderRejectsUnknownExtension(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	al := NewAudioLoader(nil)
	_, err := al.Load("track.ogg")

	var le *assets.LoadError
	r.ErrorAs(err, &le)
	r.Equal(assets.KindOther, le.Kind)
}

func TestAudioLoaderUnload(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	pcm := []byte{128, 128}
	path := writeWAV(t, "s.wav", buildWAV(t, wavFormatPCM, 1, 8000, 8, pcm))

	al := NewAudioLoader(nil)
	buf, err := al.Load(path)
	r.NoError(err)

	r.NoError(al.Unload(buf))
	r.Nil(buf.Samples)
	r.Zero(buf.FrameCount)
}
