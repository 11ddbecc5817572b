package loaders

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/hoard/engine/assets"
	"github.com/spaghettifunk/hoard/engine/audio"
	"github.com/spaghettifunk/hoard/engine/core"
	"github.com/spaghettifunk/hoard/engine/resources"
)

const wavFormatPCM = 1

// AudioLoader decodes RIFF/WAVE files (8 or 16-bit PCM) into sample
// buffers for the given playback device. The device context is passed
// in explicitly; the loader never reaches for a global backend.
type AudioLoader struct {
	device *audio.Device
}

func NewAudioLoader(device *audio.Device) *AudioLoader {
	return &AudioLoader{device: device}
}

func (al *AudioLoader) Load(path string) (*resources.AudioBuffer, error) {
	if strings.ToLower(filepath.Ext(path)) != ".wav" {
		return nil, assets.NewOtherError(path, "unsupported audio format '%s'", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, assets.NewIOError(path, err)
	}

	buf, err := decodeWAV(path, data)
	if err != nil {
		return nil, err
	}

	if al.device != nil && buf.SampleRate != al.device.SampleRate() {
		core.LogWarn("audio '%s' is %d Hz but device runs at %d Hz, playback will resample", path, buf.SampleRate, al.device.SampleRate())
	}

	return buf, nil
}

func (al *AudioLoader) Unload(buf *resources.AudioBuffer) error {
	buf.Samples = nil
	buf.FrameCount = 0
	return nil
}

// decodeWAV walks the RIFF chunk list for "fmt " and "data". Chunks it
// does not understand are skipped, matching what every WAV writer
// expects of readers.
func decodeWAV(path string, data []byte) (*resources.AudioBuffer, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, assets.NewOtherError(path, "not a RIFF/WAVE stream")
	}

	var (
		haveFormat    bool
		channels      uint16
		sampleRate    uint32
		bitsPerSample uint16
		pcm           []byte
	)

	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(data) {
			return nil, assets.NewOtherError(path, "truncated '%s' chunk", chunkID)
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, assets.NewOtherError(path, "malformed fmt chunk")
			}
			audioFormat := binary.LittleEndian.Uint16(data[body : body+2])
			if audioFormat != wavFormatPCM {
				return nil, assets.NewOtherError(path, "unsupported wav encoding %d, only PCM is supported", audioFormat)
			}
			channels = binary.LittleEndian.Uint16(data[body+2 : body+4])
			sampleRate = binary.LittleEndian.Uint32(data[body+4 : body+8])
			bitsPerSample = binary.LittleEndian.Uint16(data[body+14 : body+16])
			haveFormat = true
		case "data":
			pcm = data[body : body+chunkSize]
		}

		// Chunks are word aligned.
		offset = body + chunkSize + chunkSize%2
	}

	if !haveFormat {
		return nil, assets.NewOtherError(path, "missing fmt chunk")
	}
	if pcm == nil {
		return nil, assets.NewOtherError(path, "missing data chunk")
	}
	if channels == 0 {
		return nil, assets.NewOtherError(path, "fmt chunk declares zero channels")
	}

	samples, err := convertSamples(path, pcm, bitsPerSample)
	if err != nil {
		return nil, err
	}

	return &resources.AudioBuffer{
		SampleRate:    sampleRate,
		ChannelCount:  uint8(channels),
		BitsPerSample: uint8(bitsPerSample),
		FrameCount:    uint32(len(samples) / int(channels)),
		Samples:       samples,
	}, nil
}

func convertSamples(path string, pcm []byte, bitsPerSample uint16) ([]int16, error) {
	switch bitsPerSample {
	case 8:
		// 8-bit wav is unsigned, centered at 128.
		samples := make([]int16, len(pcm))
		for i, b := range pcm {
			samples[i] = (int16(b) - 128) << 8
		}
		return samples, nil
	case 16:
		samples := make([]int16, len(pcm)/2)
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
		}
		return samples, nil
	default:
		return nil, assets.NewOtherError(path, "unsupported sample depth %d, only 8 and 16-bit PCM are supported", bitsPerSample)
	}
}
