// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"

	"github.com/ik5/looptrim/utils"
)

// MP3BitrateKbps is the fixed bitrate for MP3 output.
const MP3BitrateKbps = 128

// Adapter dispatches mono float samples to the injected encoder
// services. The zero value has no encoders; requesting a compressed
// format then yields the matching configuration error.
type Adapter struct {
	NewVorbis NewVorbisEncoderFunc
	NewMP3    NewMP3EncoderFunc
}

// Encode compresses samples at sampleRate into the requested format.
// quality applies to Vorbis only and must already be in [0, 10].
//
// FormatPCM is not handled here: the WAV container is written by
// formats/wav, not by an external service.
func (a *Adapter) Encode(format Format, samples []float32, sampleRate, quality int) ([]byte, error) {
	switch format {
	case FormatVorbis:
		return a.encodeVorbis(samples, sampleRate, quality)
	case FormatMP3:
		return a.encodeMP3(samples, sampleRate)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
}

func (a *Adapter) encodeVorbis(samples []float32, sampleRate, quality int) ([]byte, error) {
	if a.NewVorbis == nil {
		return nil, ErrNoVorbisEncoder
	}

	enc, err := a.NewVorbis(sampleRate, 1, quality)
	if err != nil {
		return nil, fmt.Errorf("constructing vorbis encoder: %w", err)
	}

	// The mono buffer is the single channel
	if err := enc.Encode([][]float32{samples}); err != nil {
		return nil, fmt.Errorf("vorbis encode: %w", err)
	}

	data, err := enc.Finalize()
	if err != nil {
		return nil, fmt.Errorf("vorbis finalize: %w", err)
	}
	return data, nil
}

func (a *Adapter) encodeMP3(samples []float32, sampleRate int) ([]byte, error) {
	if a.NewMP3 == nil {
		return nil, ErrNoMP3Encoder
	}

	enc, err := a.NewMP3(1, sampleRate, MP3BitrateKbps)
	if err != nil {
		return nil, fmt.Errorf("constructing mp3 encoder: %w", err)
	}

	// Same quantization as the WAV path
	pcm := utils.QuantizePCM16(samples)

	data, err := enc.Encode(pcm)
	if err != nil {
		return nil, fmt.Errorf("mp3 encode: %w", err)
	}

	tail, err := enc.Flush()
	if err != nil {
		return nil, fmt.Errorf("mp3 flush: %w", err)
	}

	// Main output first, flushed remainder last
	return append(data, tail...), nil
}
