// SPDX-License-Identifier: EPL-2.0

package codec

// Format identifies an output encoding.
type Format string

const (
	// FormatPCM is uncompressed 16-bit PCM in a WAV container.
	FormatPCM Format = "pcm"
	// FormatVorbis is Ogg Vorbis, quality-based encoding.
	FormatVorbis Format = "vorbis"
	// FormatMP3 is MP3 at a fixed 128 kbps.
	FormatMP3 Format = "mp3"
)

// Extension returns the output filename extension for the format,
// including the dot. Unknown formats return "".
func (f Format) Extension() string {
	switch f {
	case FormatPCM:
		return ".wav"
	case FormatVorbis:
		return ".ogg"
	case FormatMP3:
		return ".mp3"
	}
	return ""
}

// VorbisEncoder is the Ogg Vorbis encoder service. It is constructed
// for a fixed sample rate, channel count and quality, accepts encode
// calls with one sample slice per channel, and hands back the whole
// compressed stream on Finalize.
type VorbisEncoder interface {
	Encode(channels [][]float32) error
	Finalize() ([]byte, error)
}

// NewVorbisEncoderFunc constructs a VorbisEncoder. quality is in
// [0, 10].
type NewVorbisEncoderFunc func(sampleRate, channels, quality int) (VorbisEncoder, error)

// MP3Encoder is the MP3 encoder service. It accepts 16-bit quantized
// samples incrementally, returning zero or more compressed bytes per
// call, and returns any buffered remainder on Flush.
type MP3Encoder interface {
	Encode(pcm []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// NewMP3EncoderFunc constructs an MP3Encoder.
type NewMP3EncoderFunc func(channels, sampleRate, bitrateKbps int) (MP3Encoder, error)
