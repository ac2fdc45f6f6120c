// SPDX-License-Identifier: EPL-2.0

package audiotest

import "errors"

// FakeVorbisEncoder records what the codec adapter feeds it and
// returns a fixed payload from Finalize. It implements
// codec.VorbisEncoder without importing it.
type FakeVorbisEncoder struct {
	SampleRate int
	Channels   int
	Quality    int

	Fed       [][]float32 // one entry per Encode call, per channel
	Finalized bool
	Payload   []byte

	EncodeErr   error
	FinalizeErr error
}

func (f *FakeVorbisEncoder) Encode(channels [][]float32) error {
	if f.EncodeErr != nil {
		return f.EncodeErr
	}

	for _, ch := range channels {
		buf := make([]float32, len(ch))
		copy(buf, ch)
		f.Fed = append(f.Fed, buf)
	}
	return nil
}

func (f *FakeVorbisEncoder) Finalize() ([]byte, error) {
	if f.FinalizeErr != nil {
		return nil, f.FinalizeErr
	}

	f.Finalized = true
	if f.Payload != nil {
		return f.Payload, nil
	}
	return []byte("vorbis"), nil
}

// FakeMP3Encoder records quantized PCM fed to it and emits
// distinguishable encode and flush chunks so tests can assert
// ordering. It implements codec.MP3Encoder without importing it.
type FakeMP3Encoder struct {
	SampleRate  int
	Channels    int
	BitrateKbps int

	Fed     []int16
	Flushed bool

	EncodeErr error
	FlushErr  error
}

func (f *FakeMP3Encoder) Encode(pcm []int16) ([]byte, error) {
	if f.EncodeErr != nil {
		return nil, f.EncodeErr
	}

	f.Fed = append(f.Fed, pcm...)
	return []byte("mp3-data"), nil
}

func (f *FakeMP3Encoder) Flush() ([]byte, error) {
	if f.FlushErr != nil {
		return nil, f.FlushErr
	}

	f.Flushed = true
	return []byte("mp3-tail"), nil
}

// ErrEncoderBroken is a sentinel for tests that need an encoder
// failure mid-file.
var ErrEncoderBroken = errors.New("encoder broken")
