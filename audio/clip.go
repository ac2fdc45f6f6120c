// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Clip is a fully decoded recording: one sample slice per channel,
// all the same length, plus the sample rate. A Clip belongs to the
// pipeline invocation that decoded it and is dropped once encoding
// for that file is done.
type Clip struct {
	SampleRate int
	Channels   [][]float32
}

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// ReadAll drains src into a Clip, deinterleaving the stream into
// per-channel slices. The source is read in bufferSize chunks until
// io.EOF; any other error aborts the read.
func ReadAll(src Source, bufferSize int) (*Clip, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoChannels, channels)
	}

	// Keep reads aligned on whole frames
	if bufferSize < channels {
		bufferSize = channels
	}
	bufferSize -= bufferSize % channels

	clip := &Clip{
		SampleRate: src.SampleRate(),
		Channels:   make([][]float32, channels),
	}

	buf := make([]float32, bufferSize)
	carry := 0 // interleaved values carried over from a partial frame

	for {
		n, err := src.ReadSamples(buf[carry:])
		n += carry
		carry = 0

		frames := n / channels
		for f := 0; f < frames; f++ {
			base := f * channels
			for ch := 0; ch < channels; ch++ {
				clip.Channels[ch] = append(clip.Channels[ch], buf[base+ch])
			}
		}

		// A decoder may return a partial frame at a chunk boundary;
		// keep the tail for the next read.
		if rem := n % channels; rem > 0 {
			copy(buf, buf[frames*channels:n])
			carry = rem
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return clip, nil
}
