// SPDX-License-Identifier: EPL-2.0

package looptrim

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/ik5/looptrim/audio"
	"github.com/ik5/looptrim/codec"
	aifffmt "github.com/ik5/looptrim/formats/aiff"
	mp3fmt "github.com/ik5/looptrim/formats/mp3"
	vorbisfmt "github.com/ik5/looptrim/formats/vorbis"
	wavfmt "github.com/ik5/looptrim/formats/wav"
	"github.com/ik5/looptrim/utils"
)

// outputSuffix is appended to the input's base name on every output
// file, before the format extension.
const outputSuffix = "-loop"

// Output is the product of one successful pipeline run.
type Output struct {
	// Filename is the input name with its extension replaced by the
	// loop suffix and the output format's extension.
	Filename string
	// Data is the complete encoded file.
	Data []byte
}

// Pipeline trims and re-encodes one file per Process call. It holds
// no per-file state; decoded audio lives only for the duration of the
// call.
type Pipeline struct {
	decoders *audio.Registry
	codecs   *codec.Adapter

	// bufferSize for draining decoder sources
	bufferSize int
}

// NewPipeline builds a Pipeline over the given input decoders and
// encoder services.
func NewPipeline(decoders *audio.Registry, codecs *codec.Adapter) *Pipeline {
	return &Pipeline{
		decoders:   decoders,
		codecs:     codecs,
		bufferSize: 4096,
	}
}

// DefaultRegistry returns a decoder registry with all built-in input
// formats registered under their usual extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wavfmt.Decoder{})
	reg.Register("mp3", mp3fmt.Decoder{})
	reg.Register("ogg", vorbisfmt.Decoder{})
	reg.Register("aiff", aifffmt.Decoder{})
	reg.Register("aif", aifffmt.Decoder{})
	return reg
}

// Process decodes r, snaps the requested time range to zero
// crossings, downmixes to mono and encodes. name is only used for
// decoder dispatch and for deriving the output filename.
//
// params is assumed validated and normalized by the Runner; Process
// itself only fails per-file (decode, range rejection, encoding).
func (p *Pipeline) Process(name string, r io.Reader, params Params) (*Output, error) {
	clip, err := p.decode(name, r)
	if err != nil {
		return nil, err
	}

	start, end, err := p.locateCutPoints(clip, params)
	if err != nil {
		return nil, err
	}

	mono := audio.DownmixRange(clip, start, end)

	data, err := p.encode(mono, clip.SampleRate, params)
	if err != nil {
		return nil, err
	}

	return &Output{
		Filename: OutputName(name, params.Format),
		Data:     data,
	}, nil
}

func (p *Pipeline) decode(name string, r io.Reader) (*audio.Clip, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	dec, ok := p.decoders.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDecoder, ext)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	clip, err := audio.ReadAll(src, p.bufferSize)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return clip, nil
}

// locateCutPoints converts the requested seconds to sample indices
// and snaps each one, independently, to the nearest zero crossing on
// channel 0. Searching can move both ends toward each other, so a
// range that was valid in seconds may still come out empty.
func (p *Pipeline) locateCutPoints(clip *audio.Clip, params Params) (int, int, error) {
	frames := clip.Frames()
	if frames == 0 {
		return 0, 0, fmt.Errorf("%w: adjusted range [0, 0]", ErrRangeRejected)
	}

	rawStart := clampIndex(int(math.Floor(params.StartSeconds*float64(clip.SampleRate))), frames)
	rawEnd := clampIndex(int(math.Floor(params.EndSeconds*float64(clip.SampleRate))), frames)

	// Channel 0 is always the reference signal, even when later
	// downmixing several channels: the cut points must not depend on
	// channel count.
	ref := clip.Channels[0]
	start := audio.NearestZeroCrossing(ref, rawStart, params.SearchRadius)
	end := audio.NearestZeroCrossing(ref, rawEnd, params.SearchRadius)

	if end <= start {
		return 0, 0, fmt.Errorf("%w: adjusted range [%d, %d]", ErrRangeRejected, start, end)
	}
	return start, end, nil
}

func (p *Pipeline) encode(mono []float32, sampleRate int, params Params) ([]byte, error) {
	if params.Format == codec.FormatPCM {
		buf := new(bytes.Buffer)
		if err := wavfmt.WriteWAV16(buf, sampleRate, utils.QuantizePCM16(mono)); err != nil {
			return nil, fmt.Errorf("writing wav: %w", err)
		}
		return buf.Bytes(), nil
	}

	// Vorbis, MP3 and anything unknown go through the adapter
	return p.codecs.Encode(params.Format, mono, sampleRate, params.VorbisQuality)
}

// clampIndex bounds a raw sample index to [0, frames-1].
func clampIndex(i, frames int) int {
	if i < 0 {
		return 0
	}
	if i > frames-1 {
		return frames - 1
	}
	return i
}

// OutputName derives the output filename: the input name minus its
// final extension, plus the loop suffix and the format extension.
func OutputName(input string, format codec.Format) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + outputSuffix + format.Extension()
}
