// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the trimming
// pipeline:
//   - Source interface for audio input
//   - Decoder interface and format Registry
//   - Clip, a fully decoded recording with per-channel samples
//   - NearestZeroCrossing for locating inaudible cut points
//   - DownmixRange for collapsing a clip segment to mono
//
// # Source Interface
//
// The Source interface is the foundation of audio input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface. Sources stream
// interleaved float32 samples; ReadAll drains a Source into a Clip
// with one slice per channel, which is the form the trimming
// operations work on.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Zero Crossings
//
// A zero crossing is a point where the signal is zero or changes sign
// between consecutive samples. Cutting a loop at zero crossings avoids
// audible clicks:
//
//	start := audio.NearestZeroCrossing(clip.Channels[0], rawStart, radius)
//	end := audio.NearestZeroCrossing(clip.Channels[0], rawEnd, radius)
//
// Detection always reads channel 0, regardless of how many channels
// are mixed down afterwards, so the chosen cut points are
// deterministic for a given input.
//
// # Downmixing
//
// DownmixRange collapses a [start, end) segment of a Clip to mono by
// averaging channels:
//
//	mono := audio.DownmixRange(clip, start, end)
//
// Single-channel clips are copied without scaling.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The batch surface uses it to dispatch input files by extension.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the underlying reader or decoder.
package audio
