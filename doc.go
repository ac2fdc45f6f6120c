// SPDX-License-Identifier: EPL-2.0

// Package looptrim trims audio recordings to sample-accurate loop
// regions and re-encodes the result.
//
// Given a recording and a start/end time in seconds, the pipeline
// snaps both boundaries to the nearest zero crossing (so the cut is
// inaudible), collapses the trimmed segment to mono, and encodes it
// as WAV (PCM 16-bit), Ogg Vorbis, or MP3.
//
// # Quick Start
//
//	pipeline := looptrim.NewPipeline(looptrim.DefaultRegistry(), &codec.Adapter{})
//
//	params := looptrim.DefaultParams()
//	params.StartSeconds = 1.5
//	params.EndSeconds = 9.25
//
//	file, _ := os.Open("take.wav")
//	out, err := pipeline.Process("take.wav", file, params)
//	if err != nil {
//	    // Handle error
//	}
//	os.WriteFile(out.Filename, out.Data, 0o644)
//
// # Batch Processing
//
// The Runner processes a list of files through the pipeline, one
// Result per input in input order. A failing file does not abort the
// rest of the batch:
//
//	runner := looptrim.Runner{Pipeline: pipeline}
//	results, err := runner.Run(inputs, params)
//
// Only configuration problems (no files, inverted time range) abort
// the whole batch before any file is touched.
//
// # Compressed Output
//
// WAV output is self-contained. Ogg Vorbis and MP3 go through encoder
// services injected via codec.Adapter; when a service is absent, the
// files requesting it fail with a configuration error instead of
// crashing. See the codec package.
//
// # Supported Input Formats
//
// DefaultRegistry registers decoders for:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Input files are dispatched to a decoder by filename extension.
package looptrim
