// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM 16-bit
// format. The writer produces the canonical 44-byte-header layout and
// is byte-for-byte deterministic, which the trimming pipeline relies
// on for its uncompressed output format.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 44100, samples)
//
// The function writes a complete mono WAV file with proper headers:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): PCM format 1, 1 channel, 16 bits
//   - data chunk: the samples, little-endian
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//
// # Performance
//
// The WAV encoder is optimized:
//   - Pre-allocated header buffer
//   - Chunked writing for large files
//   - Stream-based decoding for memory efficiency
package wav
