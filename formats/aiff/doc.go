// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Only 16-bit PCM content is supported.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source providing normalized float32
// samples in [-1.0, 1.0].
package aiff
