// SPDX-License-Identifier: EPL-2.0

// Package codec is the boundary to the compressed audio encoders.
//
// The Ogg Vorbis and MP3 encoders are external services: the hosting
// environment injects constructor functions, and the Adapter owns the
// plumbing that must be identical regardless of which implementation
// backs them — channel layout, sample clamping/quantization, and
// output chunk ordering.
//
//	adapter := &codec.Adapter{
//	    NewVorbis: myVorbisConstructor,
//	    NewMP3:    myMP3Constructor,
//	}
//	data, err := adapter.Encode(codec.FormatVorbis, mono, 44100, 3)
//
// A missing constructor is a configuration error value
// (ErrNoVorbisEncoder, ErrNoMP3Encoder), never a crash: encoders are
// capabilities, and their absence must be detectable before or during
// a batch without taking the process down.
package codec
