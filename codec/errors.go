package codec

import "errors"

var (
	ErrNoVorbisEncoder   = errors.New("no Ogg Vorbis encoder available")
	ErrNoMP3Encoder      = errors.New("no MP3 encoder available")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
