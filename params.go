// SPDX-License-Identifier: EPL-2.0

package looptrim

import (
	"strconv"

	"github.com/ik5/looptrim/codec"
)

const (
	// DefaultSearchRadius is the zero-cross search radius in samples.
	DefaultSearchRadius = 4000

	// DefaultVorbisQuality is the Ogg Vorbis quality when none (or an
	// unparseable one) is given.
	DefaultVorbisQuality = 3
)

// Params configures one batch run. It is shared read-only by every
// file in the batch.
type Params struct {
	// StartSeconds and EndSeconds bound the requested loop region.
	// EndSeconds must be greater than StartSeconds.
	StartSeconds float64
	EndSeconds   float64

	// SearchRadius is how far (in samples) each cut point may move to
	// find a zero crossing. Zero disables the search entirely.
	SearchRadius int

	// Format selects the output encoding.
	Format codec.Format

	// VorbisQuality is in [0, 10]; values outside are clamped. Only
	// used for Ogg Vorbis output.
	VorbisQuality int
}

// DefaultParams returns Params with PCM output and the default search
// radius and quality. Start and end still need to be set.
func DefaultParams() Params {
	return Params{
		SearchRadius:  DefaultSearchRadius,
		Format:        codec.FormatPCM,
		VorbisQuality: DefaultVorbisQuality,
	}
}

// validate reports configuration errors that must abort a batch
// before any file is touched.
func (p Params) validate() error {
	if p.EndSeconds <= p.StartSeconds {
		return ErrInvalidTimeRange
	}
	return nil
}

// normalized clamps the tunable fields into their legal ranges.
func (p Params) normalized() Params {
	if p.SearchRadius < 0 {
		p.SearchRadius = 0
	}
	if p.VorbisQuality < 0 {
		p.VorbisQuality = 0
	} else if p.VorbisQuality > 10 {
		p.VorbisQuality = 10
	}
	return p
}

// ParseVorbisQuality converts a user-supplied quality string to an
// integer, falling back to DefaultVorbisQuality when it does not
// parse. Clamping to [0, 10] happens when the batch starts.
func ParseVorbisQuality(s string) int {
	q, err := strconv.Atoi(s)
	if err != nil {
		return DefaultVorbisQuality
	}
	return q
}
