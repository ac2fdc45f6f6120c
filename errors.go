// SPDX-License-Identifier: EPL-2.0

package looptrim

import "errors"

var (
	// ErrNoInputFiles aborts a batch that was started without files.
	ErrNoInputFiles = errors.New("no input files selected")

	// ErrInvalidTimeRange aborts a batch whose end time does not lie
	// after its start time.
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrNoDecoder fails a single file whose extension matches no
	// registered input decoder.
	ErrNoDecoder = errors.New("no decoder registered for input format")

	// ErrRangeRejected fails a single file when zero-cross adjustment
	// leaves no samples between the cut points.
	ErrRangeRejected = errors.New("no samples between adjusted cut points")
)
