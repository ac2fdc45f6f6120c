// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels = errors.New("source must have at least one channel")
)
