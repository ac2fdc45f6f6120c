// SPDX-License-Identifier: EPL-2.0

package looptrim

import (
	"fmt"
	"io"
)

// Input is one file handed to the batch runner.
type Input struct {
	// Name is the file's identifier; it selects the decoder by
	// extension and names the output.
	Name string
	// Reader provides the raw file bytes.
	Reader io.Reader
}

// Result is the outcome for a single input. Exactly one of Output and
// Err is set.
type Result struct {
	// Input is the file's identifier as given.
	Input string
	// Output holds the encoded bytes and derived filename on success.
	Output *Output
	// Err describes why this file failed. Other files in the batch
	// are unaffected.
	Err error
}

// Failed reports whether this file produced no output.
func (r Result) Failed() bool { return r.Err != nil }

// Runner processes a batch of files through a Pipeline, sequentially
// and in input order.
type Runner struct {
	Pipeline *Pipeline
}

// Run validates params once, then processes every file. The returned
// slice has one Result per input, in input order, regardless of
// individual failures. A file's failure is captured in its Result and
// never aborts the remaining files. A Reader that implements io.Closer
// is closed as soon as its file finishes, success or not.
//
// The returned error is non-nil only for configuration problems (no
// files, invalid time range), in which case no file was processed.
func (r *Runner) Run(files []Input, params Params) ([]Result, error) {
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	params = params.normalized()

	results := make([]Result, 0, len(files))

	// Strictly sequential: each file's decode and encode complete
	// before the next file starts, so observable effects follow input
	// order. Intermediate buffers are unreferenced once the Result is
	// appended, bounding peak memory to roughly one decoded file.
	for _, f := range files {
		out, err := r.Pipeline.Process(f.Name, f.Reader, params)
		if c, ok := f.Reader.(io.Closer); ok {
			c.Close()
		}
		if err != nil {
			results = append(results, Result{
				Input: f.Name,
				Err:   fmt.Errorf("%s: %w", f.Name, err),
			})
			continue
		}
		results = append(results, Result{Input: f.Name, Output: out})
	}

	return results, nil
}
