// SPDX-License-Identifier: EPL-2.0

package looptrim

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ik5/looptrim/codec"
)

func TestRunner_NoFiles(t *testing.T) {
	t.Parallel()

	runner := Runner{Pipeline: newTestPipeline(nil)}

	_, err := runner.Run(nil, DefaultParams())
	if !errors.Is(err, ErrNoInputFiles) {
		t.Errorf("Run() error = %v, want ErrNoInputFiles", err)
	}
}

func TestRunner_InvalidTimeRange(t *testing.T) {
	t.Parallel()

	runner := Runner{Pipeline: newTestPipeline(nil)}

	params := DefaultParams()
	params.StartSeconds = 5
	params.EndSeconds = 2

	files := []Input{{Name: "a.wav", Reader: bytes.NewReader(nil)}}

	_, err := runner.Run(files, params)
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("Run() error = %v, want ErrInvalidTimeRange", err)
	}
}

func TestRunner_EqualTimesRejected(t *testing.T) {
	t.Parallel()

	runner := Runner{Pipeline: newTestPipeline(nil)}

	params := DefaultParams()
	params.StartSeconds = 2
	params.EndSeconds = 2

	files := []Input{{Name: "a.wav", Reader: bytes.NewReader(nil)}}

	_, err := runner.Run(files, params)
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("Run() error = %v, want ErrInvalidTimeRange", err)
	}
}

func TestRunner_FailureIsolation(t *testing.T) {
	t.Parallel()

	good1 := constantWAV(t, 8000, 8000, 1000)
	bad := []byte("this will not decode")
	good2 := constantWAV(t, 8000, 8000, 2000)

	files := []Input{
		{Name: "one.wav", Reader: bytes.NewReader(good1)},
		{Name: "two.wav", Reader: bytes.NewReader(bad)},
		{Name: "three.wav", Reader: bytes.NewReader(good2)},
	}

	params := DefaultParams()
	params.StartSeconds = 0
	params.EndSeconds = 0.5

	runner := Runner{Pipeline: newTestPipeline(nil)}
	results, err := runner.Run(files, params)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Run() returned %d results, want 3", len(results))
	}

	// Input order is preserved
	wantOrder := []string{"one.wav", "two.wav", "three.wav"}
	for i, want := range wantOrder {
		if results[i].Input != want {
			t.Errorf("results[%d].Input = %q, want %q", i, results[i].Input, want)
		}
	}

	if results[0].Failed() {
		t.Errorf("file one failed: %v", results[0].Err)
	}
	if !results[1].Failed() {
		t.Error("file two should have failed to decode")
	}
	if results[2].Failed() {
		t.Errorf("file three failed: %v", results[2].Err)
	}

	// The failure reason names the file
	if !strings.Contains(results[1].Err.Error(), "two.wav") {
		t.Errorf("failure reason %q does not name the file", results[1].Err.Error())
	}

	// No partial output for the failed file
	if results[1].Output != nil {
		t.Error("failed file has output")
	}
}

func TestRunner_MissingServiceFailsPerFile(t *testing.T) {
	t.Parallel()

	files := []Input{
		{Name: "a.wav", Reader: bytes.NewReader(constantWAV(t, 8000, 8000, 500))},
		{Name: "b.wav", Reader: bytes.NewReader(constantWAV(t, 8000, 8000, 500))},
	}

	params := DefaultParams()
	params.StartSeconds = 0
	params.EndSeconds = 0.5
	params.Format = codec.FormatMP3

	runner := Runner{Pipeline: newTestPipeline(nil)}
	results, err := runner.Run(files, params)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, want 2", len(results))
	}

	for i, res := range results {
		if !errors.Is(res.Err, codec.ErrNoMP3Encoder) {
			t.Errorf("results[%d].Err = %v, want ErrNoMP3Encoder", i, res.Err)
		}
	}
}

func TestRunner_QualityClampedOncePerBatch(t *testing.T) {
	t.Parallel()

	var gotQuality int
	adapter := &codec.Adapter{
		NewVorbis: func(sampleRate, channels, quality int) (codec.VorbisEncoder, error) {
			gotQuality = quality
			return &fakeVorbis{}, nil
		},
	}

	files := []Input{
		{Name: "a.wav", Reader: bytes.NewReader(constantWAV(t, 8000, 8000, 500))},
	}

	params := DefaultParams()
	params.StartSeconds = 0
	params.EndSeconds = 0.5
	params.Format = codec.FormatVorbis
	params.VorbisQuality = 25 // out of range, clamped to 10

	runner := Runner{Pipeline: newTestPipeline(adapter)}
	results, err := runner.Run(files, params)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if results[0].Failed() {
		t.Fatalf("file failed: %v", results[0].Err)
	}

	if gotQuality != 10 {
		t.Errorf("encoder quality = %d, want clamped 10", gotQuality)
	}
}

func TestRunner_ClosesReaders(t *testing.T) {
	t.Parallel()

	good := &closeRecorder{Reader: bytes.NewReader(constantWAV(t, 8000, 8000, 1000))}
	bad := &closeRecorder{Reader: bytes.NewReader([]byte("this will not decode"))}

	files := []Input{
		{Name: "good.wav", Reader: good},
		{Name: "bad.wav", Reader: bad},
	}

	params := DefaultParams()
	params.StartSeconds = 0
	params.EndSeconds = 0.5

	runner := Runner{Pipeline: newTestPipeline(nil)}
	results, err := runner.Run(files, params)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if results[0].Failed() {
		t.Errorf("good file failed: %v", results[0].Err)
	}
	if !results[1].Failed() {
		t.Error("bad file should have failed")
	}

	// Both readers are released, the failed one included
	if !good.closed {
		t.Error("reader for good.wav was not closed")
	}
	if !bad.closed {
		t.Error("reader for bad.wav was not closed")
	}
}

// closeRecorder remembers whether Close was called.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

// fakeVorbis is a no-op encoder for batch-level tests.
type fakeVorbis struct{}

func (fakeVorbis) Encode(channels [][]float32) error { return nil }
func (fakeVorbis) Finalize() ([]byte, error)         { return []byte("ok"), nil }
