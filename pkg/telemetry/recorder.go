// Package telemetry records simulation trajectories as CSV for offline
// analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// TrajectorySample is one recorded tick of a simulation run.
type TrajectorySample struct {
	Tick       uint64  `csv:"tick"`
	Elapsed    float64 `csv:"t"`
	X          float64 `csv:"x"`
	Y          float64 `csv:"y"`
	Speed      float64 `csv:"speed"`
	HeadingDeg float64 `csv:"heading_deg"`
}

// Recorder buffers trajectory samples and writes them to trajectory.csv in
// the output directory on Flush. A nil Recorder is valid and records
// nothing, so callers need no enabled/disabled branching.
type Recorder struct {
	dir     string
	samples []TrajectorySample
}

// NewRecorder creates a recorder writing into dir. Returns nil when dir is
// empty (recording disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	return &Recorder{dir: dir}, nil
}

// Record buffers one sample.
func (r *Recorder) Record(sample TrajectorySample) {
	if r == nil {
		return
	}
	r.samples = append(r.samples, sample)
}

// Len returns the number of buffered samples.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.samples)
}

// Flush writes the buffered samples to trajectory.csv.
func (r *Recorder) Flush() error {
	if r == nil {
		return nil
	}

	path := filepath.Join(r.dir, "trajectory.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trajectory.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&r.samples, f); err != nil {
		return fmt.Errorf("writing trajectory.csv: %w", err)
	}
	return nil
}
