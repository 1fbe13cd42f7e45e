package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Sink is the durable storage boundary for the statistics snapshot.
type Sink interface {
	// Load reads the persisted snapshot. A missing document is not an
	// error: Load returns (nil, nil) and the caller starts from zero.
	Load() (*Snapshot, error)

	// Save persists the full snapshot, replacing the previous document.
	Save(*Snapshot) error
}

// FileSink persists the snapshot as an indented JSON file. Saves write to
// a temp file in the same directory and rename it into place, so a crash
// mid-write leaves the previous valid document untouched.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to the given path. Parent directories
// are created on first save.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Load implements Sink.
func (f *FileSink) Load() (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	snap.normalize()

	return &snap, nil
}

// Save implements Sink.
func (f *FileSink) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".statistics-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing snapshot file: %w", err)
	}

	return nil
}
