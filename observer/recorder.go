package observer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Recorder appends one JSON line per frame to a zstd compressed file
type Recorder struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
}

// NewRecorder creates path and its parent directory, truncating an existing file
func NewRecorder(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("recorder: %w", err)
	}
	return &Recorder{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Record appends v as a JSON line; the line is buffered until Close
func (r *Recorder) Record(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return os.ErrClosed
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	r.n++
	return nil
}

// Lines is the number of records written
func (r *Recorder) Lines() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Close flushes the buffer and finishes the zstd stream
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err1 error
	if r.w != nil {
		err1 = r.w.Flush()
		r.w = nil
	}
	if r.enc != nil {
		if err := r.enc.Close(); err1 == nil {
			err1 = err
		}
		r.enc = nil
	}
	if r.f != nil {
		if err := r.f.Close(); err1 == nil {
			err1 = err
		}
		r.f = nil
	}
	return err1
}

// ReadFrames decodes a recording written by Recorder
func ReadFrames(path string) ([]FrameMsg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var frames []FrameMsg
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var m FrameMsg
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			return frames, fmt.Errorf("line %d: %w", len(frames)+1, err)
		}
		frames = append(frames, m)
	}
	return frames, sc.Err()
}
