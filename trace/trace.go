// Package trace records simulation events as zstd-compressed JSON lines, one
// line per frame that produced any event.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"gridsnake/game/event"
)

// Frame is one line of a trace file.
type Frame struct {
	Session string        `json:"session"`
	Frame   uint64        `json:"frame"`
	Events  []event.Event `json:"events"`
}

// Writer implements event.Sink. Events are grouped by frame and a line is
// written once a later frame starts or the writer is closed.
type Writer struct {
	session string
	path    string
	log     *zap.Logger

	mu      sync.Mutex
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
	pending Frame
	lines   int
	err     error
}

// Path returns where a session's trace lives under dir.
func Path(dir, session string) string {
	return filepath.Join(dir, fmt.Sprintf("trace-%s.jsonl.zst", session))
}

// Open creates dir if needed and starts a new trace file for session.
func Open(dir, session string, log *zap.Logger) (*Writer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("trace dir %s: %w", dir, err)
	}
	path := Path(dir, session)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trace %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &Writer{
		session: session,
		path:    path,
		log:     log.Named("trace"),
		f:       f,
		enc:     enc,
		w:       bufio.NewWriterSize(enc, 64*1024),
		pending: Frame{Session: session},
	}, nil
}

func (w *Writer) Path() string { return w.path }

// Record buffers e. The first write failure is kept and returned by Close;
// later events are dropped.
func (w *Writer) Record(e event.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil || w.w == nil {
		return
	}
	if len(w.pending.Events) > 0 && e.Frame != w.pending.Frame {
		if err := w.flushLocked(); err != nil {
			w.err = err
			w.log.Warn("trace write failed, dropping further events", zap.String("path", w.path), zap.Error(err))
			return
		}
	}
	w.pending.Frame = e.Frame
	w.pending.Events = append(w.pending.Events, e)
}

func (w *Writer) flushLocked() error {
	b, err := json.Marshal(w.pending)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	w.lines++
	w.pending.Events = w.pending.Events[:0]
	return nil
}

// Close writes the last pending frame and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return w.err
	}
	if w.err == nil && len(w.pending.Events) > 0 {
		w.err = w.flushLocked()
	}
	if err := w.w.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	if err := w.enc.Close(); err != nil && w.err == nil {
		w.err = err
	}
	if err := w.f.Close(); err != nil && w.err == nil {
		w.err = err
	}
	w.w, w.enc, w.f = nil, nil, nil
	w.log.Info("trace closed", zap.String("path", w.path), zap.Int("frames", w.lines))
	return w.err
}

// Read decodes every frame in a trace file.
func Read(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads zstd-compressed JSON lines from r.
func Decode(r io.Reader) ([]Frame, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var frames []Frame
	for sc.Scan() {
		var fr Frame
		if err := json.Unmarshal(sc.Bytes(), &fr); err != nil {
			return frames, fmt.Errorf("line %d: unmarshal: %w", len(frames)+1, err)
		}
		frames = append(frames, fr)
	}
	return frames, sc.Err()
}
