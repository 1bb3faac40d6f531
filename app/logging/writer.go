package logging

import (
	"io"
	"log"
	"sync"
)

// mirror duplicates every aggregated line to an io.Writer, typically a
// log file, with standard timestamps. Writes can come from any producer
// goroutine so the sink is guarded separately from the pending buffer.
type mirror struct {
	mu  sync.Mutex
	w   io.Writer
	gol *log.Logger
}

func (m *mirror) init() {
	m.w = io.Discard
	m.gol = log.New(m, "", log.LstdFlags)
}

// Write implements io.Writer so the standard log package can write
// through the mirror's lock.
func (m *mirror) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.w == nil {
		return len(p), nil
	}
	return m.w.Write(p)
}

func (m *mirror) writeLine(msg string) {
	m.gol.Println(msg)
}

// SetWriter sets an additional destination that receives every line
// passed to Logf, regardless of which goroutine produced it. Pass nil
// to disable mirroring.
func (a *Aggregator) SetWriter(w io.Writer) {
	a.mirror.mu.Lock()
	defer a.mirror.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	a.mirror.w = w
}
