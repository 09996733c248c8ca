package transcriber

import (
	"io"
	"sync"
	"sync/atomic"
)

const progressQueue = 4096

// Progress forwards streamed text to a writer from its own goroutine so a
// slow terminal never stalls stream consumption. Text arriving while the
// queue is full is dropped. A nil *Progress discards everything.
type Progress struct {
	mu      sync.Mutex
	closed  bool
	ch      chan string
	done    chan struct{}
	dropped atomic.Int64
}

// NewProgress starts forwarding to w.
func NewProgress(w io.Writer) *Progress {
	p := &Progress{
		ch:   make(chan string, progressQueue),
		done: make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		for s := range p.ch {
			_, _ = io.WriteString(w, s)
		}
	}()
	return p
}

// Forward queues s for writing without blocking.
func (p *Progress) Forward(s string) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.ch <- s:
	default:
		p.dropped.Add(1)
	}
}

// Dropped returns how many pieces were discarded because the queue was full.
func (p *Progress) Dropped() int64 {
	if p == nil {
		return 0
	}
	return p.dropped.Load()
}

// Close stops accepting text and waits for queued text to be written.
func (p *Progress) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.ch)
	p.mu.Unlock()

	<-p.done
	return nil
}
