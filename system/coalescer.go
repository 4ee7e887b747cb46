package system

import (
	"sync"

	"github.com/yllada/action-center/common"
)

// Coalescer applies levels to a sink on its own goroutine. It holds at most
// one pending level: a newer Submit replaces one that has not been applied
// yet, so a fast drag never queues up work.
type Coalescer struct {
	name string
	sink common.LevelSink

	mu       sync.Mutex
	running  bool
	pending  chan float64
	stopChan chan struct{}
	done     chan struct{}
}

// NewCoalescer returns a stopped coalescer for sink. name is used in logs.
func NewCoalescer(name string, sink common.LevelSink) *Coalescer {
	return &Coalescer{
		name:    name,
		sink:    sink,
		pending: make(chan float64, 1),
	}
}

// Start launches the worker.
func (c *Coalescer) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stopChan = make(chan struct{})
	c.done = make(chan struct{})
	go c.runLoop(c.stopChan, c.done)
}

// Stop stops the worker and waits for it. A level still pending is dropped.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stopChan)
	done := c.done
	c.mu.Unlock()
	<-done
}

// Submit queues percent, replacing any level not yet applied. It never blocks.
func (c *Coalescer) Submit(percent float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.pending:
	default:
	}
	select {
	case c.pending <- percent:
	default:
	}
}

func (c *Coalescer) runLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case v := <-c.pending:
			if err := c.sink.SetLevel(v); err != nil {
				common.LogWarn("Failed to set %s to %.0f%%: %v", c.name, v, err)
			}
		}
	}
}
