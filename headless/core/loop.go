package core

import (
	"log"
	"sync"
	"time"
)

// Loop steps a Runner at a fixed rate in real time, the way a server
// would drive it.
type Loop struct {
	runner   *Runner
	tickRate int
	limit    int
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewLoop creates a loop that stops by itself after limit ticks. A limit of
// zero runs until Stop is called.
func NewLoop(runner *Runner, tickRate, limit int) *Loop {
	return &Loop{
		runner:   runner,
		tickRate: tickRate,
		limit:    limit,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until the tick limit is reached or Stop is called.
func (l *Loop) Run() {
	defer close(l.done)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[replay] loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Printf("[replay] loop stopped after %d ticks", l.runner.Ticks())
			return
		case <-ticker.C:
			l.runner.Step()
			if l.limit > 0 && l.runner.Ticks() >= l.limit {
				return
			}
		}
	}
}

// Stop ends a running loop and waits for Run to return.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
	<-l.done
}
