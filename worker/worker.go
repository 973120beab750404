// Package worker provides the fixed goroutine pool the engine fans per-kart
// simulation out on. Each submitted task writes only its own kart's state, so
// tasks of the same tick never contend.
package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues a task on the pool. To be used for work that may be CPU
// intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Batch joins a group of submitted tasks, letting a tick block until every
// kart has been simulated before events are drained.
type Batch struct {
	wg sync.WaitGroup
}

// Go submits a task tracked by the batch.
func (b *Batch) Go(f func()) {
	b.wg.Add(1)
	Submit(func() {
		defer b.wg.Done()
		f()
	})
}

// Wait blocks until every task submitted through Go has finished.
func (b *Batch) Wait() {
	b.wg.Wait()
}
