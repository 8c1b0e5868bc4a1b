// File: pool/workerpool.go
//
// Fixed-size worker pool. N long-lived workers drain one shared FIFO queue
// of jobs; shutdown is one poison-pill message per worker plus a join
// barrier. Pills queue behind already-submitted jobs, so queued work always
// drains before a worker exits.

package pool

import (
	"errors"
	"runtime"
	"sync"

	"github.com/eapache/queue"

	"github.com/scratchnet/httpd/control"
)

// ErrPoolClosed indicates a Submit after Close.
var ErrPoolClosed = errors.New("worker pool is closed")

// Job is one unit of work. A job performs its own error handling; the pool
// never observes its outcome.
type Job func()

// message is one queue entry: either a job or a shutdown pill.
type message struct {
	job      Job
	shutdown bool
}

// WorkerPool executes jobs on a fixed set of workers. Submission order is
// FIFO in the queue, but workers drain concurrently, so completion order
// across jobs is not guaranteed.
type WorkerPool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   *queue.Queue
	wg     sync.WaitGroup
	size   int
	closed bool
}

// New starts a pool of size workers. A size of zero or less defaults to
// the logical core count.
func New(size int) *WorkerPool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &WorkerPool{
		jobs: queue.New(),
		size: size,
	}
	p.cond = sync.NewCond(&p.mu)
	log := control.Logger()
	log.Info().Int("workers", size).Msg("starting worker pool")
	p.wg.Add(size)
	for id := 0; id < size; id++ {
		go p.worker(id)
	}
	return p
}

// Size returns the fixed worker count.
func (p *WorkerPool) Size() int {
	return p.size
}

// Submit enqueues job; any idle worker may pick it up.
func (p *WorkerPool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.jobs.Add(message{job: job})
	p.cond.Signal()
	return nil
}

// Close sends exactly one shutdown pill per worker and blocks until every
// worker has observed its pill and exited. Close is idempotent.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		for i := 0; i < p.size; i++ {
			p.jobs.Add(message{shutdown: true})
		}
		p.cond.Broadcast()
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// worker loops "receive message, run job or exit on pill". Dequeueing is
// serialized by the pool mutex.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	log := control.Logger()
	for {
		p.mu.Lock()
		for p.jobs.Length() == 0 {
			p.cond.Wait()
		}
		m := p.jobs.Remove().(message)
		p.mu.Unlock()

		if m.shutdown {
			log.Trace().Int("worker", id).Msg("worker shutting down")
			return
		}
		log.Trace().Int("worker", id).Msg("worker got a job")
		m.job()
	}
}
