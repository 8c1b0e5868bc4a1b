// File: pool/workerpool_test.go

package pool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// K independent jobs on a pool of N < K: every job runs exactly once and
// never more than N run at the same instant.
func TestPoolRunsAllJobsBounded(t *testing.T) {
	const workers = 4
	const jobs = 64

	p := New(workers)

	var executions [jobs]int32
	var running, peak int32
	var wg sync.WaitGroup
	wg.Add(jobs)

	for i := 0; i < jobs; i++ {
		i := i
		err := p.Submit(func() {
			defer wg.Done()
			cur := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&executions[i], 1)
			atomic.AddInt32(&running, -1)
		})
		if err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
	}
	wg.Wait()
	p.Close()

	for i, n := range executions {
		if n != 1 {
			t.Errorf("job %d executed %d times, want 1", i, n)
		}
	}
	if got := atomic.LoadInt32(&peak); got > workers {
		t.Errorf("peak concurrency = %d, want <= %d", got, workers)
	}
}

// Close drains queued jobs before the pills are honored: pills are
// appended to the same FIFO queue, never prioritized.
func TestPoolCloseDrainsQueuedJobs(t *testing.T) {
	p := New(1)

	var done int32
	release := make(chan struct{})
	_ = p.Submit(func() { <-release }) // occupy the single worker
	for i := 0; i < 8; i++ {
		_ = p.Submit(func() { atomic.AddInt32(&done, 1) })
	}

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()
	close(release)

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close() did not return")
	}
	if got := atomic.LoadInt32(&done); got != 8 {
		t.Errorf("jobs drained = %d, want 8", got)
	}
}

func TestPoolSubmitAfterClose(t *testing.T) {
	p := New(2)
	p.Close()
	if err := p.Submit(func() {}); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Submit() error = %v, want ErrPoolClosed", err)
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
}

func TestPoolDefaultSize(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.Size() < 1 {
		t.Errorf("Size() = %d, want >= 1", p.Size())
	}
}

// With a single worker, jobs start in submission order.
func TestPoolFIFOWithOneWorker(t *testing.T) {
	p := New(1)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		i := i
		_ = p.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()
	p.Close()

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}
