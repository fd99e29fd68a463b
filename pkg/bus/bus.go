package bus

import (
	"context"
	"sync"
)

type JobBus struct {
	jobs   chan ReplyJob
	closed bool
	mu     sync.RWMutex
}

func NewJobBus() *JobBus {
	return &JobBus{
		jobs: make(chan ReplyJob, 100),
	}
}

func (jb *JobBus) Publish(job ReplyJob) {
	jb.mu.RLock()
	defer jb.mu.RUnlock()
	if jb.closed {
		return
	}
	jb.jobs <- job
}

func (jb *JobBus) Consume(ctx context.Context) (ReplyJob, bool) {
	select {
	case job, ok := <-jb.jobs:
		if !ok {
			return ReplyJob{}, false
		}
		return job, true
	case <-ctx.Done():
		return ReplyJob{}, false
	}
}

func (jb *JobBus) Close() {
	jb.mu.Lock()
	defer jb.mu.Unlock()
	if jb.closed {
		return
	}
	jb.closed = true
	close(jb.jobs)
}
