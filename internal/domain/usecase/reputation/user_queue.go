package reputation

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
)

// ScoreFunc is one unit of work run on a user's queue
type ScoreFunc func(ctx context.Context) (*usecase.ScoreResult, error)

// UserQueue runs scoring work for the same user one at a time, in arrival
// order. Different users proceed in parallel. A user's worker exits as soon
// as its backlog is empty, so only users with work in flight hold a goroutine.
type UserQueue struct {
	logger     coreport.Logger
	bufferSize int

	mu      sync.Mutex
	queues  map[string]*userWorker
	closed  bool
	workers sync.WaitGroup
}

// userWorker is the queue of one user. pending counts requests that were
// admitted and not yet answered; it only changes under UserQueue.mu.
type userWorker struct {
	requests chan *scoreRequest
	pending  int
}

// scoreRequest represents a queued scoring request
type scoreRequest struct {
	ctx        context.Context
	fn         ScoreFunc
	resultChan chan *scoreOutcome
}

// scoreOutcome represents the result of a processed request
type scoreOutcome struct {
	result *usecase.ScoreResult
	err    error
}

// NewUserQueue creates a new per-user queue
func NewUserQueue(logger coreport.Logger, bufferSize int) *UserQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &UserQueue{
		logger:     logger,
		bufferSize: bufferSize,
		queues:     make(map[string]*userWorker),
	}
}

// Enqueue adds work to the user's queue and waits for its result
func (q *UserQueue) Enqueue(ctx context.Context, userID string, fn ScoreFunc) (*usecase.ScoreResult, error) {
	// Buffered so a worker never blocks on a caller that gave up
	resultChan := make(chan *scoreOutcome, 1)

	if err := q.send(ctx, userID, fn, resultChan); err != nil {
		return nil, err
	}

	select {
	case outcome := <-resultChan:
		return outcome.result, outcome.err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for scoring result", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// ActiveUsers returns how many users currently own a worker
func (q *UserQueue) ActiveUsers() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues)
}

func (q *UserQueue) send(ctx context.Context, userID string, fn ScoreFunc, resultChan chan *scoreOutcome) error {
	worker, err := q.admit(userID)
	if err != nil {
		return err
	}

	req := &scoreRequest{
		ctx:        ctx,
		fn:         fn,
		resultChan: resultChan,
	}

	select {
	case worker.requests <- req:
		return nil
	case <-ctx.Done():
		q.withdraw(userID, worker)
		q.logger.Warn("Context canceled while enqueueing scoring work", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// admit reserves a slot on the user's worker, starting one if none is running
func (q *UserQueue) admit(userID string) (*userWorker, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, fmt.Errorf("%w: scoring queue is shut down", errs.ErrInternalServer)
	}

	worker, ok := q.queues[userID]
	if !ok {
		worker = &userWorker{requests: make(chan *scoreRequest, q.bufferSize)}
		q.queues[userID] = worker
		q.workers.Add(1)
		go q.processUserQueue(userID, worker)
	}
	worker.pending++
	return worker, nil
}

// withdraw releases a slot that was admitted but never delivered. When it was
// the last one the worker is idle on its channel, so closing it is safe.
func (q *UserQueue) withdraw(userID string, worker *userWorker) {
	q.mu.Lock()
	defer q.mu.Unlock()

	worker.pending--
	if worker.pending == 0 && q.queues[userID] == worker {
		delete(q.queues, userID)
		close(worker.requests)
	}
}

// done answers one request and reports whether the worker should exit
func (q *UserQueue) done(userID string, worker *userWorker) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	worker.pending--
	if worker.pending > 0 {
		return false
	}
	if q.queues[userID] == worker {
		delete(q.queues, userID)
	}
	return true
}

func (q *UserQueue) processUserQueue(userID string, worker *userWorker) {
	defer q.workers.Done()

	for req := range worker.requests {
		// Skip work whose caller is already gone
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- &scoreOutcome{err: err}
		} else {
			result, err := req.fn(req.ctx)
			req.resultChan <- &scoreOutcome{result: result, err: err}
		}

		if q.done(userID, worker) {
			return
		}
	}
}

// Shutdown stops admitting work and waits for queued work to finish.
// Workers exit on their own once their backlog drains.
func (q *UserQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.logger.Info("Shutting down scoring queues", nil)
	q.workers.Wait()
	q.logger.Info("Scoring queues shut down", nil)
}
