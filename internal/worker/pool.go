package worker

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	githubtypes "github.com/jasonwhite/github-types"
	"github.com/jasonwhite/github-types/internal/models"
)

const maxRetries = 5

// EventHandler processes a parsed webhook event. Returning
// *ErrTransient re-queues the delivery; any other error is treated as
// permanent.
type EventHandler func(event githubtypes.Event) error

// Pool manages a pool of workers and a job queue.
type Pool struct {
	JobQueue   chan models.Job
	done       chan struct{}
	wg         sync.WaitGroup
	logger     *slog.Logger
	deliveries *DeliveryStore
	handler    EventHandler
	retryDelay time.Duration
}

// NewPool creates a new worker pool. If handler is nil, a default
// handler that logs each event is installed.
func NewPool(maxQueueSize int, logger *slog.Logger, store *DeliveryStore, handler EventHandler) *Pool {
	p := &Pool{
		JobQueue:   make(chan models.Job, maxQueueSize),
		done:       make(chan struct{}),
		logger:     logger,
		deliveries: store,
		handler:    handler,
		retryDelay: 10 * time.Second,
	}
	if p.handler == nil {
		p.handler = p.logEvent
	}
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start(numWorkers int) {
	for i := 1; i <= numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop signals the workers to stop and waits for them to finish. Jobs
// already queued are drained first; deliveries waiting out a retry
// delay are dropped, which is safe because GitHub redelivers on a
// missing acknowledgement. The job queue itself is never closed, so a
// handler racing with shutdown can still enqueue without panicking.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool")
	close(p.done)
	p.wg.Wait()
	p.logger.Info("All workers have stopped")
}

// worker is the background goroutine that processes jobs from the
// queue.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	p.logger.Info("Worker started", "worker_id", id)

	for {
		select {
		case job := <-p.JobQueue:
			p.handleJob(id, job)
		case <-p.done:
			// Drain what is already queued before exiting.
			for {
				select {
				case job := <-p.JobQueue:
					p.handleJob(id, job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) handleJob(workerID int, job models.Job) {
	logger := p.logger.With(
		"worker_id", workerID,
		"delivery_id", job.DeliveryID,
		"event", job.Event,
		"attempt", job.Attempts+1,
	)

	if p.deliveries.Seen(job.DeliveryID) {
		logger.Warn("Duplicate delivery detected and ignored")
		return
	}

	err := p.processDelivery(job)

	if err == nil {
		logger.Info("Delivery processed successfully")
		p.deliveries.Mark(job.DeliveryID)
		return
	}

	var permanentErr *ErrPermanent
	var transientErr *ErrTransient

	switch {
	case errors.As(err, &permanentErr):
		logger.Error("Delivery failed with permanent error, will not be retried", "error", err)
		p.deliveries.Mark(job.DeliveryID)
	case errors.As(err, &transientErr):
		job.Attempts++
		if job.Attempts < maxRetries {
			logger.Warn("Delivery failed with transient error, re-queuing for another attempt",
				"error", err, "delay", p.retryDelay)
			go p.requeue(job)
		} else {
			logger.Error("Delivery failed after max retries, dropping", "error", err)
			// Mark as processed so GitHub redeliveries are ignored.
			p.deliveries.Mark(job.DeliveryID)
		}
	default:
		logger.Error("Delivery failed with an unknown error", "error", err)
	}
}

// requeue puts a transiently-failed job back on the queue after the
// retry delay. If the pool is stopped while waiting, the job is
// dropped instead.
func (p *Pool) requeue(job models.Job) {
	timer := time.NewTimer(p.retryDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-p.done:
		return
	}
	select {
	case p.JobQueue <- job:
	case <-p.done:
	}
}

// processDelivery parses the raw payload against the event schema and
// hands the typed event to the handler. Payloads that do not decode are
// a schema mismatch, not a recoverable condition, so they fail
// permanently.
func (p *Pool) processDelivery(job models.Job) error {
	event, err := githubtypes.ParseEvent(job.Event, job.Payload)
	if err != nil {
		return &ErrPermanent{Err: err}
	}
	return p.handler(event)
}

// logEvent is the default handler.
func (p *Pool) logEvent(event githubtypes.Event) error {
	switch e := event.(type) {
	case *githubtypes.PushEvent:
		p.logger.Info("Push received",
			"ref", e.GitRef,
			"before", e.Before,
			"after", e.After,
			"commits", len(e.Commits),
			"forced", e.Forced,
		)
	case *githubtypes.PullRequestEvent:
		p.logger.Info("Pull request updated",
			"action", e.Action,
			"number", e.Number,
			"title", e.PullRequest.Title,
		)
	case *githubtypes.CheckSuiteEvent:
		p.logger.Info("Check suite updated",
			"action", e.Action,
			"head_sha", e.CheckSuite.HeadSha,
			"status", e.CheckSuite.Status,
		)
	default:
		if id, ok := event.Installation(); ok {
			p.logger.Info("Event received", "installation_id", id)
		} else {
			p.logger.Info("Event received")
		}
	}
	return nil
}
