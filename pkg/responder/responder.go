// Package responder holds the decision core: for every inbound message job
// it decides between dropping (archived, duplicate, malformed) and running
// the one-time reply-and-archive sequence. The archive set doubles as the
// concurrency gate, so the sequence runs at most once per number no matter
// how many workers race on it.
package responder

import (
	"context"
	"fmt"
	"sync"

	"github.com/onereply/onereply/pkg/bus"
	"github.com/onereply/onereply/pkg/logger"
	"github.com/onereply/onereply/pkg/notifier"
	"github.com/onereply/onereply/pkg/store"
)

// fallbackName substitutes for the contact name when the directory has no
// match for the number.
const fallbackName = "default"

const replyTemplate = "Pardon, j’étais en tournée et je n’avais pas vu votre message. " +
	"Il faut effectuer la demande via : https://%s.%s merci"

// NameResolver is the directory-lookup boundary. It never fails, only
// misses.
type NameResolver interface {
	ResolveName(ctx context.Context, number string) (string, bool)
}

type Responder struct {
	bus      bus.Subscriber
	store    store.ConversationStore
	names    NameResolver
	notifier notifier.Notifier

	// Domain suffix of the link embedded in the reply text.
	secondMessageLink string

	workers int
}

func New(jobBus bus.Subscriber, st store.ConversationStore, names NameResolver, n notifier.Notifier, secondMessageLink string, workers int) *Responder {
	if workers < 1 {
		workers = 1
	}
	return &Responder{
		bus:               jobBus,
		store:             st,
		names:             names,
		notifier:          n,
		secondMessageLink: secondMessageLink,
		workers:           workers,
	}
}

// Run consumes jobs until ctx is cancelled. Every worker shares the bus;
// jobs for different numbers proceed in parallel, jobs for the same number
// are serialized by the store's claim, not by anything in-process.
func (r *Responder) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				job, ok := r.bus.Consume(ctx)
				if !ok {
					return
				}
				result := r.Process(ctx, job)
				logger.InfoCF("responder", "Job finished", map[string]interface{}{
					"worker":   worker,
					"delivery": job.DeliveryID,
					"result":   result.String(),
				})
			}
		}(i)
	}
	wg.Wait()
}

// Process runs the full decision for one job and reports what happened.
// It never returns an error: every failure mode is a Result, logged here,
// and the caller always returns normally to the transport.
func (r *Responder) Process(ctx context.Context, job bus.ReplyJob) Result {
	job, err := parseJob(job)
	if err != nil {
		logger.WarnCF("responder", "Dropping malformed job", map[string]interface{}{
			"delivery": job.DeliveryID,
			"error":    err.Error(),
		})
		return ResultInvalid
	}

	// Archived strictly before duplicate: archived means done forever, so
	// its messages are never inspected further. An archived number's job
	// must leave no trace in the store at all.
	archived, err := r.store.IsArchived(ctx, job.Number)
	if err != nil {
		return r.storeError(job, err)
	}
	if archived {
		return r.drop(job, ResultArchived)
	}

	processed, err := r.store.IsProcessed(ctx, job.Number, job.MessageID)
	if err != nil {
		return r.storeError(job, err)
	}
	if processed {
		return r.drop(job, ResultDuplicate)
	}

	// Keep the last-seen device slot current for numbers still in flight.
	if err := r.store.RecordDevice(ctx, job.Number, job.DeviceID); err != nil {
		return r.storeError(job, err)
	}

	step, err := r.store.Step(ctx, job.Number)
	if err != nil {
		return r.storeError(job, err)
	}
	if step != 0 {
		return r.drop(job, ResultAlreadyHandled)
	}

	// The claim. SADD reports whether the number was newly added; exactly
	// one worker ever sees true, so two jobs racing on a fresh number
	// cannot both reach the reply sequence.
	claimed, err := r.store.Archive(ctx, job.Number)
	if err != nil {
		return r.storeError(job, err)
	}
	if !claimed {
		return r.drop(job, ResultAlreadyHandled)
	}

	r.reply(ctx, job)
	return ResultReplied
}

// reply runs the one-time sequence. The claim is already held; from here on
// nothing aborts the state transitions, send failure included.
func (r *Responder) reply(ctx context.Context, job bus.ReplyJob) {
	name := fallbackName
	if resolved, ok := r.names.ResolveName(ctx, job.Number); ok {
		name = resolved
	}

	message := fmt.Sprintf(replyTemplate, name, r.secondMessageLink)

	if err := r.store.MarkReplied(ctx, job.Number); err != nil {
		logger.ErrorCF("responder", "Failed to advance step", map[string]interface{}{
			"msg_id": shortID(job.MessageID),
			"error":  err.Error(),
		})
	}

	result, err := r.notifier.Send(ctx, job.Number, message, job.DeviceID)
	if err != nil {
		// Fire and forget: the number still archives. The sender gets
		// nothing rather than a second attempt later.
		logger.ErrorCF("responder", "Send failed", map[string]interface{}{
			"msg_id": shortID(job.MessageID),
			"error":  err.Error(),
		})
	} else {
		logger.InfoCF("responder", "Reply sent", map[string]interface{}{
			"msg_id": shortID(job.MessageID),
			"data":   string(result.Data),
		})
	}

	if err := r.store.MarkProcessed(ctx, job.Number, job.MessageID); err != nil {
		logger.ErrorCF("responder", "Failed to record processed message", map[string]interface{}{
			"msg_id": shortID(job.MessageID),
			"error":  err.Error(),
		})
	}

	if err := r.store.ClearConversation(ctx, job.Number); err != nil {
		logger.ErrorCF("responder", "Failed to clear conversation", map[string]interface{}{
			"msg_id": shortID(job.MessageID),
			"error":  err.Error(),
		})
	}
}

func (r *Responder) drop(job bus.ReplyJob, result Result) Result {
	logger.DebugCF("responder", "Dropping job", map[string]interface{}{
		"msg_id": shortID(job.MessageID),
		"reason": result.String(),
	})
	return result
}

func (r *Responder) storeError(job bus.ReplyJob, err error) Result {
	logger.ErrorCF("responder", "Store operation failed, abandoning job", map[string]interface{}{
		"msg_id": shortID(job.MessageID),
		"error":  err.Error(),
	})
	return ResultStoreError
}
