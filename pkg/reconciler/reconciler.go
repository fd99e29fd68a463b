// Package reconciler periodically looks for conversations that were claimed
// but never cleaned up: a non-zero step with the conversation hash still
// present means a worker crashed between the claim and the final delete.
// The sweep only reports; archiving decisions stay with the responder.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/redis/go-redis/v9"

	"github.com/onereply/onereply/pkg/logger"
	"github.com/onereply/onereply/pkg/store"
)

type Reconciler struct {
	client   *redis.Client
	schedule string
	gron     *gronx.Gronx
}

func New(client *redis.Client, schedule string) (*Reconciler, error) {
	g := gronx.New()
	if !g.IsValid(schedule) {
		return nil, fmt.Errorf("invalid cron expression: %q", schedule)
	}
	return &Reconciler{
		client:   client,
		schedule: schedule,
		gron:     g,
	}, nil
}

// Run wakes every minute and sweeps when the schedule matches.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	logger.InfoCF("reconciler", "Stale-conversation sweep scheduled", map[string]interface{}{
		"cron": r.schedule,
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			due, err := r.gron.IsDue(r.schedule, time.Now())
			if err != nil || !due {
				continue
			}
			if err := r.Sweep(ctx); err != nil {
				logger.WarnCF("reconciler", "Sweep failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// Sweep scans all conversation hashes and logs the stuck ones. A
// conversation is stuck when its step advanced but the hash was never
// deleted, whether or not the number made it into the archived set.
func (r *Reconciler) Sweep(ctx context.Context) error {
	var cursor uint64
	stuck := 0
	scanned := 0

	for {
		keys, next, err := r.client.Scan(ctx, cursor, store.ConversationKeyPattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}

		for _, key := range keys {
			scanned++
			number := store.NumberFromConversationKey(key)

			step, err := r.client.HGet(ctx, key, "step").Result()
			if err != nil {
				continue
			}
			if step == "0" || step == "" {
				continue
			}

			archived, err := r.client.SIsMember(ctx, store.ArchivedSetKey, number).Result()
			if err != nil {
				continue
			}

			stuck++
			logger.WarnCF("reconciler", "Conversation stuck mid-sequence", map[string]interface{}{
				"number":   number,
				"step":     step,
				"archived": archived,
			})
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	logger.InfoCF("reconciler", "Sweep complete", map[string]interface{}{
		"scanned": scanned,
		"stuck":   stuck,
	})
	return nil
}
