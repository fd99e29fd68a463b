// Package queue pulls raw inbound message payloads off the shared Redis
// list and hands them to the in-process job bus. It only moves bytes;
// payload validation belongs to the responder.
package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/onereply/onereply/pkg/bus"
	"github.com/onereply/onereply/pkg/logger"
)

const popTimeout = 5 * time.Second

type Consumer struct {
	client   *redis.Client
	queueKey string
	bus      bus.Publisher
}

func NewConsumer(client *redis.Client, queueKey string, jobBus bus.Publisher) *Consumer {
	return &Consumer{
		client:   client,
		queueKey: queueKey,
		bus:      jobBus,
	}
}

// Run blocks on the queue until ctx is cancelled. Each delivery gets a
// consumer-side id so one payload can be followed through the logs.
func (c *Consumer) Run(ctx context.Context) {
	logger.InfoCF("queue", "Consuming jobs", map[string]interface{}{
		"key": c.queueKey,
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		vals, err := c.client.BLPop(ctx, popTimeout, c.queueKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.WarnCF("queue", "BLPOP failed, retrying", map[string]interface{}{
				"error": err.Error(),
			})
			time.Sleep(2 * time.Second)
			continue
		}

		// BLPOP returns [key, value].
		if len(vals) != 2 {
			continue
		}

		c.bus.Publish(bus.ReplyJob{
			DeliveryID: uuid.NewString(),
			Raw:        []byte(vals[1]),
		})
	}
}
