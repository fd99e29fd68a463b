// Package store tracks which numbers have already received their one-time
// reply. All state lives in a shared Redis instance so that any worker, in
// any process, observes the same view.
package store

import "context"

// ConversationStore is the durable-state contract the responder runs
// against. Every operation maps to a single atomic store command; there are
// no read-modify-write sequences behind this interface.
type ConversationStore interface {
	// IsArchived reports whether number already received its reply.
	IsArchived(ctx context.Context, number string) (bool, error)

	// Archive adds number to the archived set and reports whether it was
	// newly added. The boolean is the one-shot claim: exactly one caller
	// across all workers ever sees true for a given number.
	Archive(ctx context.Context, number string) (bool, error)

	// IsProcessed reports whether msgID was already handled for number.
	IsProcessed(ctx context.Context, number, msgID string) (bool, error)

	// MarkProcessed records msgID as handled for number.
	MarkProcessed(ctx context.Context, number, msgID string) error

	// Step returns the conversation step for number, 0 when absent.
	Step(ctx context.Context, number string) (int, error)

	// RecordDevice stores the last seen device slot for number.
	RecordDevice(ctx context.Context, number, deviceID string) error

	// MarkReplied advances the conversation step to 1.
	MarkReplied(ctx context.Context, number string) error

	// ClearConversation deletes the transient conversation record.
	ClearConversation(ctx context.Context, number string) error
}
