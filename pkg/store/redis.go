package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Key layout, shared with the previous generation of the service. Changing
// any of these orphans state already written in production.
const (
	// ArchivedSetKey is the global set of numbers that already received
	// their reply.
	ArchivedSetKey = "archived_numbers"

	processedKeyPrefix = "processed:"
	convKeyPrefix      = "conv:"

	stepField   = "step"
	deviceField = "device"
)

func processedKey(number string) string {
	return processedKeyPrefix + number
}

// ConversationKey returns the per-number conversation hash key.
func ConversationKey(number string) string {
	return convKeyPrefix + number
}

// ConversationKeyPattern matches every conversation hash key.
const ConversationKeyPattern = convKeyPrefix + "*"

// NumberFromConversationKey recovers the phone number from a conversation
// hash key.
func NumberFromConversationKey(key string) string {
	return strings.TrimPrefix(key, convKeyPrefix)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) IsArchived(ctx context.Context, number string) (bool, error) {
	member, err := s.client.SIsMember(ctx, ArchivedSetKey, number).Result()
	if err != nil {
		return false, fmt.Errorf("sismember %s: %w", ArchivedSetKey, err)
	}
	return member, nil
}

func (s *RedisStore) Archive(ctx context.Context, number string) (bool, error) {
	added, err := s.client.SAdd(ctx, ArchivedSetKey, number).Result()
	if err != nil {
		return false, fmt.Errorf("sadd %s: %w", ArchivedSetKey, err)
	}
	return added == 1, nil
}

func (s *RedisStore) IsProcessed(ctx context.Context, number, msgID string) (bool, error) {
	member, err := s.client.SIsMember(ctx, processedKey(number), msgID).Result()
	if err != nil {
		return false, fmt.Errorf("sismember %s: %w", processedKey(number), err)
	}
	return member, nil
}

func (s *RedisStore) MarkProcessed(ctx context.Context, number, msgID string) error {
	if err := s.client.SAdd(ctx, processedKey(number), msgID).Err(); err != nil {
		return fmt.Errorf("sadd %s: %w", processedKey(number), err)
	}
	return nil
}

func (s *RedisStore) Step(ctx context.Context, number string) (int, error) {
	val, err := s.client.HGet(ctx, ConversationKey(number), stepField).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("hget %s: %w", ConversationKey(number), err)
	}
	step, err := strconv.Atoi(val)
	if err != nil {
		// A mangled step field means the record is garbage; treat as
		// untouched rather than wedging the number forever.
		return 0, nil
	}
	return step, nil
}

func (s *RedisStore) RecordDevice(ctx context.Context, number, deviceID string) error {
	if err := s.client.HSet(ctx, ConversationKey(number), deviceField, deviceID).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", ConversationKey(number), err)
	}
	return nil
}

func (s *RedisStore) MarkReplied(ctx context.Context, number string) error {
	if err := s.client.HSet(ctx, ConversationKey(number), stepField, 1).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", ConversationKey(number), err)
	}
	return nil
}

func (s *RedisStore) ClearConversation(ctx context.Context, number string) error {
	if err := s.client.Del(ctx, ConversationKey(number)).Err(); err != nil {
		return fmt.Errorf("del %s: %w", ConversationKey(number), err)
	}
	return nil
}
