package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

const (
	processingKey   = "processing:log"
	processingIDKey = "processing:log:id"
	// Only the most recent entries are kept; older ones are trimmed away.
	processingCap = 1000
)

// LogStore keeps a capped list of image-processing operations in Redis.
// Entries are JSON-encoded and pushed newest-first; the list is trimmed to
// the cap on every append.
type LogStore struct {
	client *redis.Client
}

func NewLogStore(client *redis.Client) *LogStore {
	return &LogStore{client: client}
}

func (s *LogStore) Append(ctx context.Context, entry domain.ProcessingEntry) error {
	id, err := s.client.Incr(ctx, processingIDKey).Result()
	if err != nil {
		return fmt.Errorf("processing log id: %w", err)
	}
	entry.ID = id
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("processing log encode: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, processingKey, data)
	pipe.LTrim(ctx, processingKey, 0, processingCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("processing log append: %w", err)
	}
	return nil
}

func (s *LogStore) Recent(ctx context.Context) ([]domain.ProcessingEntry, error) {
	raw, err := s.client.LRange(ctx, processingKey, 0, processingCap-1).Result()
	if err != nil {
		return nil, fmt.Errorf("processing log read: %w", err)
	}

	entries := make([]domain.ProcessingEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.ProcessingEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			// Skip malformed entries rather than failing the whole read.
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
