package artifact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fishbill/internal/document"
	"fishbill/internal/platform/redis"
	"fishbill/pkg/platform/sentinel"
)

// Redis keeps artifacts in a TTL-bounded hash so bills survive process
// restarts for the retention window without unbounded growth.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func key(billID uuid.UUID) string {
	return "fishbill:artifact:" + billID.String()
}

func (s *Redis) Put(ctx context.Context, billID uuid.UUID, doc *document.Document) error {
	k := key(billID)
	if err := s.client.HSet(ctx, k, "filename", doc.Filename, "data", doc.Bytes).Err(); err != nil {
		return fmt.Errorf("store artifact: %w", err)
	}
	if err := s.client.Expire(ctx, k, s.ttl).Err(); err != nil {
		return fmt.Errorf("set artifact ttl: %w", err)
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, billID uuid.UUID) (*document.Document, error) {
	fields, err := s.client.HGetAll(ctx, key(billID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load artifact: %w", err)
	}
	if len(fields) == 0 {
		return nil, sentinel.ErrNotFound
	}
	return &document.Document{
		Filename: fields["filename"],
		Bytes:    []byte(fields["data"]),
	}, nil
}
