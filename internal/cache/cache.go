package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/redis/go-redis/v9"
)

// Fingerprint identifies a report by its entries in order. Each entry is length prefixed so
// no two distinct entry lists share an input to the hash.
func Fingerprint(entries []string) string {
	h := sha256.New()
	for _, entry := range entries {
		fmt.Fprintf(h, "%d:", len(entry))
		h.Write([]byte(entry))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// RedisResultCache stores finished diagnostic reports as JSON under prefix+fingerprint.
type RedisResultCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, prefix string, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisResultCache) Get(ctx context.Context, fingerprint string) (models.DiagnosticReport, bool, error) {
	data, err := c.client.Get(ctx, c.key(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.DiagnosticReport{}, false, nil
	}
	if err != nil {
		return models.DiagnosticReport{}, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	var report models.DiagnosticReport
	if err := json.Unmarshal(data, &report); err != nil {
		return models.DiagnosticReport{}, false, fmt.Errorf("failed to decode cached report: %w", err)
	}

	return report, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, fingerprint string, report models.DiagnosticReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := c.client.Set(ctx, c.key(fingerprint), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

func (c *RedisResultCache) key(fingerprint string) string {
	return c.prefix + fingerprint
}

// Nop never hits and drops every write.
type Nop struct{}

func (Nop) Get(context.Context, string) (models.DiagnosticReport, bool, error) {
	return models.DiagnosticReport{}, false, nil
}

func (Nop) Set(context.Context, string, models.DiagnosticReport) error {
	return nil
}
