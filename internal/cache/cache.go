package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache memoizes composed advisory responses. The advisory pipeline is
// a pure function of the message text, so cached responses never go
// stale on content, only on TTL.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Key derives the cache key for a message.
func Key(message string) string {
	sum := sha256.Sum256([]byte(message))
	return "advice:" + hex.EncodeToString(sum[:])
}
