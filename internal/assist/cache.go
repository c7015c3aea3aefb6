package assist

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedTranslator memoizes another Translator per (target, text) pair.
// Only successful translations are cached: a result equal to the input is
// indistinguishable from a fallback, so it is retried next time.
type CachedTranslator struct {
	next  Translator
	cache *cache.Cache
}

// NewCachedTranslator wraps next with a TTL cache.
func NewCachedTranslator(next Translator, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (c *CachedTranslator) Translate(ctx context.Context, text, target string) string {
	if !NeedsTranslation(target) {
		return text
	}
	key := target + "\x00" + text
	if v, ok := c.cache.Get(key); ok {
		return v.(string)
	}
	out := c.next.Translate(ctx, text, target)
	if out != text {
		c.cache.Set(key, out, cache.DefaultExpiration)
	}
	return out
}
