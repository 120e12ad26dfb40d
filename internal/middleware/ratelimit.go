package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/response"
)

// Limiter decides whether another request from clientIP fits in the budget for scope.
type Limiter interface {
	Allow(ctx context.Context, scope, clientIP string) (bool, error)
}

// RateLimit rejects requests over the limiter's budget with 429. Limiter
// failures let the request through.
func RateLimit(l Limiter, scope string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), scope, c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// ─── Redis fixed window ─────────────────────────────────────────────

// RedisLimiter counts requests per client in fixed windows shared by every instance.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, scope, clientIP string) (bool, error) {
	slot := time.Now().UnixNano() / int64(l.window)
	key := config.CacheKey.LoginAttemptsKey(scope, clientIP, slot)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.limit), nil
}

// ─── In-process token bucket ────────────────────────────────────────

// MemoryLimiter is a per-process token bucket. The server always uses
// RedisLimiter; this one backs the router and middleware tests.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int           // Tokens per interval
	interval time.Duration // Refill interval
	calls    int
	now      func() time.Time
}

type visitor struct {
	tokens   int
	lastSeen time.Time
}

// NewMemoryLimiter creates a MemoryLimiter (e.g., 10 requests per minute).
func NewMemoryLimiter(rate int, interval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, scope, clientIP string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.calls++
	if l.calls%256 == 0 {
		l.cleanup(now)
	}

	key := scope + "|" + clientIP
	v, exists := l.visitors[key]
	if !exists {
		v = &visitor{tokens: l.rate, lastSeen: now}
		l.visitors[key] = v
	}

	// Refill tokens based on elapsed time.
	if refill := int(now.Sub(v.lastSeen)/l.interval) * l.rate; refill > 0 {
		v.tokens += refill
		if v.tokens > l.rate {
			v.tokens = l.rate
		}
		v.lastSeen = now
	}

	if v.tokens <= 0 {
		return false, nil
	}
	v.tokens--
	return true, nil
}

func (l *MemoryLimiter) cleanup(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > 3*l.interval {
			delete(l.visitors, key)
		}
	}
}
