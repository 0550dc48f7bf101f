package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerWindow int           // Number of requests allowed per window
	Window            time.Duration // Time window for rate limiting
	KeyPrefix         string        // Redis key prefix
}

// rateWindow is the state of one client's fixed window after a hit
type rateWindow struct {
	count     int64
	remaining time.Duration
}

func (w rateWindow) exceeded(limit int) bool {
	return w.count > int64(limit)
}

// hit counts one request for key. The counter and its TTL are read in a
// single transaction; a key left without a TTL gets the window reapplied.
func hit(ctx context.Context, redisClient *redis.Client, key string, window time.Duration) (rateWindow, error) {
	pipe := redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return rateWindow{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
			return rateWindow{}, err
		}
		remaining = window
	}

	return rateWindow{count: incr.Val(), remaining: remaining}, nil
}

// RateLimitMiddleware applies a fixed-window limit per client address using Redis.
// Requests are let through when Redis is unavailable.
func RateLimitMiddleware(redisClient *redis.Client, config RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	limit := strconv.Itoa(config.RequestsPerWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := clientAddress(r)
			key := fmt.Sprintf("%s:%s", config.KeyPrefix, clientID)

			state, err := hit(r.Context(), redisClient, key, config.Window)
			if err != nil {
				logger.Error("Failed to update rate limit window",
					zap.Error(err),
					zap.String("key", key),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", limit)

			if state.exceeded(config.RequestsPerWindow) {
				logger.Warn("Rate limit exceeded",
					zap.String("client_id", clientID),
					zap.Int64("count", state.count),
					zap.Int("limit", config.RequestsPerWindow),
				)

				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(state.remaining).Unix(), 10))
				w.Header().Set("Retry-After", strconv.Itoa(int(state.remaining.Seconds())))

				RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.RequestsPerWindow)-state.count, 10))

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddress strips the port from RemoteAddr, which chi's RealIP may already
// have replaced with a bare forwarded address
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
