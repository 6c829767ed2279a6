package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type cachedResult struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the stored result of a POST carrying the same
// Idempotency-Key and rejects a duplicate that arrives while the first one is
// still running. Handlers finish the cycle with CompleteIdempotency.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedResult
			if json.Unmarshal([]byte(val), &cached) == nil {
				logger.Debug("idempotent replay", zap.String("key", cacheKey))
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, cached.Status, cached.Data, nil)
				c.Abort()
				return
			}
		}

		// Lock kedaluwarsa sendiri kalau proses crash di tengah jalan.
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed")
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)
		c.Next()
	}
}

// CompleteIdempotency stores a successful result for replay and releases the
// in-flight lock. Passing a nil payload only releases the lock.
func CompleteIdempotency(c *gin.Context, rdb *redis.Client, status int, payload any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if payload != nil {
		if ck := c.GetString(idempotencyCacheKey); ck != "" {
			if data, err := json.Marshal(payload); err == nil {
				if raw, err := json.Marshal(cachedResult{Status: status, Data: data}); err == nil {
					_ = rdb.Set(ctx, ck, raw, idempotencyResultTTL).Err()
				}
			}
		}
	}

	if lk := c.GetString(idempotencyLockKey); lk != "" {
		_ = rdb.Del(ctx, lk).Err()
	}
}
