// app/seenmw.go
package app

import (
	"Gin_postgres_redis_library/db"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func seenKey(uid string) string { return "lib:user:lastseen:" + uid }

// TouchLastSeen records user activity at most once per throttle window.
// The Redis SETNX gate keeps the users table from taking a write per
// request. Failures are logged and never block the request.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("userID")
		if uid == "" {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		first, err := rdb.SetNX(ctx, seenKey(uid), "1", throttle).Result()
		if err != nil {
			log.Warn("last seen throttle", "user_id", uid, "err", err)
		} else if first {
			if err := repo.TouchUserSeen(ctx, uid); err != nil {
				log.Warn("last seen update", "user_id", uid, "err", err)
			}
		}
		c.Next()
	}
}
