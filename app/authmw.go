package app

import (
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"
	"Gin_postgres_redis_library/session"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const AppSessionCookie = "app_session"

// AuthRequired resolves the app_session cookie to a user and stores
// userID, username and role on the context.
func AuthRequired(appSess *session.AppSessionStore, repo *db.Repo, cfg Config, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AppSessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		as, err := appSess.Get(c.Request.Context(), ck.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				log.Error("session lookup", "err", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session"})
			return
		}

		u, err := repo.FindUserByID(c.Request.Context(), as.UserID)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				_ = appSess.Delete(c.Request.Context(), ck.Value)
			} else {
				log.Error("session user lookup", "user_id", as.UserID, "err", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		role := u.Role
		if cfg.IsAdminEmail(u.Username) {
			role = models.RoleAdmin
		}
		c.Set("userID", u.ID)
		c.Set("username", u.Username)
		c.Set("role", role)
		c.Next()
	}
}

// AdminOnly must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userID") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		if role, _ := c.Get("role"); role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
