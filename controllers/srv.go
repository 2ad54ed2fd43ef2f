// controllers/srv.go
package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"Gin_postgres_redis_library/app"
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"
	"Gin_postgres_redis_library/session"
	"Gin_postgres_redis_library/workflow"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Repo    *db.Repo
	Flow    *workflow.Coordinator
	AppSess *session.AppSessionStore
	Log     *slog.Logger
	Cfg     app.Config
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Repo:    repo,
		Flow:    workflow.New(repo, a.Log),
		AppSess: a.AppSessions(),
		Log:     a.Log,
		Cfg:     a.Config,
	}
}

// --- helpers ---

// actor reads the caller AuthRequired put on the context.
func actor(c *gin.Context) (workflow.Actor, bool) {
	uid := c.GetString("userID")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return workflow.Actor{}, false
	}
	role, _ := c.Get("role")
	r, _ := role.(models.Role)
	return workflow.Actor{UserID: uid, Role: r}, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// fail maps domain errors to a status and logs anything unexpected.
func (s *Srv) fail(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		status, msg = http.StatusNotFound, "book not found"
	case errors.Is(err, models.ErrRecordNotFound):
		status, msg = http.StatusNotFound, "borrow record not found"
	case errors.Is(err, models.ErrNotificationNotFound):
		status, msg = http.StatusNotFound, "notification not found"
	case errors.Is(err, models.ErrInvalidTransition):
		status, msg = http.StatusConflict, "borrow record is no longer in a state that allows this"
	case errors.Is(err, models.ErrOutOfStock):
		status, msg = http.StatusConflict, "out of stock"
	case errors.Is(err, models.ErrForbidden):
		status, msg = http.StatusForbidden, "forbidden"
	default:
		s.Log.Error(op, "err", err, "req_id", c.GetString("requestID"))
	}
	c.JSON(status, app.H{"error": msg})
}
