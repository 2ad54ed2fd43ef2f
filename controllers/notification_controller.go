package controllers

import (
	"net/http"

	"Gin_postgres_redis_library/app"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ *Srv }

func NewNotificationController(s *Srv) *NotificationController {
	return &NotificationController{Srv: s}
}

// GET /api/notifications
func (nc *NotificationController) List(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	ns, err := nc.Repo.ListNotifications(ctx, who.UserID)
	if err != nil {
		nc.fail(c, "list notifications", err)
		return
	}
	unread, err := nc.Repo.CountUnreadNotifications(ctx, who.UserID)
	if err != nil {
		nc.fail(c, "count notifications", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": ns, "unread": unread})
}

// PATCH /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := nc.Repo.MarkNotificationRead(c.Request.Context(), who.UserID, id); err != nil {
		nc.fail(c, "mark notification", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// DELETE /api/notifications/:id
func (nc *NotificationController) Delete(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := nc.Repo.DeleteNotification(c.Request.Context(), who.UserID, id); err != nil {
		nc.fail(c, "delete notification", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
