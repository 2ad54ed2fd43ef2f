package controllers

import (
	"net/http"
	"strings"

	"Gin_postgres_redis_library/app"

	"github.com/gin-gonic/gin"
)

type SessionController struct{ *Srv }

func NewSessionController(s *Srv) *SessionController { return &SessionController{Srv: s} }

// GET /api/session
func (sc *SessionController) WhoAmI(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, app.H{
		"userID":   who.UserID,
		"username": c.GetString("username"),
		"role":     who.Role,
	})
}

// POST /api/session/logout
func (sc *SessionController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		if err := sc.AppSess.Delete(c.Request.Context(), ck.Value); err != nil {
			sc.Log.Warn("logout", "err", err)
		}
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(sc.Cfg.WebOrigin, "https://"),
	})
	c.JSON(http.StatusOK, app.H{"ok": true})
}
