package routes

import (
	"Gin_postgres_redis_library/app"
	"Gin_postgres_redis_library/controllers"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	bookCtl := controllers.NewBookController(s)
	borrowCtl := controllers.NewBorrowController(s)
	noteCtl := controllers.NewNotificationController(s)
	sessCtl := controllers.NewSessionController(s)

	authMW := app.AuthRequired(s.AppSess, s.Repo, a.Config, a.Log)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, a.Config.SeenEvery, a.Log)

	r.GET("/healthz", func(c *app.Ctx) { c.JSON(http.StatusOK, app.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", authMW, seenMW)

	sess := api.Group("/session")
	{
		sess.GET("", sessCtl.WhoAmI)
		sess.POST("/logout", sessCtl.Logout)
	}

	// catalog (read only here)
	books := api.Group("/books")
	{
		books.GET("", bookCtl.List) // ?q=&category=
		books.GET("/:id", bookCtl.Get)
	}

	// borrower side of the lifecycle
	borrows := api.Group("/borrows")
	{
		borrows.POST("", borrowCtl.Request)
		borrows.GET("", borrowCtl.List) // ?status=&userId=&page=&size=
		borrows.GET("/:id", borrowCtl.Get)
		borrows.POST("/:id/return", borrowCtl.Return)
	}

	// librarian decisions
	admin := api.Group("/admin", adminMW)
	{
		admin.POST("/borrows/:id/approve", borrowCtl.Approve)
		admin.POST("/borrows/:id/reject", borrowCtl.Reject)
	}

	notes := api.Group("/notifications")
	{
		notes.GET("", noteCtl.List)
		notes.PATCH("/:id/read", noteCtl.MarkRead)
		notes.DELETE("/:id", noteCtl.Delete)
	}
}
