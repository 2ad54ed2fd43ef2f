package main

import (
	"Gin_postgres_redis_library/app"
	"Gin_postgres_redis_library/config"
	"Gin_postgres_redis_library/routes"
	"os"
)

func main() {
	config.LoadEnv()
	application := app.MustNew()
	defer application.Close()

	routes.RegisterRoutes(application.Router, application)

	port := application.Config.Port
	application.Log.Info("listening", "port", port)
	if err := application.Router.Run(":" + port); err != nil {
		application.Log.Error("server stopped", "err", err)
		application.Close()
		os.Exit(1)
	}
}
