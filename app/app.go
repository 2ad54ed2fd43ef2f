package app

import (
	"Gin_postgres_redis_library/config"
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/session"
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Ctx = gin.Context
type H = gin.H

// App holds the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config
	Log    *slog.Logger

	appSess *session.AppSessionStore
}

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	LogFormat   string
	Database    db.Config
	RedisAddr   string
	RedisPwd    string
	WebOrigin   string
	SessionTTL  time.Duration
	SeenEvery   time.Duration
	AdminEmails []string
}

func (a *App) AppSessions() *session.AppSessionStore { return a.appSess }

// MustNew wires the app from the environment and exits on failure.
func MustNew() *App {
	cfg := LoadConfig()
	log := NewLogger(cfg)

	conn, err := db.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Error("database", "err", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("redis", "addr", cfg.RedisAddr, "err", err)
		os.Exit(1)
	}

	return New(cfg, log, conn, rdb)
}

// New builds the router around already opened connections.
func New(cfg Config, log *slog.Logger, conn *gorm.DB, rdb *redis.Client) *App {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestLog(log))
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r, DB: conn, RDB: rdb, Config: cfg, Log: log,
		appSess: session.NewAppSessionStore(rdb, cfg.SessionTTL),
	}
}

func (a *App) Close() {
	_ = a.RDB.Close()
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func LoadConfig() Config {
	get := config.Get
	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "86400") + "s"); err == nil {
		ttl = d
	}
	seen := 5 * time.Minute
	if d, err := time.ParseDuration(get("SEEN_THROTTLE", "5m")); err == nil {
		seen = d
	}
	var admins []string
	for _, s := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if t := strings.TrimSpace(s); t != "" {
			admins = append(admins, strings.ToLower(t))
		}
	}
	return Config{
		Env:       get("APP_ENV", "development"),
		Port:      get("PORT", "3001"),
		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", ""),
		Database: db.Config{
			Host:     get("DB_HOST", "127.0.0.1"),
			User:     get("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     get("DB_NAME", "library"),
			Port:     get("DB_PORT", "5432"),
		},
		RedisAddr:   get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:    os.Getenv("REDIS_PASSWORD"),
		WebOrigin:   get("WEB_ORIGIN", "http://localhost:3000"),
		SessionTTL:  ttl,
		SeenEvery:   seen,
		AdminEmails: admins,
	}
}

// IsAdminEmail reports whether username is listed in ADMIN_EMAILS.
func (c Config) IsAdminEmail(username string) bool {
	email := strings.ToLower(username)
	for _, admin := range c.AdminEmails {
		if email == admin {
			return true
		}
	}
	return false
}
