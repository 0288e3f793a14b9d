package app

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"equipment-rental-backend/config"
	"equipment-rental-backend/service"
	"equipment-rental-backend/storage"
)

// Aliases so handlers read shorter.
type Ctx = gin.Context
type H = gin.H

// App aggregates the wired dependencies.
type App struct {
	Router  *gin.Engine
	Store   storage.Store
	RDB     *redis.Client
	Catalog *service.Catalog
	Ledger  *service.Ledger
	Config  config.Config
}

func MustNew() *App {
	cfg := config.Load()
	store, rdb := mustOpenStore(cfg)

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	catalog := service.NewCatalog(store)
	ledger := service.NewLedger(store, catalog)

	return &App{
		Router:  r,
		Store:   store,
		RDB:     rdb,
		Catalog: catalog,
		Ledger:  ledger,
		Config:  cfg,
	}
}

func mustOpenStore(cfg config.Config) (storage.Store, *redis.Client) {
	switch cfg.StoreDriver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		return storage.NewRedisStore(rdb), rdb
	case "postgres":
		st, err := storage.OpenPostgres(cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		return st, nil
	case "sqlite":
		st, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("sqlite: %v", err)
		}
		return st, nil
	default:
		log.Println("using in-memory store, data will not survive restarts")
		return storage.NewMemoryStore(), nil
	}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}
