package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redisclient "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/dailydone/marketplace-api/internal/api"
	"github.com/dailydone/marketplace-api/internal/core/ports"
	"github.com/dailydone/marketplace-api/internal/core/service"
	"github.com/dailydone/marketplace-api/internal/infrastructure/db/memory"
	mongostore "github.com/dailydone/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/dailydone/marketplace-api/internal/infrastructure/db/redis"
	"github.com/dailydone/marketplace-api/internal/infrastructure/db/seed"
	"github.com/dailydone/marketplace-api/internal/infrastructure/queue"
	"github.com/dailydone/marketplace-api/internal/infrastructure/token"
	"github.com/dailydone/marketplace-api/internal/pkg/config"
	"github.com/dailydone/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "dev-secret-change-me" && cfg.Env != "development" {
		log.Warn().Msg("running with the default JWT secret outside development")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Credential store ─────────────────────────────────────
	var (
		users     ports.UserRepository
		auditRepo ports.AuditRepository
		mongoDB   *mongodriver.Database
	)
	switch cfg.StoreBackend {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		repo := mongostore.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index setup failed")
		}
		users = repo
		auditRepo = mongostore.NewAuditRepository(db)
		mongoDB = db
	default:
		users = memory.NewUserRepository()
	}

	if cfg.SeedDemoUsers {
		if err := seed.SeedDemoUsers(ctx, users); err != nil {
			log.Fatal().Err(err).Msg("demo user seeding failed")
		}
	}
	if err := seed.SeedAdmin(ctx, users, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin provisioning failed")
	}

	// ── Token revocation (optional) ──────────────────────────
	var (
		rdb         *redisclient.Client
		revocations service.RevocationList
	)
	if cfg.TokenRevocation {
		var err error
		rdb, err = redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		revocations = redisstore.NewRevocationList(rdb)
	}

	// ── Audit pipeline ───────────────────────────────────────
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// ── HTTP server ──────────────────────────────────────────
	codec := token.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(api.Deps{
		Config:      cfg,
		Users:       users,
		Codec:       codec,
		Revocations: revocations,
		Audit:       dispatcher,
		MongoDB:     mongoDB,
		Redis:       rdb,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Msg("server listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
