package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/housebroker/listing-api/internal/api"
	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/service"
	"github.com/housebroker/listing-api/internal/infrastructure/config"
	mongodb "github.com/housebroker/listing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/housebroker/listing-api/internal/infrastructure/db/redis"
	"github.com/housebroker/listing-api/internal/infrastructure/queue"
	"github.com/housebroker/listing-api/pkg/logger"

	_ "github.com/housebroker/listing-api/docs"
)

const shutdownTimeout = 10 * time.Second

// @title           HouseBroker Listing API
// @version         1.0
// @description     Real-estate listing platform: broker/seeker accounts, property listings, and tiered commission quotes.
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := bootstrap(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("bootstrap store")
	}

	// Audit events are persisted off the request path.
	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	e := api.NewRouter(db, rdb, cfg, log, dispatcher)

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-srvErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server exited cleanly")
}

// bootstrap ensures indexes, the role catalog, and a default rate table before
// the server accepts traffic.
func bootstrap(ctx context.Context, db *mongo.Database) error {
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}

	propertyRepo := mongodb.NewPropertyRepository(db)
	if err := propertyRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("property indexes: %w", err)
	}

	roleRepo := mongodb.NewRoleRepository(db)
	for _, role := range domain.AllRoles {
		if err := roleRepo.Ensure(ctx, role); err != nil {
			return fmt.Errorf("seed role %s: %w", role, err)
		}
	}

	commissionRepo := mongodb.NewCommissionRepository(db)
	if err := commissionRepo.Seed(ctx, defaultTiers()); err != nil {
		return fmt.Errorf("seed tiers: %w", err)
	}

	return nil
}

func defaultTiers() []domain.CommissionTier {
	mustDec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			panic(err)
		}
		return d
	}
	decPtr := func(s string) *decimal.Decimal {
		d := mustDec(s)
		return &d
	}

	return []domain.CommissionTier{
		{MinPrice: mustDec("0"), MaxPrice: decPtr("50000"), RatePercentage: mustDec("2"), Description: "Listings up to 50,000"},
		{MinPrice: mustDec("50000.01"), MaxPrice: decPtr("200000"), RatePercentage: mustDec("3"), Description: "Listings from 50,000 to 200,000"},
		{MinPrice: mustDec("200000.01"), RatePercentage: mustDec("4"), Description: "Listings above 200,000"},
	}
}
