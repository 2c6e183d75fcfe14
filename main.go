package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"example.com/product-catalog/internal/config"
	"example.com/product-catalog/internal/infra/persistence/sqlstore"
	"example.com/product-catalog/internal/infra/security"
	httpapi "example.com/product-catalog/internal/interface/http"
	"example.com/product-catalog/internal/pkg/clock"
	"example.com/product-catalog/internal/pkg/logger"
	authuc "example.com/product-catalog/internal/usecase/auth"
	productuc "example.com/product-catalog/internal/usecase/product"
	supplieruc "example.com/product-catalog/internal/usecase/supplier"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash of the given password and exit")
	flag.Parse()

	cfg := config.Load()

	hasher := security.NewBcryptService(cfg.BcryptCost)
	if *hashPassword != "" {
		hash, err := hasher.Hash(*hashPassword)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	log := logger.NewLogger(cfg.ServiceName, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.AuthRequired() && cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set when AUTH_MODE=jwt")
	}

	db, err := sqlstore.Open(cfg.DBDriver, cfg.DBDSN, cfg.DBMaxOpenConns, cfg.DBConnMaxLifetime)
	if err != nil {
		log.Fatal("open store", logger.Error(err))
	}

	if err := sqlstore.Ping(context.Background(), db); err != nil {
		log.Warn("store not reachable at startup", logger.String("driver", cfg.DBDriver), logger.Error(err))
	}

	products := sqlstore.NewProductRepository(db)
	suppliers := sqlstore.NewSupplierRepository(db)
	users := sqlstore.NewUserRepository(db)

	tokens := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(users, hasher, tokens, log),
		ProductService:  productuc.NewService(products, suppliers, clock.RealClock{}, log),
		SupplierService: supplieruc.NewService(suppliers),
		Logger:          log,
		AuthRequired:    cfg.AuthRequired(),
		PingStore: func(ctx context.Context) error {
			return sqlstore.Ping(ctx, db)
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("listening",
			logger.String("addr", srv.Addr),
			logger.String("environment", cfg.Environment),
			logger.String("auth_mode", cfg.AuthMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", logger.Error(err))
		}
	}()

	waitForShutdown(log, srv, db)
}

func waitForShutdown(log logger.Logger, srv *http.Server, db *sqlx.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("close store", logger.Error(err))
	}
	log.Info("server stopped")
}
