package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/akiram/casting-agency/internal/auth"
	"github.com/akiram/casting-agency/internal/config"
	"github.com/akiram/casting-agency/internal/events"
	"github.com/akiram/casting-agency/internal/httpserver"
	"github.com/akiram/casting-agency/internal/models"
	"github.com/akiram/casting-agency/internal/repo"
	"github.com/akiram/casting-agency/internal/service"
	pkgdb "github.com/akiram/casting-agency/pkg/db"
	"github.com/akiram/casting-agency/pkg/logging"
	loggingmw "github.com/akiram/casting-agency/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.Movie{}, &models.Actor{}); err != nil {
			log.Fatalf("db migrate: %v", err)
		}
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	keys := auth.NewKeyCache(auth.JWKSURL(cfg.Auth0Domain))
	validator := auth.NewValidator(cfg.Auth0Domain, cfg.Auth0Audience, keys)

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
	}

	store := &repo.GormRepo{DB: db}
	movieSvc := &service.MovieService{Repo: store}
	actorSvc := &service.ActorService{Repo: store}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	httpserver.Register(e, &httpserver.Deps{
		MovieHandler: &httpserver.MovieHTTP{Svc: movieSvc, Producer: producer},
		ActorHandler: &httpserver.ActorHTTP{Svc: actorSvc, Producer: producer},
		Validator:    validator,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("casting-agency listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("casting-agency stopped")
}
