package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmittmann/tint"

	"github.com/gallerykit/gateway/pkg/gallery"
	"github.com/gallerykit/gateway/pkg/gallery/api"
	auditpg "github.com/gallerykit/gateway/pkg/gallery/audit/postgres"
	"github.com/gallerykit/gateway/pkg/gallery/identity/cognito"
	s3storage "github.com/gallerykit/gateway/pkg/gallery/storage/s3"
)

type Config struct {
	Port      string `env:"PORT" env-default:"8080"`
	JWTSecret string `env:"JWT_SECRET" env-default:"dev-secret"`
	DB        DbConfig
	S3        S3Config
	Cognito   CognitoConfig
}

type DbConfig struct {
	Port     uint16 `env:"SIGN_PG_PORT" env-default:"5432"`
	Host     string `env:"SIGN_PG_HOST" env-default:"localhost"`
	Name     string `env:"SIGN_PG_NAME" env-default:"gallery_db"`
	User     string `env:"SIGN_PG_USER" env-default:"gallery"`
	Password string `env:"SIGN_PG_PASSWORD" env-default:"pwd"`
}

type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	BucketName      string `env:"AWS_S3_BUCKET" env-default:"gallery-bucket"`
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	CreateBucket    bool   `env:"AWS_S3_CREATE_BUCKET" env-default:"false"`
}

type CognitoConfig struct {
	Region   string `env:"COGNITO_REGION" env-default:"us-east-1"`
	ClientID string `env:"COGNITO_CLIENT_ID" env-default:""`
}

func (c DbConfig) toDatabaseUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

func newDbPool(ctx context.Context, dbConfig DbConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dbConfig.toDatabaseUrl())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	})))

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := newDbPool(ctx, config.DB)
	if err != nil {
		slog.Error("Failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	auditLog := auditpg.New(dbPool)
	if err := auditLog.EnsureSchema(ctx); err != nil {
		slog.Error("Failed to prepare sign history table", "err", err)
		os.Exit(1)
	}

	store, err := s3storage.New(s3storage.Config{
		Region:                 config.S3.Region,
		Bucket:                 config.S3.BucketName,
		AccessKeyID:            config.S3.AccessKeyID,
		SecretAccessKey:        config.S3.SecretAccessKey,
		Endpoint:               config.S3.Endpoint,
		UsePathStyle:           config.S3.UsePathStyle,
		CreateBucketIfNotExist: config.S3.CreateBucket,
	})
	if err != nil {
		slog.Error("Failed to create S3 backend", "err", err)
		os.Exit(1)
	}

	opts := []gallery.Option{
		gallery.WithBlobStore(store),
		gallery.WithAuditLog(auditLog),
	}

	if config.Cognito.ClientID != "" {
		issuer, err := cognito.New(ctx, cognito.Config{
			Region:   config.Cognito.Region,
			ClientID: config.Cognito.ClientID,
		})
		if err != nil {
			slog.Error("Failed to create Cognito issuer", "err", err)
			os.Exit(1)
		}
		opts = append(opts, gallery.WithIdentityIssuer(issuer))
	} else {
		slog.Warn("COGNITO_CLIENT_ID not set, user registration disabled")
	}

	svc, err := gallery.New(opts...)
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	auth := jwtauth.New("HS256", []byte(config.JWTSecret), nil)
	handler := api.NewHandler(svc)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Mount("/", handler.Routes(auth))

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port),
		Handler: r,
	}

	go func() {
		slog.Info("Gallery gateway starting", "port", config.Port, "bucket", config.S3.BucketName)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
