// Package main provides the API server entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	artworkapp "github.com/artifyhq/artify-server/internal/application/artwork"
	favoriteapp "github.com/artifyhq/artify-server/internal/application/favorite"
	"github.com/artifyhq/artify-server/internal/application/identity"
	"github.com/artifyhq/artify-server/internal/config"
	"github.com/artifyhq/artify-server/internal/infrastructure/auth"
	"github.com/artifyhq/artify-server/internal/infrastructure/metrics"
	mongodbinfra "github.com/artifyhq/artify-server/internal/infrastructure/mongodb"
	"github.com/artifyhq/artify-server/internal/infrastructure/repository/mongodb"
)

// Container initialization timeouts.
const (
	containerInitTimeout   = 30 * time.Second
	mongoDisconnectTimeout = 10 * time.Second
)

// Container holds all application dependencies and manages their lifecycle.
// It implements httpserver.HealthChecker for the health endpoint.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoDB  *mongo.Client
	Database *mongo.Database
	Tokens   *auth.TokenService
	Hasher   *auth.PasswordHasher
	Metrics  *metrics.HTTPMetrics

	// Repositories
	UserRepo     *mongodb.UserRepository
	ArtworkRepo  *mongodb.ArtworkRepository
	FavoriteRepo *mongodb.FavoriteRepository

	// Application services
	IdentityService *identity.Service
	ArtworkService  *artworkapp.Service
	FavoriteService *favoriteapp.Service
}

// ContainerOption configures the container.
type ContainerOption func(*Container)

// WithLogger sets the container logger.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer wires up infrastructure, repositories and services.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()

	client, err := mongodbinfra.Connect(ctx, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	c.MongoDB = client
	c.Database = client.Database(cfg.MongoDB.Database)

	if err = mongodbinfra.CreateAllIndexes(ctx, c.Database); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	c.Tokens = auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	c.Hasher = auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	c.Metrics = metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	c.UserRepo = mongodb.NewUserRepository(
		c.Database.Collection(mongodbinfra.CollectionUsers),
		mongodb.WithUserRepoLogger(c.Logger),
	)
	c.ArtworkRepo = mongodb.NewArtworkRepository(
		c.Database.Collection(mongodbinfra.CollectionArtworks),
		mongodb.WithArtworkRepoLogger(c.Logger),
	)
	c.FavoriteRepo = mongodb.NewFavoriteRepository(
		c.Database.Collection(mongodbinfra.CollectionFavorites),
		mongodb.WithFavoriteRepoLogger(c.Logger),
	)

	c.IdentityService = identity.NewService(
		c.UserRepo, c.Hasher, c.Tokens,
		identity.WithLogger(c.Logger),
	)
	c.ArtworkService = artworkapp.NewService(
		c.ArtworkRepo, c.UserRepo, c.FavoriteRepo, c.Hasher,
		artworkapp.WithLogger(c.Logger),
	)
	c.FavoriteService = favoriteapp.NewService(
		c.FavoriteRepo, c.ArtworkRepo,
		favoriteapp.WithLogger(c.Logger),
	)

	return c, nil
}

// CheckDatabase pings MongoDB. Satisfies httpserver.HealthChecker.
func (c *Container) CheckDatabase(ctx context.Context) error {
	return c.MongoDB.Ping(ctx, nil)
}

// Close releases all container resources.
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
	defer cancel()

	if err := c.MongoDB.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	return nil
}
