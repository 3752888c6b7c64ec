// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package openjam is the client-side data-access library of the OpenJam
music-sharing platform.

A [Client] holds one interactor per collection. Each interactor lists, reads,
creates and saves documents on the remote content API, caches listings and
refuses to send documents that fail their validity check.

Usage:

	client, err := openjam.New(openjam.DefaultConfig(), slog.Default())
	if err != nil {
	    log.Fatal(err)
	}
	defer client.Close()

	label := client.Labels.Init()
	label.Name = pointer.To("Warp")
	saved, err := client.Labels.Create(ctx, label)

Paths for custom requests are built with [ForCollection] and [ForSingle].
*/
package openjam

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/interactor"
	"github.com/taibuivan/openjam/internal/platform/cache"
	"github.com/taibuivan/openjam/internal/platform/config"
	"github.com/taibuivan/openjam/internal/platform/httpclient"
	"github.com/taibuivan/openjam/internal/platform/redis"
	"github.com/taibuivan/openjam/internal/service"
	"github.com/taibuivan/openjam/pkg/query"
)

// # Public Types

type (
	// Config is the client configuration, read from OPENJAM_* variables by [LoadConfig].
	Config = config.Config

	// Parameters are the optional filters of a collection query.
	Parameters = query.Parameters

	Artist  = entity.Artist
	Track   = entity.Track
	Label   = entity.Label
	Post    = entity.Post
	Comment = entity.Comment
	Like    = entity.Like
	Media   = entity.Media
	Profile = entity.Profile
	Style   = entity.Style
	User    = entity.User
)

// LoadConfig reads the client configuration from the environment.
func LoadConfig() (*Config, error) { return config.Load() }

// DefaultConfig returns the configuration with every default applied.
func DefaultConfig() *Config { return config.Default() }

// ForCollection returns the path of a collection query.
func ForCollection(collection string, params *Parameters) (string, error) {
	return query.ForCollection(collection, params)
}

// ForSingle returns the path of a single-document query.
func ForSingle(collection, id string, params *Parameters) (string, error) {
	return query.ForSingle(collection, id, params)
}

// # Client

// Client gives access to every OpenJam collection.
type Client struct {
	Artists  *interactor.Interactor[entity.Artist, *entity.Artist]
	Tracks   *interactor.Interactor[entity.Track, *entity.Track]
	Labels   *interactor.Interactor[entity.Label, *entity.Label]
	Posts    *interactor.Interactor[entity.Post, *entity.Post]
	Comments *interactor.Interactor[entity.Comment, *entity.Comment]
	Likes    *interactor.Interactor[entity.Like, *entity.Like]
	Media    *interactor.Interactor[entity.Media, *entity.Media]
	Profiles *interactor.Interactor[entity.Profile, *entity.Profile]
	Styles   *interactor.Interactor[entity.Style, *entity.Style]
	Users    *interactor.Interactor[entity.User, *entity.User]

	transport *httpclient.Client
	redis     *goredis.Client
	logger    *slog.Logger
}

/*
New wires the transport, the list cache and the ten interactors.

Parameters:
  - cfg: Client configuration; nil selects [DefaultConfig].
  - logger: Structured logger; nil selects [slog.Default].

Returns:
  - *Client: Ready to use; call Close when done
  - error: Redis connection errors when REDIS_URL is set
*/
func New(cfg *Config, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		transport: httpclient.New(cfg.APIURL, cfg.HTTPTimeout, logger,
			httpclient.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)),
		logger: logger,
	}

	var store cache.Cache = cache.NewMemory()
	if cfg.UsesRedis() {
		redisClient, err := redis.NewClient(context.Background(), cfg.RedisURL, logger)
		if err != nil {
			return nil, fmt.Errorf("openjam: list cache: %w", err)
		}
		client.redis = redisClient
		store = cache.NewRedis(redisClient)
	}

	client.Artists = wire(client, store, cfg, interactor.WithInit[entity.Artist](entity.NewArtist))
	client.Tracks = wire(client, store, cfg, interactor.WithInit[entity.Track](entity.NewTrack))
	client.Labels = wire(client, store, cfg, interactor.WithInit[entity.Label](entity.NewLabel))
	client.Posts = wire[entity.Post](client, store, cfg)
	client.Comments = wire[entity.Comment](client, store, cfg)
	client.Likes = wire[entity.Like](client, store, cfg)
	client.Media = wire(client, store, cfg, interactor.WithPlural[entity.Media]("media"))
	client.Profiles = wire[entity.Profile](client, store, cfg)
	client.Styles = wire[entity.Style](client, store, cfg)
	client.Users = wire[entity.User](client, store, cfg)

	logger.Debug("openjam_client_ready",
		slog.String("api_url", client.transport.BaseURL()),
		slog.Bool("redis_cache", cfg.UsesRedis()),
	)

	return client, nil
}

// Close releases the Redis connection, if any.
func (client *Client) Close() error {
	if client.redis == nil {
		return nil
	}
	return client.redis.Close()
}

func wire[T any, P entity.Pointer[T]](client *Client, store cache.Cache, cfg *Config, opts ...interactor.Option[T, P]) *interactor.Interactor[T, P] {
	opts = append([]interactor.Option[T, P]{interactor.WithTTL[T, P](cfg.CacheTTL)}, opts...)
	return interactor.New(service.New[T, P](client.transport, client.logger), store, client.logger, opts...)
}
