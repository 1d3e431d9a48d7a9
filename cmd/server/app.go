package main

import (
	"context"
	"fmt"
	"io"

	"galeria/backend/internal/config"
	"galeria/backend/internal/logger"
	"galeria/backend/internal/network"
	"galeria/backend/internal/service"
	"galeria/backend/internal/service/museum"
	"galeria/backend/internal/service/translation"
)

const cacheBackendRedis = "redis"

// app holds the wired services shared by every command.
type app struct {
	cfg          config.Config
	engine       *translation.Engine
	translations service.TranslationService
	artworks     service.ArtworkService
	closers      []io.Closer
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{cfg: cfg}
	clients := network.NewClientFactory(network.StaticProxy(cfg.ProxyURL))
	a.closers = append(a.closers, clients)

	cache, err := a.newCache(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := translation.NewRemoteTranslator(ctx, cfg.Translation, clients)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create translator: %w", err)
	}
	if c, ok := remote.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}

	dict, err := translation.DefaultDictionary()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	a.engine = translation.NewEngine(remote, dict, cache, cfg.Translation.Timeout)
	a.translations = service.NewTranslationService(a.engine, cfg.Translation.SourceLanguage)
	a.artworks = service.NewArtworkService(
		museum.NewArticSource(cfg.Artic, cfg.UpstreamTimeout, clients),
		museum.NewMetSource(cfg.Met, cfg.UpstreamTimeout, clients),
		a.translations,
		service.ArtworkServiceConfig{
			PrimaryPageSize:          cfg.Paging.PrimaryPageSize,
			SecondaryPageSize:        cfg.Paging.SecondaryPageSize,
			CompactPrimaryPageSize:   cfg.Paging.CompactPrimaryPageSize,
			CompactSecondaryPageSize: cfg.Paging.CompactSecondaryPageSize,
			SearchLimit:              cfg.Paging.SearchLimit,
			SearchSlice:              cfg.Paging.SearchSlice,
			DefaultLanguage:          cfg.Translation.DefaultLanguage,
		},
	)

	logger.Info("services ready", "module", "main", "action", "init", "resource", "app", "result", "ok",
		"translator", a.engine.Provider(), "cache", cfg.Cache.Backend)
	return a, nil
}

func (a *app) newCache(ctx context.Context) (translation.Cache, error) {
	if a.cfg.Cache.Backend != cacheBackendRedis {
		return translation.NewMemoryCache(), nil
	}
	cache, err := translation.NewRedisCache(ctx, a.cfg.Cache.RedisURL, a.cfg.Cache.KeyPrefix, a.cfg.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("connect redis cache: %w", err)
	}
	a.closers = append(a.closers, cache)
	return cache, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logger.Warn("close failed", "module", "main", "action", "shutdown", "resource", "app", "result", "failed", "error", err)
		}
	}
	a.closers = nil
}
