// Package app assembles the catalog, the LLM manager and the conversation
// engine from configuration. Both the API server and voicectl start here.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"voice-ordering/config"
	"voice-ordering/internal/menu"
	"voice-ordering/internal/menu/repository"
	"voice-ordering/internal/menu/repository/cache"
	"voice-ordering/internal/menu/repository/postgre"
	"voice-ordering/internal/menu/repository/supabase"
	menuUsecase "voice-ordering/internal/menu/usecase"
	"voice-ordering/internal/voiceorder"
	"voice-ordering/internal/voiceorder/extract"
	"voice-ordering/internal/voiceorder/session"
	voUsecase "voice-ordering/internal/voiceorder/usecase"
	"voice-ordering/pkg/datemath"
	"voice-ordering/pkg/llmprovider"
	"voice-ordering/pkg/log"
)

const (
	driverSupabase = "supabase"
	driverPostgres = "postgres"
	fallbackTZ     = "UTC"
)

// VoiceOrder is the conversation engine plus the prompt preview used by voicectl.
type VoiceOrder interface {
	voiceorder.UseCase
	SystemPrompt(ctx context.Context, customerName string) (string, error)
}

// App holds the wired use cases. Close releases pools and clients.
type App struct {
	Menu       menu.UseCase
	VoiceOrder VoiceOrder

	closers []func()
}

// Build wires every dependency described by cfg.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{}

	repo, err := a.catalogRepository(ctx, cfg.Catalog, l)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Menu = menuUsecase.New(repo, l)

	providers, providerErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, perr := range providerErrs {
		l.Warnf(ctx, "LLM provider skipped: %v", perr)
	}
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init LLM providers: %w", err)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init LLM manager: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	for _, p := range manager.Providers() {
		l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	dates, err := datemath.NewParser(cfg.VoiceOrder.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to %s: %v", cfg.VoiceOrder.Timezone, fallbackTZ, err)
		dates, _ = datemath.NewParser(fallbackTZ)
	}

	aliases := extract.DefaultAliasTable()
	aliases.Add(extract.KindDinner, cfg.VoiceOrder.DinnerAliases)
	aliases.Add(extract.KindStyle, cfg.VoiceOrder.StyleAliases)

	temperature := cfg.VoiceOrder.Temperature
	if temperature <= 0 {
		temperature = voUsecase.DefaultTemperature
	}
	maxTokens := cfg.VoiceOrder.MaxTokens
	if maxTokens <= 0 {
		maxTokens = voUsecase.DefaultMaxTokens
	}

	a.VoiceOrder = voUsecase.New(
		l,
		session.New(),
		a.Menu,
		extract.New(l, a.Menu, aliases),
		voUsecase.NewLLMCompleter(manager, temperature, maxTokens),
		dates,
		voUsecase.Options{
			FallbackCustomerName:      cfg.VoiceOrder.FallbackCustomerName,
			GreetingTemplate:          cfg.VoiceOrder.GreetingTemplate,
			RecoverUnknownSession:     cfg.VoiceOrder.RecoverUnknownSession,
			EnforceFutureDeliveryDate: cfg.VoiceOrder.EnforceFutureDeliveryDate,
		},
	)

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) catalogRepository(ctx context.Context, cfg config.CatalogConfig, l log.Logger) (repository.Repository, error) {
	var (
		repo repository.Repository
		err  error
	)

	switch cfg.Driver {
	case driverSupabase:
		repo, err = supabase.New(supabase.Config{URL: cfg.Supabase.URL, Key: cfg.Supabase.Key}, l)
		if err != nil {
			return nil, err
		}
		l.Info(ctx, "Menu catalog: supabase")
	case driverPostgres:
		pool, cerr := postgre.Connect(ctx, postgre.PoolConfig{
			DSN:      cfg.Postgres.DSN,
			MaxConns: cfg.Postgres.MaxConns,
			MinConns: cfg.Postgres.MinConns,
		})
		if cerr != nil {
			return nil, fmt.Errorf("connect catalog database: %w", cerr)
		}
		a.closers = append(a.closers, pool.Close)
		repo = postgre.New(pool, l)
		l.Info(ctx, "Menu catalog: postgres")
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}

	return a.cachedRepository(ctx, cfg.Cache, repo, l)
}

func (a *App) cachedRepository(ctx context.Context, cfg config.CacheConfig, inner repository.Repository, l log.Logger) (repository.Repository, error) {
	opts := []cache.Option{cache.WithSize(cfg.Size), cache.WithLogger(l)}
	if cfg.TTL != "" {
		ttl, err := time.ParseDuration(cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog.cache.ttl %q: %w", cfg.TTL, err)
		}
		opts = append(opts, cache.WithTTL(ttl))
	}

	driver := cache.Driver(cfg.Driver)
	if driver == cache.DriverRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect catalog cache: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		opts = append(opts, cache.WithRedisClient(client))
	}

	repo, err := cache.New(driver, inner, opts...)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Menu catalog cache: %s", driverName(driver))
	return repo, nil
}

func driverName(d cache.Driver) string {
	if d == "" {
		return string(cache.DriverNone)
	}
	return string(d)
}
