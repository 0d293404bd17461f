// Package app wires configuration, storage and services into the object graph
// shared by the API server and the coachctl CLI.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/shift-coach/internal/cache"
	"github.com/blaisecz/shift-coach/internal/config"
	"github.com/blaisecz/shift-coach/internal/langfuse"
	"github.com/blaisecz/shift-coach/internal/llm"
	"github.com/blaisecz/shift-coach/internal/repository"
	"github.com/blaisecz/shift-coach/internal/seed"
	"github.com/blaisecz/shift-coach/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const redisPingTimeout = 2 * time.Second

// Repositories groups the gorm-backed stores.
type Repositories struct {
	Users     repository.UserRepository
	SleepLogs repository.SleepLogRepository
	Shifts    repository.ShiftRepository
	DailyLogs repository.DailyLogRepository
}

// Services groups the use cases exposed over HTTP and the CLI.
type Services struct {
	User       service.UserService
	SleepLog   service.SleepLogService
	Shift      service.ShiftService
	DailyLog   service.DailyLogService
	Snapshots  service.SnapshotService
	Wellness   service.WellnessService
	Coach      service.CoachService
	Precompute service.PrecomputeService
}

type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *gorm.DB
	Repos    Repositories
	Scores   *cache.ScoreCache
	Langfuse langfuse.Client
	Services Services

	closers []func() error
}

// New connects to the database and cache, optionally seeds, and builds every service.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := config.NewDatabase(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := seed.Migrate(db); err != nil {
		return nil, err
	}
	if cfg.Seed {
		logger.Info("seeding database with sample data")
		if err := seed.Run(db, logger.Named("seed")); err != nil {
			return nil, err
		}
	}

	a := &App{Config: cfg, Logger: logger, DB: db}
	a.Repos = Repositories{
		Users:     repository.NewUserRepository(db),
		SleepLogs: repository.NewSleepLogRepository(db),
		Shifts:    repository.NewShiftRepository(db),
		DailyLogs: repository.NewDailyLogRepository(db),
	}
	a.Scores = cache.NewScoreCache(a.newKV(ctx), cfg.ScoreCacheTTL)

	a.Langfuse = langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})

	a.Services = a.buildServices(a.newTipLLM(ctx))
	return a, nil
}

// newKV prefers Redis and falls back to process memory when it is not
// configured or does not answer.
func (a *App) newKV(ctx context.Context) cache.KV {
	log := a.Logger.Named("cache")
	if a.Config.RedisAddr == "" {
		log.Info("REDIS_ADDR is empty, caching scores in memory")
		return cache.NewMemoryKV()
	}

	client := cache.NewRedisClient(a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
	kv := cache.NewRedisKV(client)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := kv.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, caching scores in memory",
			zap.String("addr", a.Config.RedisAddr), zap.Error(err))
		_ = client.Close()
		return cache.NewMemoryKV()
	}

	log.Info("caching scores in redis", zap.String("addr", a.Config.RedisAddr))
	a.closers = append(a.closers, client.Close)
	return kv
}

// newTipLLM returns nil when OpenAI is not configured so the coach never
// sees a typed nil.
func (a *App) newTipLLM(ctx context.Context) llm.CoachTipLLM {
	cfg := a.Config
	if cfg.OpenAIAPIKey == "" {
		a.Logger.Warn("OPENAI_API_KEY not configured, coach tips use rule text only")
		return nil
	}

	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfuseCoachPrompt,
		PromptLabel: cfg.LangfuseCoachPromptLabel,
		SavePath:    cfg.CoachPromptPath,
		Fallback:    llm.DefaultSystemPrompt,
		Logger:      a.Logger,
	})
	if err != nil {
		a.Logger.Warn("coach prompt unavailable, using built-in prompt", zap.Error(err))
		prompt = llm.DefaultSystemPrompt
	}

	return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachTipModel, llm.WithSystemPrompt(prompt))
}

func (a *App) buildServices(tipLLM llm.CoachTipLLM) Services {
	r, log := a.Repos, a.Logger
	snapshots := service.NewSnapshotService(r.Users, r.SleepLogs, r.Shifts, r.DailyLogs, log)

	return Services{
		User:       service.NewUserService(r.Users),
		SleepLog:   service.NewSleepLogService(r.SleepLogs, r.Users, a.Scores, log),
		Shift:      service.NewShiftService(r.Shifts, r.Users, a.Scores, log),
		DailyLog:   service.NewDailyLogService(r.DailyLogs, r.Users, a.Scores, log),
		Snapshots:  snapshots,
		Wellness:   service.NewWellnessService(snapshots, r.Users, r.SleepLogs, a.Scores, log),
		Coach:      service.NewCoachService(snapshots, r.Users, a.Scores, tipLLM, a.Langfuse, log),
		Precompute: service.NewPrecomputeService(snapshots, r.Users, a.Scores, log, 0),
	}
}

// Close flushes queued Langfuse events and releases connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Langfuse != nil {
		if err := a.Langfuse.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
