package app

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/ai"
	"talent-match/internal/ai/gemini"
	"talent-match/internal/config"
	"talent-match/internal/database/postgres"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/store"
	"talent-match/internal/usecase"

	"go.uber.org/zap"
)

// Container wires every dependency of the service. Postgres, redis and the
// LLM advisor are all optional; when absent the service runs fully on the
// embedded dataset with no cache and the deterministic endpoints only.
type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	Store   *store.Store
	Cache   *cache.Redis
	Advisor *ai.Advisor

	EmployeeSearch usecase.EmployeeSearchUsecase
	StaffingSearch usecase.StaffingSearchUsecase

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.buildStore(ctx); err != nil {
		return nil, err
	}
	c.buildCache()
	c.buildUsecases()
	if err := c.buildAdvisor(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// buildStore hydrates the snapshot from Postgres when configured, otherwise
// from the embedded mock dataset.
func (c *Container) buildStore(ctx context.Context) error {
	if !c.Config.Database.Enabled() {
		c.Store = store.NewFromSeed()
		c.Logger.Info("talent snapshot loaded from embedded dataset")
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := postgres.Connect(connectCtx, c.Config.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	c.closers = append(c.closers, db.Close)

	st, err := store.LoadFromDatabase(ctx, db)
	if err != nil {
		return fmt.Errorf("load talent snapshot: %w", err)
	}
	c.Store = st
	c.Logger.Info("talent snapshot loaded from postgres",
		zap.Int("employees", len(st.Employees())),
		zap.Int("requisitions", len(st.Requisitions())))
	return nil
}

func (c *Container) buildCache() {
	if c.Config.Redis.Host == "" {
		return
	}
	c.Cache = cache.NewRedis(c.Config.Redis, c.Logger)
	c.closers = append(c.closers, c.Cache.Close)
}

func (c *Container) buildUsecases() {
	c.EmployeeSearch = usecase.NewEmployeeSearchUsecase(c.Store)

	var searchCache usecase.SearchCache
	if c.Cache != nil {
		searchCache = c.Cache
	}
	c.StaffingSearch = usecase.NewStaffingSearchUsecase(c.Store, searchCache, c.Logger)
}

func (c *Container) buildAdvisor(ctx context.Context) error {
	if !c.Config.Gemini.Enabled() {
		c.Logger.Info("assistant disabled, no API key configured")
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, c.Config.Gemini.APIKey, c.Config.Gemini.Model)
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}

	c.Advisor = ai.NewAdvisor(generator, c.Store, c.EmployeeSearch, c.StaffingSearch, c.Logger)
	c.Logger.Info("assistant enabled", zap.String("model", generator.Model()))
	return nil
}

func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
