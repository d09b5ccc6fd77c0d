package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type adminInput struct {
	email     string
	password  string
	firstName string
	lastName  string
}

// environment is what every subcommand needs: configuration, a logger and an open database.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func openEnvironment() (*environment, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, logger: logger, db: db}, nil
}

func (env *environment) close() {
	sqlDB, err := env.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		env.logger.Warn("Failed to close database", slog.Any("error", err))
	}
}

func runMigrate(ctx context.Context) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	return postgres.Migrate(ctx, env.db, env.logger)
}

func runSeed(ctx context.Context) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	seeder := impl.NewSeedService(impl.SeedServiceParams{
		TxManager: postgres.NewTransactionManager(env.db),
		Logger:    env.logger,
	})

	result, err := seeder.SeedCatalog(ctx)
	if err != nil {
		return err
	}

	if result.Skipped {
		env.logger.Info("Catalog already populated, nothing seeded")

		return nil
	}
	env.logger.Info("Catalog seeded",
		slog.Int("categories", result.Categories),
		slog.Int("products", result.Products),
	)

	return nil
}

func (env *environment) authService() (usecase.AuthUsecase, error) {
	tokenSvc, err := auth.NewJWTService(env.cfg)
	if err != nil {
		return nil, err
	}

	return impl.NewAuthService(impl.AuthServiceParams{
		TxManager:        postgres.NewTransactionManager(env.db),
		UserRepo:         postgres.NewUserRepository(env.db),
		RefreshTokenRepo: postgres.NewRefreshTokenRepository(env.db),
		Hasher:           auth.NewBcryptHasher(env.cfg),
		TokenService:     tokenSvc,
		Config:           env.cfg,
		Logger:           env.logger,
	}), nil
}

func runCreateAdmin(ctx context.Context, in adminInput) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	authSvc, err := env.authService()
	if err != nil {
		return err
	}

	admin, err := authSvc.CreateAdmin(ctx, &usecase.RegisterInput{
		FirstName: in.firstName,
		LastName:  in.lastName,
		Email:     in.email,
		Password:  in.password,
	})
	if err != nil {
		return err
	}

	env.logger.Info("Administrator created",
		slog.String("user_id", admin.ID.String()),
		slog.String("email", admin.Email),
	)

	return nil
}

func runPruneSessions(ctx context.Context) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	authSvc, err := env.authService()
	if err != nil {
		return err
	}

	_, err = authSvc.PruneExpiredSessions(ctx)

	return err
}
