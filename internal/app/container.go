package app

import (
	"context"
	"log"
	"time"

	"prop-match/internal/config"
	"prop-match/internal/database"
	dbpostgres "prop-match/internal/database/postgres"
	"prop-match/internal/database/seeder"
	"prop-match/internal/domain/matching"
	"prop-match/internal/infrastructure/cache"
	"prop-match/internal/pkg/jwt"
	"prop-match/internal/repository"
	"prop-match/internal/usecase"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	Ranking  usecase.RankingUsecase
	Finalize usecase.FinalizeUsecase
	Auth     usecase.AuthUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := seeder.RunAll(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(log.Default())

	jobs := repository.NewPostgresJobRepository(db)
	professionals := repository.NewPostgresProfessionalRepository(db)
	assignments := repository.NewPostgresAssignmentRepository(db)
	regions := repository.NewPostgresRegionRepository(db)
	users := repository.NewPostgresUserRepository(db)

	resolver := usecase.NewCachedStateResolver(regions, redisCache)
	scorer := matching.NewScorer(resolver)

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    redisCache,
		JWT:      jwtSvc,
		Ranking:  usecase.NewRankingUsecase(jobs, professionals, scorer, redisCache),
		Finalize: usecase.NewFinalizeUsecase(db, jobs, assignments, redisCache),
		Auth:     usecase.NewAuthUsecase(users, jwtSvc),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
