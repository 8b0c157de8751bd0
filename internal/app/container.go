package app

import (
	"context"
	"log"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database"
	"resume-match/internal/database/migration"
	dbpostgres "resume-match/internal/database/postgres"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/infrastructure/webhook"
	"resume-match/internal/pkg/jwt"
	"resume-match/internal/repository"
	"resume-match/internal/usecase"
	"resume-match/internal/ws"
)

// Container owns every long-lived dependency: connections, repositories,
// usecases, the websocket hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	JWT jwt.Service

	Auth            usecase.AuthUsecase
	Users           usecase.UserUsecase
	Resumes         usecase.ResumeUsecase
	Jobs            usecase.JobUsecase
	Matching        usecase.MatchingUsecase
	Recommendations usecase.RecommendationUsecase
	Search          usecase.SearchUsecase
	Notifications   usecase.NotificationUsecase
	Webhooks        usecase.WebhookUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, log.Default())
	hub := ws.NewHub(log.Default())

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	resumeRepo := repository.NewPostgresResumeRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)
	webhookRepo := repository.NewPostgresWebhookRepository(db)
	searchRepo := repository.NewPostgresSearchRepository(db)

	notificationUC := usecase.NewNotificationUsecase(
		notificationRepo,
		webhookRepo,
		hub,
		webhook.NewDispatcher(log.Default()),
		log.Default(),
	)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,

		Auth:            usecase.NewAuthUsecase(userRepo, jwtSvc),
		Users:           usecase.NewUserUsecase(userRepo),
		Resumes:         usecase.NewResumeUsecase(resumeRepo, redisCache),
		Jobs:            usecase.NewJobUsecase(jobRepo, redisCache),
		Matching:        usecase.NewMatchingUsecase(resumeRepo, jobRepo, matchRepo, notificationUC),
		Recommendations: usecase.NewRecommendationUsecase(resumeRepo, jobRepo, redisCache),
		Search:          usecase.NewSearchUsecase(searchRepo),
		Notifications:   notificationUC,
		Webhooks:        usecase.NewWebhookUsecase(webhookRepo),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
