package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nikita1503agarwal/perma-backend/internal/config"
	"github.com/nikita1503agarwal/perma-backend/internal/db"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
	"github.com/nikita1503agarwal/perma-backend/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	CheckInService    *service.CheckInService
	StatsService      *service.StatsService
	GoalService       *service.GoalService
	ReflectionService *service.ReflectionService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	checkInRepository := repository.NewCheckInRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	reflectionRepository := repository.NewReflectionRepository(database)

	// Services
	checkInService := service.NewCheckInService(checkInRepository)
	statsService := service.NewStatsService(checkInRepository)
	goalService := service.NewGoalService(goalRepository)
	reflectionService := service.NewReflectionService(reflectionRepository)

	return &App{
		Cfg:               cfg,
		DB:                database,
		CheckInService:    checkInService,
		StatsService:      statsService,
		GoalService:       goalService,
		ReflectionService: reflectionService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
