package routes

import (
	"net/http"

	"github.com/nikita1503agarwal/perma-backend/internal/app"
	"github.com/nikita1503agarwal/perma-backend/internal/handler"
	"github.com/nikita1503agarwal/perma-backend/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB, app.Cfg.DBDriver)
	checkIn := handler.NewCheckInHandler(app.CheckInService)
	stats := handler.NewStatsHandler(app.StatsService)
	goal := handler.NewGoalHandler(app.GoalService)
	reflection := handler.NewReflectionHandler(app.ReflectionService)

	// Write endpoints share one per-IP rate limiter
	rateLimiter := middleware.RateLimitWrites(app.Cfg.WriteRateLimit, app.Cfg.WriteRateWindow)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /{$}", health.Root)
	mux.HandleFunc("GET /test", health.Test)

	// Check-ins
	mux.HandleFunc("POST /checkins", rateLimiter(checkIn.Create))
	mux.HandleFunc("GET /checkins", checkIn.List)

	// Stats
	mux.HandleFunc("GET /stats/summary", stats.Summary)

	// Goals
	mux.HandleFunc("POST /goals", rateLimiter(goal.Create))
	mux.HandleFunc("GET /goals", goal.List)
	mux.HandleFunc("PATCH /goals/{id}", rateLimiter(goal.Patch))
	mux.HandleFunc("DELETE /goals/{id}", rateLimiter(goal.Delete))

	// Reflections
	mux.HandleFunc("POST /reflections", rateLimiter(reflection.Create))
	mux.HandleFunc("GET /reflections", reflection.List)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.CORS(app.Cfg.CORSAllowOrigins), // Must be first so preflights never hit the mux
		middleware.RequestLogging,
		middleware.Identity,
	)

	return h
}
