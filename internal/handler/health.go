package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/nikita1503agarwal/perma-backend/internal/db"
)

type HealthHandler struct {
	db     *sqlx.DB
	driver string
}

func NewHealthHandler(database *sqlx.DB, driver string) *HealthHandler {
	return &HealthHandler{
		db:     database,
		driver: driver,
	}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "PERMA backend running"})
}

// Test reports database connectivity. It always responds 200; a broken
// store shows up as a degraded status, not an error.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"driver":            h.driver,
		"connection_status": "not connected",
		"tables":            []string{},
	}

	if h.db == nil {
		writeJSON(w, http.StatusOK, response)
		return
	}

	err := h.db.Ping()
	if err != nil {
		slog.Warn("health check database ping failed", "error", err)
		response["database"] = "error"
		writeJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"

	tables, err := db.TableNames(h.db, h.driver, 10)
	if err != nil {
		slog.Warn("health check table listing failed", "error", err)
	} else {
		response["tables"] = tables
	}

	writeJSON(w, http.StatusOK, response)
}
