package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/houseofcompanies/leadmail/internal/config"
	"github.com/houseofcompanies/leadmail/internal/database"
	"github.com/houseofcompanies/leadmail/internal/logger"
	"github.com/houseofcompanies/leadmail/internal/metrics"
)

// Middleware holds all HTTP middleware
type Middleware struct {
	rdb     *database.Redis
	log     *logger.Logger
	cfg     *config.Config
	metrics *metrics.Metrics
}

// New creates a new Middleware instance. rdb is only needed when rate
// limiting is enabled and m may be nil.
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config, m *metrics.Metrics) *Middleware {
	return &Middleware{
		rdb:     rdb,
		log:     log,
		cfg:     cfg,
		metrics: m,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "error",
		"error":  message,
	})
}
