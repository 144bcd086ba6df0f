package handler

import (
	"github.com/houseofcompanies/leadmail/internal/config"
	"github.com/houseofcompanies/leadmail/internal/database"
	"github.com/houseofcompanies/leadmail/internal/logger"
	"github.com/houseofcompanies/leadmail/internal/service"
)

// maxBodyBytes caps the lead payload size
const maxBodyBytes = 1 << 20

// Handler holds all HTTP handlers
type Handler struct {
	rdb     *database.Redis
	log     *logger.Logger
	cfg     *config.Config
	leadSvc *service.LeadService
}

// New creates a new Handler instance. rdb may be nil when rate limiting is off.
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config, leadSvc *service.LeadService) *Handler {
	return &Handler{
		rdb:     rdb,
		log:     log,
		cfg:     cfg,
		leadSvc: leadSvc,
	}
}
