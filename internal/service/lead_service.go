package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/houseofcompanies/leadmail/internal/config"
	"github.com/houseofcompanies/leadmail/internal/email"
	"github.com/houseofcompanies/leadmail/internal/logger"
	"github.com/houseofcompanies/leadmail/internal/metrics"
	"github.com/houseofcompanies/leadmail/internal/model"
)

// Lead submission errors
var (
	ErrNoData         = errors.New("no data provided")
	ErrInvalidPayload = errors.New("invalid JSON payload")
	ErrMissingFields  = errors.New("missing required fields: name and email")
	ErrInvalidEmail   = errors.New("invalid email format")
)

// outcomeNotConfigured labels deliveries skipped for missing credentials.
const outcomeNotConfigured = "not-configured"

// ParseLeadRequest decodes a request body. An empty body, null or an empty
// object is ErrNoData; malformed JSON or a non-object is ErrInvalidPayload.
func ParseLeadRequest(body []byte) (*model.LeadRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, ErrNoData
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, ErrInvalidPayload
	}
	switch v := probe.(type) {
	case nil:
		return nil, ErrNoData
	case map[string]any:
		if len(v) == 0 {
			return nil, ErrNoData
		}
	default:
		return nil, ErrInvalidPayload
	}

	var req model.LeadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, ErrInvalidPayload
	}
	return &req, nil
}

// LeadService turns lead submissions into delivered emails.
type LeadService struct {
	sender   email.Sender
	brand    email.Brand
	defaults Defaults
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewLeadService creates a new LeadService. m may be nil.
func NewLeadService(sender email.Sender, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) *LeadService {
	return &LeadService{
		sender: sender,
		brand: email.Brand{
			CompanyName: cfg.Brand.CompanyName,
			Website:     cfg.Brand.Website,
		},
		defaults: DefaultsFor(cfg.Brand.CompanyName),
		metrics:  m,
		log:      log.WithComponent("lead"),
	}
}

// Render validates req and renders the email without sending it.
func (s *LeadService) Render(req *model.LeadRequest) (email.Message, error) {
	form, err := Normalize(req, s.defaults)
	if err != nil {
		return email.Message{}, err
	}
	return email.LeadEmail(form, s.brand), nil
}

// Submit validates, renders and sends a lead email in a single attempt.
// Validation failures return one of the Err* values of this package;
// delivery failures return the sender's error together with its SendResult.
func (s *LeadService) Submit(ctx context.Context, req *model.LeadRequest) (email.SendResult, error) {
	msg, err := s.Render(req)
	if err != nil {
		s.logValidation(req, err)
		return email.SendResult{}, err
	}

	start := time.Now()
	err = s.sender.Send(ctx, msg)
	elapsed := time.Since(start)

	log := s.log
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		log = log.WithRequestID(id)
	}

	if errors.Is(err, email.ErrNotConfigured) {
		log.Error().Str("recipient", msg.To).Msg("SMTP credentials are not configured")
		s.metrics.ObserveDelivery(outcomeNotConfigured, elapsed)
		return email.SendResult{}, err
	}

	result := email.Result(err)
	log.Delivery(msg.To, string(result.Outcome), elapsed, err)
	s.metrics.ObserveDelivery(string(result.Outcome), elapsed)

	return result, err
}

func (s *LeadService) logValidation(req *model.LeadRequest, err error) {
	event := s.log.Warn().Err(err)
	if req != nil {
		event = event.
			Str("name", req.Contact.Name.String()).
			Str("email", req.Contact.Email.String())
	}
	event.Msg("lead rejected")
}

type requestIDKey struct{}

// WithRequestID attaches a request ID that Submit adds to its log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
