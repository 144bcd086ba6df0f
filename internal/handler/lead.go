package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/houseofcompanies/leadmail/internal/email"
	"github.com/houseofcompanies/leadmail/internal/middleware"
	"github.com/houseofcompanies/leadmail/internal/service"
)

// outcomeStatus maps delivery outcomes to HTTP status codes
var outcomeStatus = map[email.Outcome]int{
	email.OutcomeSuccess:           http.StatusOK,
	email.OutcomeAuthFailure:       http.StatusInternalServerError,
	email.OutcomeRecipientRejected: http.StatusBadRequest,
	email.OutcomeTransportError:    http.StatusInternalServerError,
	email.OutcomeUnexpectedError:   http.StatusInternalServerError,
}

// SendEmail handles POST /send-email
// Validates a lead submission, renders it and relays it over SMTP.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Payload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	req, err := service.ParseLeadRequest(body)
	if err != nil {
		h.writeLeadError(w, err)
		return
	}

	ctx := service.WithRequestID(r.Context(), middleware.GetRequestID(r.Context()))
	result, err := h.leadSvc.Submit(ctx, req)
	if err != nil && result.Outcome == "" {
		h.writeLeadError(w, err)
		return
	}

	status, ok := outcomeStatus[result.Outcome]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status == http.StatusOK {
		writeSuccess(w, result.Message)
		return
	}
	writeError(w, status, result.Message)
}

// writeLeadError answers validation and configuration failures
func (h *Handler) writeLeadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoData):
		writeError(w, http.StatusBadRequest, "No data provided")
	case errors.Is(err, service.ErrInvalidPayload):
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields: name and email")
	case errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, email.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, "Email service is not configured")
	default:
		h.log.Error().Err(err).Msg("lead submission failed")
		writeError(w, http.StatusInternalServerError, "Failed to send email")
	}
}
