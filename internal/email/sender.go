package email

import (
	"context"
	"errors"
	"fmt"
)

// Sender is the interface that all email transports must implement.
type Sender interface {
	// Send delivers msg in a single attempt.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// ErrNotConfigured is returned when the relay credentials are missing.
var ErrNotConfigured = errors.New("email: sender credentials are not configured")

// Outcome tags the result of a delivery attempt.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeAuthFailure       Outcome = "auth-failure"
	OutcomeRecipientRejected Outcome = "recipient-rejected"
	OutcomeTransportError    Outcome = "transport-error"
	OutcomeUnexpectedError   Outcome = "unexpected-error"
)

// SendResult is the outcome of a delivery attempt plus a caller-safe message.
type SendResult struct {
	Outcome Outcome
	Message string
}

var resultMessages = map[Outcome]string{
	OutcomeSuccess:           "Email sent successfully",
	OutcomeAuthFailure:       "Email authentication failed",
	OutcomeRecipientRejected: "Invalid recipient email",
	OutcomeTransportError:    "Email service error",
	OutcomeUnexpectedError:   "Failed to send email",
}

// Result maps the error returned by Sender.Send to a SendResult. Errors that
// are not a *SendError count as unexpected.
func Result(err error) SendResult {
	if err == nil {
		return SendResult{Outcome: OutcomeSuccess, Message: resultMessages[OutcomeSuccess]}
	}

	outcome := OutcomeUnexpectedError
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		outcome = sendErr.Outcome
	}
	return SendResult{Outcome: outcome, Message: resultMessages[outcome]}
}

// SendError describes a failed delivery. Op names the protocol step that
// failed (dial, starttls, auth, mail, rcpt, data, compose).
type SendError struct {
	Outcome Outcome
	Op      string
	Err     error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("email: %s failed (%s): %v", e.Op, e.Outcome, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
