package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/houseofcompanies/leadmail/internal/logger"
)

// startTLSPort is the submission port that negotiates STARTTLS on a
// plaintext connection. Any other port is dialed with implicit TLS.
const startTLSPort = 587

// SMTPConfig holds the configuration for the SMTP sender.
type SMTPConfig struct {
	Host string
	Port int
	// Address is used both as the login and as the envelope/header sender.
	Address  string
	Password string
	// SenderName is the display name for the From header.
	SenderName string
	// TLSConfig overrides the client TLS settings. ServerName defaults to Host.
	TLSConfig *tls.Config
}

// SMTPSender implements Sender over an authenticated SMTP session. Each Send
// opens its own session.
type SMTPSender struct {
	cfg  SMTPConfig
	addr string
	log  *logger.Logger
}

// NewSMTPSender creates a new SMTPSender. Missing credentials are reported
// by Send, not here, so the process can start without them.
func NewSMTPSender(cfg SMTPConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:  cfg,
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		log:  log.WithComponent("smtp"),
	}
}

// StartTLS reports whether the sender upgrades a plaintext connection.
func (s *SMTPSender) StartTLS() bool {
	return s.cfg.Port == startTLSPort
}

// Send delivers msg in one SMTP transaction. Failures are returned as
// *SendError, except ErrNotConfigured. A started session is not bound to ctx
// and runs until the server answers or the connection fails.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (err error) {
	if strings.TrimSpace(s.cfg.Address) == "" || s.cfg.Password == "" {
		return ErrNotConfigured
	}

	defer func() {
		if r := recover(); r != nil {
			err = &SendError{Outcome: OutcomeUnexpectedError, Op: "send", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	body, err := composeMIME(s.cfg.SenderName, s.cfg.Address, msg)
	if err != nil {
		return &SendError{Outcome: OutcomeUnexpectedError, Op: "compose", Err: err}
	}

	c, err := s.dial()
	if err != nil {
		return &SendError{Outcome: OutcomeTransportError, Op: "dial", Err: err}
	}
	defer s.closeSession(c)

	if err := c.Auth(sasl.NewPlainClient("", s.cfg.Address, s.cfg.Password)); err != nil {
		return classify("auth", err, OutcomeAuthFailure)
	}

	if err := c.Mail(s.cfg.Address, nil); err != nil {
		return classify("mail", err, OutcomeTransportError)
	}

	if err := c.Rcpt(msg.To, nil); err != nil {
		return classify("rcpt", err, OutcomeRecipientRejected)
	}

	w, err := c.Data()
	if err != nil {
		return classify("data", err, OutcomeTransportError)
	}
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return classify("data", err, OutcomeTransportError)
	}
	if err := w.Close(); err != nil {
		return classify("data", err, OutcomeTransportError)
	}

	return nil
}

func (s *SMTPSender) dial() (*smtp.Client, error) {
	tlsCfg := s.tlsConfig()
	if s.StartTLS() {
		return smtp.DialStartTLS(s.addr, tlsCfg)
	}
	return smtp.DialTLS(s.addr, tlsCfg)
}

func (s *SMTPSender) tlsConfig() *tls.Config {
	if s.cfg.TLSConfig == nil {
		return &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	}
	cfg := s.cfg.TLSConfig.Clone()
	if cfg.ServerName == "" {
		cfg.ServerName = s.cfg.Host
	}
	return cfg
}

// closeSession ends the session politely and falls back to dropping the
// connection. Errors from either are not reported to the caller.
func (s *SMTPSender) closeSession(c *smtp.Client) {
	if err := c.Quit(); err != nil {
		s.log.Debug().Err(err).Msg("smtp quit failed, closing connection")
		if err := c.Close(); err != nil {
			s.log.Debug().Err(err).Msg("smtp close failed")
		}
	}
}

// classify tags a protocol step failure. A reply from the server gets the
// step's own outcome; anything else (I/O, TLS, missing extension) is a
// transport error.
func classify(op string, err error, onReply Outcome) error {
	var smtpErr *smtp.SMTPError
	if errors.As(err, &smtpErr) {
		return &SendError{Outcome: onReply, Op: op, Err: err}
	}
	return &SendError{Outcome: OutcomeTransportError, Op: op, Err: err}
}
