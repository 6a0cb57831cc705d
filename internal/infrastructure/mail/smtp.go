// Package mail provides SMTP delivery for outbound account emails.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/dajohi/goemail"
	"github.com/rs/zerolog"

	"github.com/authcore/account-service/internal/core/ports"
)

// Config holds the SMTP connection settings. Mail is considered disabled
// when Host, User, or Password is empty; a disabled client silently drops
// every send, which keeps local development working without a mail server.
type Config struct {
	Host        string // host:port of the SMTP server
	User        string
	Password    string
	FromAddress string // RFC 5322 address, e.g. "Accounts <noreply@example.com>"
	SkipVerify  bool   // skip TLS certificate verification
}

// Client sends emails from a preset address over SMTPS.
//
// Client implements ports.Mailer.
type Client struct {
	smtp        *goemail.SMTP
	mailName    string
	mailAddress string
	disabled    bool
	logger      zerolog.Logger
}

// NewClient builds an SMTP client from cfg. A disabled (no-op) client is
// returned when the required credentials are missing.
func NewClient(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		logger.Info().Msg("mail disabled: missing smtp credentials")
		return &Client{disabled: true, logger: logger}, nil
	}

	u, err := url.Parse(fmt.Sprintf("smtps://%s:%s@%s", cfg.User, cfg.Password, cfg.Host))
	if err != nil {
		return nil, fmt.Errorf("parse smtp host: %w", err)
	}

	addr, err := mail.ParseAddress(cfg.FromAddress)
	if err != nil {
		return nil, fmt.Errorf("parse from address: %w", err)
	}

	smtp, err := goemail.NewSMTP(u.String(), &tls.Config{
		InsecureSkipVerify: cfg.SkipVerify, //nolint:gosec
	})
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	logger.Info().Str("host", cfg.Host).Str("from", addr.Address).Msg("mail enabled")
	return &Client{
		smtp:        smtp,
		mailName:    addr.Name,
		mailAddress: addr.Address,
		logger:      logger,
	}, nil
}

// Send delivers a single email synchronously.
func (c *Client) Send(email ports.OutboundEmail) error {
	if c.disabled {
		c.logger.Debug().Str("to", email.To).Str("subject", email.Subject).Msg("mail disabled, dropping email")
		return nil
	}

	msg := goemail.NewMessage(c.mailAddress, email.Subject, email.Body)
	msg.SetName(c.mailName)
	msg.AddTo(email.To)

	return c.smtp.Send(msg)
}
