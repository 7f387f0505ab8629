// Package email sends transactional mail through an HTTP email API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.resend.com"
	sendPath       = "/emails"
)

// ErrPermanent marks a send the provider will never accept.
var ErrPermanent = service.ErrEmailRejected

type httpSender struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSender returns the HTTP sender, or a sender that only logs when no API key is set.
func NewSender(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	if cfg.Email == nil || cfg.Email.APIKey == "" {
		logger.Info("Email API key not configured, emails will be logged only")

		return &logSender{logger: logger}
	}

	baseURL := cfg.Email.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &httpSender{
		apiKey:     cfg.Email.APIKey,
		from:       cfg.Email.From,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *httpSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	if msg.To == "" {
		return errors.Wrap(ErrPermanent, "missing recipient")
	}

	body, err := json.Marshal(sendRequest{From: s.from, To: []string{msg.To}, Subject: msg.Subject, HTML: msg.HTML})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		s.logger.InfoContext(ctx, "Email sent", slog.String("subject", msg.Subject))

		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	// 429 and 5xx are worth retrying; other 4xx will fail the same way again.
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return errors.Errorf("email provider returned status %d: %s", resp.StatusCode, detail)
	}

	return errors.Wrapf(ErrPermanent, "status %d: %s", resp.StatusCode, detail)
}

type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	s.logger.InfoContext(ctx, "Email sending disabled, dropping message",
		slog.String("subject", msg.Subject),
	)

	return nil
}
