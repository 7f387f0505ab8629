package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSender(baseURL string) service.EmailSender {
	return NewSender(&config.Config{Email: &config.EmailConfig{
		APIKey:  "re_test",
		From:    "Bakery <orders@bakery.test>",
		BaseURL: baseURL,
	}}, discardLogger())
}

func TestNewSender_WithoutKeyLogsOnly(t *testing.T) {
	sender := NewSender(&config.Config{}, discardLogger())
	assert.IsType(t, &logSender{}, sender)
	assert.NoError(t, sender.Send(context.Background(), &service.EmailMessage{To: "a@b.test"}))
}

func TestHTTPSender_Send(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sendPath, r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer server.Close()

	err := newTestSender(server.URL).Send(context.Background(), &service.EmailMessage{
		To: "ada@bakery.test", Subject: "Order received", HTML: "<p>Thanks</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@bakery.test"}, got.To)
	assert.Equal(t, "Bakery <orders@bakery.test>", got.From)
	assert.Equal(t, "Order received", got.Subject)
}

func TestHTTPSender_StatusClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantPermanent bool
	}{
		{"validation error", http.StatusUnprocessableEntity, true},
		{"rate limited", http.StatusTooManyRequests, false},
		{"server error", http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := newTestSender(server.URL).Send(context.Background(), &service.EmailMessage{To: "ada@bakery.test"})
			require.Error(t, err)
			assert.Equal(t, tt.wantPermanent, errors.Is(err, ErrPermanent))
		})
	}
}

func TestHTTPSender_MissingRecipient(t *testing.T) {
	err := newTestSender("http://unused").Send(context.Background(), &service.EmailMessage{})
	assert.ErrorIs(t, err, ErrPermanent)
}
