package paystack

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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "sk_test_storefront"

func newTestClient(t *testing.T, baseURL, subaccount string) service.PaymentGateway {
	t.Helper()

	gateway, err := NewClient(&config.Config{Paystack: &config.PaystackConfig{
		SecretKey:      testSecret,
		SubaccountCode: subaccount,
		BaseURL:        baseURL,
		CallbackURL:    "https://bakery.test/payments/callback",
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gateway
}

func initializeRequestFixture() *service.InitializePaymentRequest {
	return &service.InitializePaymentRequest{
		Email:      "ada@bakery.test",
		Amount:     decimal.RequireFromString("27000"),
		Commission: decimal.RequireFromString("1350"),
		Reference:  "ORD-1700000000000-abcd1234",
		Metadata:   map[string]string{"order_id": "abcd1234"},
	}
}

func TestNewClient_RequiresSecret(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestInitializePayment_SendsSplitInKobo(t *testing.T) {
	var got initializeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, initializePath, r.URL.Path)
		assert.Equal(t, "Bearer "+testSecret, r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{
			"authorization_url":"https://checkout.paystack.com/x1","access_code":"x1","reference":"ORD-1700000000000-abcd1234"}}`))
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL, "ACCT_bakery").InitializePayment(context.Background(), initializeRequestFixture())
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paystack.com/x1", result.AuthorizationURL)
	assert.Equal(t, "x1", result.AccessCode)
	assert.Equal(t, "ORD-1700000000000-abcd1234", result.Reference)

	assert.Equal(t, int64(2700000), got.Amount)
	assert.Equal(t, int64(135000), got.TransactionCharge)
	assert.Equal(t, "ACCT_bakery", got.Subaccount)
	assert.Equal(t, bearerSubaccount, got.Bearer)
	assert.Equal(t, "https://bakery.test/payments/callback", got.CallbackURL)
	assert.Equal(t, "abcd1234", got.Metadata["order_id"])
}

func TestInitializePayment_WithoutSubaccountOmitsSplit(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"status":true,"data":{"authorization_url":"u","access_code":"c"}}`))
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL, "").InitializePayment(context.Background(), initializeRequestFixture())
	require.NoError(t, err)

	assert.NotContains(t, raw, "subaccount")
	assert.NotContains(t, raw, "transaction_charge")
	assert.Equal(t, "ORD-1700000000000-abcd1234", result.Reference)
}

func TestInitializePayment_ProviderRejects(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"status false", http.StatusOK, `{"status":false,"message":"Invalid subaccount"}`},
		{"bad request", http.StatusBadRequest, `{"status":false,"message":"Duplicate Transaction Reference"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, "ACCT_bakery").InitializePayment(context.Background(), initializeRequestFixture())
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrGatewayRejected)

			var gatewayErr *service.GatewayError
			require.True(t, errors.As(err, &gatewayErr))
			assert.NotEmpty(t, gatewayErr.Message)
		})
	}
}

func TestInitializePayment_ProviderUnavailable(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"html error page", http.StatusBadGateway, "<html>bad gateway</html>", "status 502"},
		{"json error body", http.StatusServiceUnavailable, `{"status":false,"message":"Service temporarily unavailable"}`, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, "").InitializePayment(context.Background(), initializeRequestFixture())
			require.Error(t, err)
			assert.NotErrorIs(t, err, service.ErrGatewayRejected)

			var gatewayErr *service.GatewayError
			assert.False(t, errors.As(err, &gatewayErr))
			assert.Contains(t, err.Error(), "paystack unavailable")
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestVerifyWebhook(t *testing.T) {
	gateway := newTestClient(t, "http://unused", "")
	body := []byte(`{"event":"charge.success","data":{"id":302961,"reference":"ORD-1-abc","amount":2700000,
		"status":"success","customer":{"email":"ada@bakery.test"}}}`)

	event, err := gateway.VerifyWebhook(body, Sign(testSecret, body))
	require.NoError(t, err)
	assert.Equal(t, EventChargeSuccess, event.Event)
	assert.Equal(t, "302961", event.ProviderEventID)
	assert.Equal(t, "ORD-1-abc", event.Reference)
	assert.Equal(t, int64(2700000), event.AmountMinor)
	assert.Equal(t, "ada@bakery.test", event.CustomerEmail)
}

func TestVerifyWebhook_RejectsBadSignatures(t *testing.T) {
	gateway := newTestClient(t, "http://unused", "")
	body := []byte(`{"event":"charge.success","data":{"reference":"ORD-1-abc","amount":100}}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"wrong secret", Sign("sk_other", body)},
		{"tampered body", Sign(testSecret, append([]byte(" "), body...))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gateway.VerifyWebhook(body, tt.signature)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestVerifyWebhook_RejectsMalformedPayload(t *testing.T) {
	gateway := newTestClient(t, "http://unused", "")

	for _, body := range [][]byte{[]byte(`not json`), []byte(`{"data":{}}`)} {
		_, err := gateway.VerifyWebhook(body, Sign(testSecret, body))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	}
}
