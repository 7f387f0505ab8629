// Package paystack implements service.PaymentGateway against the Paystack REST API.
package paystack

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
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	initializePath = "/transaction/initialize"
	// The bakery subaccount bears Paystack's fees; the platform keeps transaction_charge whole.
	bearerSubaccount = "subaccount"
	maxResponseBytes = 1 << 20
)

type client struct {
	secretKey      string
	subaccountCode string
	baseURL        string
	callbackURL    string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient builds the Paystack gateway from the paystack config section.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Paystack == nil || cfg.Paystack.SecretKey == "" {
		return nil, errors.New("paystack secret key must be provided")
	}

	timeout := cfg.Paystack.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &client{
		secretKey:      cfg.Paystack.SecretKey,
		subaccountCode: cfg.Paystack.SubaccountCode,
		baseURL:        strings.TrimRight(cfg.Paystack.BaseURL, "/"),
		callbackURL:    cfg.Paystack.CallbackURL,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
	}, nil
}

type initializeRequest struct {
	Email             string            `json:"email"`
	Amount            int64             `json:"amount"`
	Reference         string            `json:"reference"`
	CallbackURL       string            `json:"callback_url,omitempty"`
	Subaccount        string            `json:"subaccount,omitempty"`
	TransactionCharge int64             `json:"transaction_charge,omitempty"`
	Bearer            string            `json:"bearer,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// InitializePayment starts a split transaction. Amounts are sent in kobo.
func (c *client) InitializePayment(ctx context.Context, req *service.InitializePaymentRequest) (*service.InitializePaymentResult, error) {
	payload := initializeRequest{
		Email:       req.Email,
		Amount:      entity.ToMinorUnits(req.Amount),
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	}
	if payload.CallbackURL == "" {
		payload.CallbackURL = c.callbackURL
	}
	if c.subaccountCode != "" {
		payload.Subaccount = c.subaccountCode
		payload.TransactionCharge = entity.ToMinorUnits(req.Commission)
		payload.Bearer = bearerSubaccount
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+initializePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "paystack initialize request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read paystack response")
	}

	var decoded initializeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, errors.Errorf("paystack unavailable: status %d", resp.StatusCode)
		}

		return nil, &service.GatewayError{StatusCode: resp.StatusCode, Message: "unreadable provider response"}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errors.Errorf("paystack unavailable: status %d: %s", resp.StatusCode, decoded.Message)
	}
	if resp.StatusCode >= http.StatusMultipleChoices || !decoded.Status {
		c.logger.WarnContext(ctx, "Paystack rejected initialize",
			slog.String("reference", req.Reference),
			slog.Int("status_code", resp.StatusCode),
			slog.String("message", decoded.Message),
		)

		return nil, &service.GatewayError{StatusCode: resp.StatusCode, Message: decoded.Message}
	}

	reference := decoded.Data.Reference
	if reference == "" {
		reference = req.Reference
	}

	return &service.InitializePaymentResult{
		AuthorizationURL: decoded.Data.AuthorizationURL,
		AccessCode:       decoded.Data.AccessCode,
		Reference:        reference,
	}, nil
}
