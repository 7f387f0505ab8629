package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/pubsub"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notifications := mockUC.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notifications,
	})

	return h, notifications
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func pushBody(t *testing.T, event *entity.DomainEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/bakery/subscriptions/notifier")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func paymentEvent() *entity.DomainEvent {
	event := entity.NewDomainEvent(entity.EventPaymentSucceeded, uuid.New(),
		&entity.User{Email: "ada@example.com", Name: "Ada"},
		map[string]any{"amount": "27000.00"})
	event.RequestID = "req-7f3a"

	return event
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := paymentEvent()
	sameEvent := mock.MatchedBy(func(e *entity.DomainEvent) bool {
		return e.ID == event.ID && e.Recipient == "ada@example.com"
	})

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mockUC.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "email sent",
			body: pushBody(t, event),
			setupMock: func(m *mockUC.MockNotificationUsecase) {
				m.EXPECT().HandleEvent(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) == "req-7f3a"
				}), sameEvent).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "envelope is not json",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       `{"message":{"data":"%%%","messageId":"1"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejected email is acked",
			body: pushBody(t, event),
			setupMock: func(m *mockUC.MockNotificationUsecase) {
				m.EXPECT().HandleEvent(mock.Anything, sameEvent).
					Return(errors.Wrap(service.ErrEmailRejected, "failed to send payment.succeeded email"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "provider outage is retried",
			body: pushBody(t, event),
			setupMock: func(m *mockUC.MockNotificationUsecase) {
				m.EXPECT().HandleEvent(mock.Anything, sameEvent).Return(errors.New("503 from email api"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t, developConfig())
			if tt.setupMock != nil {
				tt.setupMock(notifications)
			}
			c, rec := pushRequest(t, tt.body)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushInProduction(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("token expired") }

	c, rec := pushRequest(t, pushBody(t, paymentEvent()))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := developConfig()
	cfg.PubSub.Provider = constants.PubSubProviderGoogle

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, developConfig())
	event := paymentEvent()

	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{pubsub.AttrRequestID: "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-7f3a", h.extractRequestID(context.Background(), &msg, event))

	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")
	assert.Equal(t, "from-header", h.extractRequestID(ctx, &msg, event))

	_, err := uuid.Parse(h.extractRequestID(context.Background(), &msg, event))
	assert.NoError(t, err)
}
