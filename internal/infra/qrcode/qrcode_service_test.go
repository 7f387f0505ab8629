package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bakery.test")

	qrBytes, err := service.GeneratePickupQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"https base", "https://bakery.test/"},
		{"https base with path", "https://bakery.test/shop"},
		{"default scheme", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(128, "M", tt.baseURL).(*qrcodeService)
			orderID := uuid.New()

			got, err := svc.ParsePickupQR(svc.PickupURL(orderID))
			require.NoError(t, err)
			assert.Equal(t, orderID, got)
		})
	}
}

func TestQRCodeService_ParsePickupQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bakery.test")

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"wrong path", "https://bakery.test/subscribe/" + uuid.NewString()},
		{"bad uuid", "https://bakery.test/pickup/not-a-uuid"},
		{"bare uuid", uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePickupQR(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	svc := NewFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)

	svc = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H", BaseURL: "https://x.test"}}).(*qrcodeService)
	assert.Equal(t, 300, svc.size)
	assert.Equal(t, "https://x.test/pickup/", svc.PickupURL(uuid.Nil)[:len("https://x.test/pickup/")])
}
