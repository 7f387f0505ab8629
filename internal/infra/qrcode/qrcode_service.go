package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "storefront://"
	pickupPath     = "pickup"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewFromConfig builds the service from the qrcode config section, falling back to defaults.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// PickupURL is the text encoded in an order's pickup QR code.
func (s *qrcodeService) PickupURL(orderID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, pickupPath, orderID)
}

// GeneratePickupQR renders the pickup URL as a PNG.
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.PickupURL(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR accepts the scanned pickup URL and returns the order ID.
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	segments := strings.Split(strings.Trim(parsed.Host+parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != pickupPath {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", qrData)
	}

	orderID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}
