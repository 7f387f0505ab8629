package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for order pickup QR codes.
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying an order for pickup.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR extracts the order ID from scanned QR data.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
