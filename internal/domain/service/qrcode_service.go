package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at the share URL for a
	// restaurant.
	GenerateShareQR(restaurantID int64) ([]byte, error)
}
