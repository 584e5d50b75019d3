package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateAddressQR renders a wallet address as a PNG QR code
	GenerateAddressQR(address string) ([]byte, error)
}
