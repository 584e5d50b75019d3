package qrcode

import (
	"strings"

	"walletportal/config"
	"walletportal/internal/domain/service"
	"walletportal/internal/errors"

	"github.com/skip2/go-qrcode"
)

// addressURIScheme makes wallet apps open the code as a payment target.
const addressURIScheme = "ethereum:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = config.DefaultQRCodeSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// New builds the service from the optional qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(config.DefaultQRCodeSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateAddressQR encodes address as an ethereum: URI and renders it as PNG.
func (s *qrcodeService) GenerateAddressQR(address string) ([]byte, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("wallet address is empty")
	}

	qrCode, err := qrcode.New(addressURIScheme+address, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
