package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"walletportal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x1111111111111111111111111111111111111111"

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAddressQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateAddressQR(testAddress)
	require.NoError(t, err)
	assertPNG(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateAddressQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateAddressQR(testAddress)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateAddressQR_EmptyAddress(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateAddressQR("  ")
	assert.Error(t, err)
	assert.Nil(t, qrBytes)
}

func TestNew_FromConfig(t *testing.T) {
	withSection := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})
	qrBytes, err := withSection.GenerateAddressQR(testAddress)
	require.NoError(t, err)
	assertPNG(t, qrBytes)

	withoutSection := New(&config.Config{})
	qrBytes, err = withoutSection.GenerateAddressQR(testAddress)
	require.NoError(t, err)
	assertPNG(t, qrBytes)
}
