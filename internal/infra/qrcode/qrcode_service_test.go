package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"mescontacts/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostURL_TrimsTrailingSlash(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:    128,
		BaseURL: "https://example.ca/listings/",
	}})
	id := uuid.MustParse("5b0d3c7e-8a52-4f61-9f0e-2a7c1d9b3e44")

	assert.Equal(t, "https://example.ca/listings/5b0d3c7e-8a52-4f61-9f0e-2a7c1d9b3e44", svc.PostURL(id))
}

func TestPostURL_DefaultsBaseURL(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	id := uuid.New()

	assert.Equal(t, defaultBaseURL+"/"+id.String(), svc.PostURL(id))
}

func TestGeneratePostQR_ProducesSizedPNG(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 200, ErrorCorrectionLevel: "H"}})

	data, err := svc.GeneratePostQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRecoveryLevel(t *testing.T) {
	assert.Equal(t, qrcode.Low, recoveryLevel("l"))
	assert.Equal(t, qrcode.Medium, recoveryLevel(""))
	assert.Equal(t, qrcode.High, recoveryLevel("Q"))
	assert.Equal(t, qrcode.Highest, recoveryLevel("H"))
}
