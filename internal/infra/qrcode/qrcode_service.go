// Package qrcode renders QR codes that link to public listing pages.
package qrcode

import (
	"strings"

	"mescontacts/config"
	"mescontacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultBaseURL = "https://mescontacts.ca/annonces"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	baseURL := strings.TrimRight(qrCfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 qrCfg.Size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PostURL returns the public page of a listing.
func (s *qrcodeService) PostURL(postID uuid.UUID) string {
	return s.baseURL + "/" + postID.String()
}

// GeneratePostQR renders the listing URL as a PNG.
func (s *qrcodeService) GeneratePostQR(postID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.PostURL(postID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
