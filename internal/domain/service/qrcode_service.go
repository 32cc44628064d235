package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for listing QR code generation and parsing
type QRCodeService interface {
	// GeneratePostQR renders a PNG QR code pointing to the listing's public page
	GeneratePostQR(postID uuid.UUID) ([]byte, error)

	// PostURL returns the public URL encoded in a listing QR code
	PostURL(postID uuid.UUID) string
}
