// Package qrcode renders order receipt QR codes.
package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	// ReceiptType tags the payload of an order receipt QR code.
	ReceiptType = "order_receipt"

	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode configuration section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateOrderReceiptQR renders a PNG QR code whose payload links to the order receipt.
func (s *qrcodeService) GenerateOrderReceiptQR(orderNumber string) ([]byte, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errors.New("order number is required")
	}

	data := service.ReceiptQRPayload{
		Type:        ReceiptType,
		OrderNumber: orderNumber,
		URL:         s.receiptURL(orderNumber),
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderReceiptQR parses QR code data and returns the order number
func (s *qrcodeService) ParseOrderReceiptQR(qrData string) (string, error) {
	var data service.ReceiptQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	// Validate type
	if data.Type != ReceiptType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderNumber == "" {
		return "", errors.New("QR code carries no order number")
	}

	return data.OrderNumber, nil
}

func (s *qrcodeService) receiptURL(orderNumber string) string {
	if s.baseURL == "" {
		return ""
	}

	link, err := url.JoinPath(s.baseURL, orderNumber)
	if err != nil {
		return ""
	}

	return link
}
