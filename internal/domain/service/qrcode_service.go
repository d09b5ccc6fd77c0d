package service

// ReceiptQRPayload is the JSON document encoded in an order receipt QR code.
type ReceiptQRPayload struct {
	Type        string `json:"type"`
	OrderNumber string `json:"orderNumber"`
	URL         string `json:"url"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderReceiptQR renders a PNG QR code pointing at the order receipt
	GenerateOrderReceiptQR(orderNumber string) ([]byte, error)

	// ParseOrderReceiptQR parses QR code data and returns the order number
	ParseOrderReceiptQR(qrData string) (string, error)
}
