package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the invoice detail page, printed on
// the customer receipt.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(invoiceID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/invoices/%d", g.BaseURL, invoiceID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
