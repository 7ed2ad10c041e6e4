package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"brasserie/internal/domain"
)

type InvoiceService struct {
	repo      InvoiceRepository
	qrEncoder QRGenerator
	publisher EventPublisher
	now       func() time.Time
}

func NewInvoiceService(repo InvoiceRepository, qr QRGenerator, publisher EventPublisher) *InvoiceService {
	return &InvoiceService{repo: repo, qrEncoder: qr, publisher: publisher, now: time.Now}
}

// Generate bills an order exactly once: snapshots the order total, applies
// the 18% tax, assigns a FAC-timestamp number and persists the invoice
// together with the PAID status and the table release. A collision on the
// invoice number is retried once with a disambiguated number.
func (s *InvoiceService) Generate(ctx context.Context, orderID int, paymentMethod string) (*domain.Invoice, error) {
	if !domain.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("unknown payment method %q: %w", paymentMethod, domain.ErrValidation)
	}

	preTax, err := s.repo.OrderTotal(orderID)
	if err != nil {
		return nil, fmt.Errorf("snapshot order total: %w", err)
	}
	tax := preTax.Mul(domain.TaxRate).Round(2)
	total := preTax.Add(tax)

	inv := &domain.Invoice{
		OrderID:       orderID,
		Number:        invoiceNumber(s.now()),
		PreTax:        preTax,
		Tax:           tax,
		Total:         total,
		PaymentMethod: paymentMethod,
		Paid:          false,
	}

	err = s.repo.CreateInvoice(inv)
	if errors.Is(err, domain.ErrInvoiceNumberTaken) {
		// Two invoices in the same second; disambiguate and retry once.
		inv.Number = invoiceNumber(s.now()) + "-" + strings.ToUpper(uuid.NewString()[:4])
		err = s.repo.CreateInvoice(inv)
	}
	if err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, qrErr := s.qrEncoder.Generate(inv.ID); qrErr == nil {
			if saveErr := s.repo.SaveInvoiceQRCode(inv.ID, qr); saveErr != nil {
				log.WithError(saveErr).WithField("invoice_id", inv.ID).Warn("Failed to store invoice QR code")
			}
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      domain.EventInvoiceGenerated,
			OrderID:   orderID,
			InvoiceID: inv.ID,
			AmountTTC: inv.Total.String(),
			Timestamp: time.Now(),
		}
		if pubErr := s.publisher.PublishEvent(ctx, event); pubErr != nil {
			log.WithError(pubErr).WithField("invoice_id", inv.ID).Warn("Failed to publish invoice event")
		}
	}

	return inv, nil
}

func (s *InvoiceService) Get(id int) (*domain.Invoice, error) {
	return s.repo.GetInvoice(id)
}

func (s *InvoiceService) List() ([]domain.Invoice, decimal.Decimal, error) {
	invoices, err := s.repo.ListInvoices()
	if err != nil {
		return nil, decimal.Zero, err
	}
	sum, err := s.repo.SumInvoices()
	if err != nil {
		return nil, decimal.Zero, err
	}
	return invoices, sum, nil
}

func (s *InvoiceService) GetQRCode(id int) ([]byte, error) {
	qr, err := s.repo.GetInvoiceQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, genErr := s.qrEncoder.Generate(id)
		if genErr != nil {
			return nil, genErr
		}
		if saveErr := s.repo.SaveInvoiceQRCode(id, regenerated); saveErr != nil {
			log.WithError(saveErr).WithField("invoice_id", id).Warn("Failed to cache regenerated QR code")
		}
		return regenerated, nil
	}
	return qr, nil
}

func invoiceNumber(t time.Time) string {
	return "FAC-" + t.Format("20060102150405")
}

var _ InvoiceServiceInterface = (*InvoiceService)(nil)
