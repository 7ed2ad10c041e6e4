package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"brasserie/internal/domain"
	"brasserie/internal/mocks"
	"brasserie/internal/service"
)

func TestConsumer_ProcessInvoiceEvent(t *testing.T) {
	mockCache := new(mocks.StatsCache)
	consumer := &service.Consumer{Stats: mockCache}

	when := time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC)
	mockCache.On("IncrRevenue", mock.Anything, "2026-08-29", 11800.0).Return(nil).Once()
	mockCache.On("IncrInvoiceCount", mock.Anything, "2026-08-29").Return(nil).Once()

	consumer.ProcessEvent(context.Background(), domain.OrderEvent{
		Type:      domain.EventInvoiceGenerated,
		OrderID:   1,
		InvoiceID: 5,
		AmountTTC: "11800",
		Timestamp: when,
	})

	mockCache.AssertExpectations(t)
}

func TestConsumer_IgnoresNonInvoiceEvents(t *testing.T) {
	mockCache := new(mocks.StatsCache)
	consumer := &service.Consumer{Stats: mockCache}

	consumer.ProcessEvent(context.Background(), domain.OrderEvent{
		Type:    domain.EventOrderOpened,
		OrderID: 1,
	})
	consumer.ProcessEvent(context.Background(), domain.OrderEvent{
		Type:     domain.EventItemAdded,
		OrderID:  1,
		DishID:   2,
		Quantity: 3,
	})

	mockCache.AssertNotCalled(t, "IncrRevenue", mock.Anything, mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "IncrInvoiceCount", mock.Anything, mock.Anything)
}

func TestConsumer_SkipsUnparsableAmount(t *testing.T) {
	mockCache := new(mocks.StatsCache)
	consumer := &service.Consumer{Stats: mockCache}

	consumer.ProcessEvent(context.Background(), domain.OrderEvent{
		Type:      domain.EventInvoiceGenerated,
		AmountTTC: "onze mille",
		Timestamp: time.Now(),
	})

	mockCache.AssertNotCalled(t, "IncrRevenue", mock.Anything, mock.Anything, mock.Anything)
}
