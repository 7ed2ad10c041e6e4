package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"brasserie/internal/domain"
)

// Consumer reads order lifecycle events and keeps the daily revenue
// counters current for the dashboard.
type Consumer struct {
	Reader *kafka.Reader
	Stats  StatsCache
}

func NewConsumer(reader *kafka.Reader, stats StatsCache) *Consumer {
	return &Consumer{Reader: reader, Stats: stats}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Info("Starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Error("Error reading order event")
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.WithError(err).Error("Error unmarshaling order event")
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventInvoiceGenerated {
		return
	}

	amount, err := strconv.ParseFloat(event.AmountTTC, 64)
	if err != nil {
		log.WithError(err).WithField("amount", event.AmountTTC).Error("Bad invoice amount in event")
		return
	}

	date := event.Timestamp.Format("2006-01-02")
	if err := c.Stats.IncrRevenue(ctx, date, amount); err != nil {
		log.WithError(err).Error("Error updating revenue counter")
		return
	}
	if err := c.Stats.IncrInvoiceCount(ctx, date); err != nil {
		log.WithError(err).Error("Error updating invoice counter")
		return
	}

	log.WithFields(log.Fields{
		"invoice_id": event.InvoiceID,
		"order_id":   event.OrderID,
	}).Info("Processed invoice event")
}
