package listener

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/glowmart/admin-service/internal/deal"
	"github.com/glowmart/admin-service/pkg/broker"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

// PurchaseListener consumes storefront purchase events and keeps the deal
// sold/remaining counters current. The service never recomputes those fields
// anywhere else; this is the single write path for them.
type PurchaseListener struct {
	consumer *broker.KafkaConsumer
	uc       deal.UseCase
	logger   logger.ZapLogger
}

func NewPurchaseListener(consumer *broker.KafkaConsumer, uc deal.UseCase, logger logger.ZapLogger) *PurchaseListener {
	return &PurchaseListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *PurchaseListener) Start(ctx context.Context) {
	l.logger.Info("starting deal purchase listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("stopping deal purchase listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type DealPurchasedEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   PurchasePayload `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type PurchasePayload struct {
	OrderID  string `json:"order_id"`
	DealID   string `json:"deal_id"`
	Quantity int    `json:"quantity"`
}

func (l *PurchaseListener) processMessage(ctx context.Context, value []byte) {
	var event DealPurchasedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "DealPurchased" {
		return
	}

	l.logger.Info("processing DealPurchased event",
		zap.String("order_id", event.Payload.OrderID),
		zap.String("deal_id", event.Payload.DealID),
	)

	err := l.uc.RecordPurchase(ctx, event.Payload.DealID, event.Payload.Quantity)
	if err != nil {
		if errors.Is(err, deal.ErrOutOfStock) {
			l.logger.Warn("purchase event exceeds remaining quantity",
				zap.String("deal_id", event.Payload.DealID),
				zap.Int("quantity", event.Payload.Quantity),
			)
			return
		}
		l.logger.Error("failed to record purchase",
			zap.String("deal_id", event.Payload.DealID),
			zap.Error(err),
		)
	}
}
