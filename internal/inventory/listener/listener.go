package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/inventory"
	"github.com/fekuna/gasops-dashboard-service/internal/inventory/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/broker"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

// MovementListener consumes movement events published by depot systems
// (delivery scanners, the replenishment intake app) and records them through
// the same path as the HTTP write endpoint.
type MovementListener struct {
	consumer *broker.KafkaConsumer
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewMovementListener(consumer *broker.KafkaConsumer, uc inventory.UseCase, logger logger.ZapLogger) *MovementListener {
	return &MovementListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *MovementListener) Start(ctx context.Context) {
	l.logger.Info("Starting movement Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping movement Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type MovementRecordedEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   MovementPayload `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type MovementPayload struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	TankSize     string `json:"tank_size"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
}

func (l *MovementListener) processMessage(ctx context.Context, value []byte) {
	var event MovementRecordedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "MovementRecorded" {
		return
	}

	l.logger.Info("Processing MovementRecorded event", zap.String("event_id", event.EventID))

	input := &dto.RecordMovementInput{
		Date:         event.Payload.Date,
		Type:         event.Payload.Type,
		TankSize:     event.Payload.TankSize,
		Quantity:     event.Payload.Quantity,
		CustomerName: event.Payload.CustomerName,
	}

	if _, err := l.uc.RecordMovement(ctx, input); err != nil {
		l.logger.Error("Failed to record movement from event",
			zap.String("event_id", event.EventID),
			zap.String("tank_size", event.Payload.TankSize),
			zap.Error(err),
		)
	}
}
