package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	orderdomain "github.com/nvasilev/storefront/internal/order/domain"
	"github.com/nvasilev/storefront/pkg/logger"
)

// Publisher wraps a Kafka sync producer for order events.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishOrderPlaced publishes an order placed event with tracing.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, order *orderdomain.Order, items []orderdomain.OrderItem) error {
	event := OrderPlacedEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeOrderPlaced,
		OrderID:    order.ID,
		UserID:     order.UserID,
		ItemsCount: order.ItemsCount,
		TotalPrice: order.TotalPrice,
		Timestamp:  time.Now(),
	}
	for _, item := range items {
		event.Lines = append(event.Lines, OrderLineEvent{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}
	return p.publish(ctx, event.EventType, event.EventID, order.ID, event)
}

// PublishOrderStatusChanged publishes an order status transition.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, order *orderdomain.Order, previous string) error {
	event := OrderStatusChangedEvent{
		EventID:        uuid.NewString(),
		EventType:      EventTypeOrderStatusChanged,
		OrderID:        order.ID,
		UserID:         order.UserID,
		PreviousStatus: previous,
		Status:         order.Status,
		Timestamp:      time.Now(),
	}
	return p.publish(ctx, event.EventType, event.EventID, order.ID, event)
}

func (p *Publisher) publish(ctx context.Context, eventType, eventID string, orderID uint, event any) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicOrders),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
			attribute.Int64("order.id", int64(orderID)),
		),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicOrders,
		Key:     sarama.StringEncoder(fmt.Sprintf("order_%d", orderID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicOrders).
			Str("event_type", eventType).
			Uint("order_id", orderID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", TopicOrders).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("order_id", orderID).
		Msg("Order event published")

	return nil
}

// Close closes the Kafka producer.
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
