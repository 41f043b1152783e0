package kafka

import "time"

// OrderLineEvent is one product line carried inside an order event.
type OrderLineEvent struct {
	ProductID  uint    `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// OrderPlacedEvent is emitted once per placed order, after commit.
type OrderPlacedEvent struct {
	EventID    string           `json:"event_id"`
	EventType  string           `json:"event_type"`
	OrderID    uint             `json:"order_id"`
	UserID     uint             `json:"user_id"`
	ItemsCount int              `json:"items_count"`
	TotalPrice float64          `json:"total_price"`
	Lines      []OrderLineEvent `json:"lines"`
	Timestamp  time.Time        `json:"timestamp"`
}

// OrderStatusChangedEvent is emitted on every status transition.
type OrderStatusChangedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrderID        uint      `json:"order_id"`
	UserID         uint      `json:"user_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// Kafka topics
const (
	TopicOrders = "storefront-orders"
)
