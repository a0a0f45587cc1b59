package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/google/uuid"
)

const (
	OrderCreated = "order_created"
	OrderUpdated = "order_updated"
	OrderDeleted = "order_deleted"
)

type TicketRef struct {
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type OrderEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OrderID    int64       `json:"order_id"`
	UserID     int64       `json:"user_id"`
	Tickets    []TicketRef `json:"tickets"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewOrderEvent(eventType string, order *domain.Order) OrderEvent {
	tickets := make([]TicketRef, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, TicketRef{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}
	return OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Tickets:    tickets,
		OccurredAt: time.Now().UTC(),
	}
}

// Key partitions events by order.
func (e OrderEvent) Key() string {
	return fmt.Sprintf("order-%d", e.OrderID)
}

func DecodeOrderEvent(data []byte) (OrderEvent, error) {
	var event OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return OrderEvent{}, fmt.Errorf("failed to decode order event: %w", err)
	}
	if event.Type == "" || event.OrderID == 0 {
		return OrderEvent{}, fmt.Errorf("incomplete order event %q", event.ID)
	}
	return event, nil
}
