package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airports/internal/kafka"
	"github.com/Domenick1991/airports/internal/pkg/logger"
)

// Sender turns order events into customer notifications. Delivery is a log
// line until a mail transport is configured.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info(Render(event))
	return nil
}

// Render builds the notification text for an event.
func Render(event kafka.OrderEvent) string {
	var subject string
	switch event.Type {
	case kafka.OrderCreated:
		subject = "order confirmed"
	case kafka.OrderUpdated:
		subject = "order changed"
	case kafka.OrderDeleted:
		subject = "order cancelled"
	default:
		subject = event.Type
	}

	seats := make([]string, 0, len(event.Tickets))
	for _, t := range event.Tickets {
		seats = append(seats, fmt.Sprintf("flight %d row %d seat %d", t.FlightID, t.Row, t.Seat))
	}
	msg := fmt.Sprintf("notify user %d: %s #%d", event.UserID, subject, event.OrderID)
	if len(seats) > 0 {
		msg += " (" + strings.Join(seats, ", ") + ")"
	}
	return msg
}
