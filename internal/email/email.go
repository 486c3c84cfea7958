package email

import (
	"context"
	"fmt"

	"github.com/smelyanko/airport-service/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("send email to %s about %s for order %s (%d tickets)\n",
		event.UserEmail, event.Type, event.OrderNumber, len(event.Tickets))
	return nil
}
