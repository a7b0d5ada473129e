package client

import (
	"context"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier publishes email lifecycle events for downstream
// consumers (reply detection, analytics).
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyDraftSent(ctx context.Context, message *domain.EmailSentMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyDraftSent, message)
}

func (n *AMQPNotifier) NotifyFollowupSent(ctx context.Context, message *domain.EmailSentMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyFollowupSent, message)
}
