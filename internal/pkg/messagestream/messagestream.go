package messagestream

import (
	"context"
	"fmt"
	"time"

	"ticketbari/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
)

const (
	TopicBookingStatusChanged = "booking_status_changed"
	TopicPaymentSucceeded     = "payment_succeeded"
	TopicPaymentConfirmed     = "payment_confirmed"
	TopicPaymentPoisoned      = "payment_confirmed_poisoned"
)

type Amqp struct {
	config amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Amqp{
		config: amqp.NewDurableQueueConfig(uri),
		logger: logger,
	}
}

func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.config, a.logger)
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.config, a.logger)
}

// NewRouter wires one consuming handler. Failures are retried maxRetry
// times and then moved to poisonedTopic.
func NewRouter(
	logger watermill.LoggerAdapter,
	maxRetry int,
	publisher message.Publisher,
	poisonedTopic string,
	handlerName string,
	topic string,
	subscriber message.Subscriber,
	handlerFunc message.NoPublishHandlerFunc,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonedTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		poisonQueue,
		middleware.Retry{
			MaxRetries:      maxRetry,
			InitialInterval: 100 * time.Millisecond,
			Logger:          logger,
		}.Middleware,
		middleware.Recoverer,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}

// Publish marshals payload as JSON and publishes it on topic.
func Publish(ctx context.Context, publisher message.Publisher, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	return publisher.Publish(topic, msg)
}
