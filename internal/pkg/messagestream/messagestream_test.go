package messagestream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketbari/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubSub.Close()

	err := messagestream.Publish(context.Background(), pubSub, messagestream.TopicPaymentSucceeded, map[string]string{"tracking_id": "TKT-1"})
	require.NoError(t, err)

	messages, err := pubSub.Subscribe(context.Background(), messagestream.TopicPaymentSucceeded)
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var got map[string]string
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, "TKT-1", got["tracking_id"])
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestNewRouterPoisonsFailingMessages(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubSub.Close()

	router, err := messagestream.NewRouter(
		watermill.NopLogger{},
		1,
		pubSub,
		messagestream.TopicPaymentPoisoned,
		"test_handler",
		messagestream.TopicPaymentConfirmed,
		pubSub,
		func(msg *message.Message) error {
			return errors.New("cannot process")
		},
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()

	poisoned, err := pubSub.Subscribe(ctx, messagestream.TopicPaymentPoisoned)
	require.NoError(t, err)

	require.NoError(t, pubSub.Publish(messagestream.TopicPaymentConfirmed, message.NewMessage("1", []byte(`{"session_id":"cs_1"}`))))

	select {
	case msg := <-poisoned:
		assert.Equal(t, `{"session_id":"cs_1"}`, string(msg.Payload))
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("message not poisoned")
	}

	require.NoError(t, router.Close())
}
