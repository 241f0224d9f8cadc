package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Azimiwizard/App-1/entity"
)

// Relay carries status events across processes through a Redis pub/sub
// channel. Every process publishes transitions to the channel and feeds
// what it receives into its local hub, so a client connected anywhere
// sees a change handled anywhere.
type Relay struct {
	Client  *redis.Client
	Hub     *Hub
	Channel string
}

func NewRelay(client *redis.Client, hub *Hub, channel string) *Relay {
	if channel == "" {
		channel = "orders:status"
	}
	return &Relay{Client: client, Hub: hub, Channel: channel}
}

// PublishStatus implements services.StatusBroadcaster.
func (r *Relay) PublishStatus(ctx context.Context, orderID uint, status entity.OrderStatus, at time.Time) error {
	ev := StatusEvent{Event: "order_status_update", OrderID: orderID, Status: status, At: at}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return r.Client.Publish(ctx, r.Channel, payload).Err()
}

// Run subscribes to the relay channel and feeds events into the local
// hub until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.Client.Subscribe(ctx, r.Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev StatusEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("relay: bad payload: %v", err)
				continue
			}
			r.Hub.Broadcast(ev)
		}
	}
}
