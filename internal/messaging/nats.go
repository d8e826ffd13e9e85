package messaging

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"user-management-service/internal/domain/events"
)

const (
	connectionTimeout = 5 * time.Second
	reconnectWait     = 1 * time.Second
	maxReconnects     = 10
	drainTimeout      = 10 * time.Second
)

// Publisher sends user lifecycle events to NATS.
type Publisher struct {
	nc *nats.Conn
}

// ConnectNats dials the server at url with reconnect handling.
func ConnectNats(url, name string) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.Timeout(connectionTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
		nats.DrainTimeout(drainTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Println("NATS reconnected")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Printf("NATS error: %v", err)
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	log.Printf("Connected to NATS at %s", nc.ConnectedUrl())
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Publish(ctx context.Context, event *events.UserEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return p.nc.Publish(event.Subject(), data)
}

// Status reports the connection state for diagnostics.
func (p *Publisher) Status() string {
	if p.nc == nil {
		return "not initialized"
	}
	if p.nc.IsConnected() {
		return "connected"
	}
	return "disconnected"
}

// Close drains pending messages before closing the connection.
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		log.Printf("Error draining NATS connection: %v", err)
		p.nc.Close()
	}
}
