// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/airdefence/internal/metrics"
)

// Consumer records prediction events into a History.
type Consumer struct {
	bus     *Bus
	history *History
	logger  watermill.LoggerAdapter

	readyOnce sync.Once
	ready     chan struct{}
}

// NewConsumer creates a consumer for bus.
func NewConsumer(bus *Bus, history *History) *Consumer {
	return &Consumer{
		bus:     bus,
		history: history,
		logger:  bus.logger,
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the consumer has subscribed for the first time.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

// Run consumes until ctx is canceled or the bus closes.
func (c *Consumer) Run(ctx context.Context) error {
	messages, err := c.bus.Subscribe(ctx, TopicPredictions)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", TopicPredictions, err)
	}
	c.readyOnce.Do(func() { close(c.ready) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			c.handle(msg)
		}
	}
}

func (c *Consumer) handle(msg *message.Message) {
	rec, err := DecodePrediction(msg)
	if err != nil {
		// Malformed payloads are acked; redelivery cannot fix them.
		c.logger.Error("Failed to parse prediction event", err, watermill.LogFields{
			"message_uuid": msg.UUID,
		})
		metrics.PredictionEvents.WithLabelValues("invalid").Inc()
		msg.Ack()
		return
	}

	c.history.Add(rec)
	metrics.PredictionEvents.WithLabelValues(rec.Kind).Inc()
	msg.Ack()
}
