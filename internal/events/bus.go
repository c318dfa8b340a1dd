// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/tomtom215/airdefence/internal/models"
)

// TopicPredictions carries one message per served prediction.
const TopicPredictions = "predictions"

// ErrBusClosed is returned when publishing after Close.
var ErrBusClosed = errors.New("event bus is closed")

// BusConfig tunes the in-process pub/sub.
type BusConfig struct {
	// OutputBuffer is the per-subscriber channel buffer.
	OutputBuffer int64
}

// DefaultBusConfig returns production defaults.
func DefaultBusConfig() BusConfig {
	return BusConfig{OutputBuffer: 64}
}

// Bus is the in-process prediction event bus.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus. A nil logger discards Watermill's own logging.
func NewBus(cfg BusConfig, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if cfg.OutputBuffer <= 0 {
		cfg.OutputBuffer = DefaultBusConfig().OutputBuffer
	}
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: cfg.OutputBuffer}, logger),
		logger: logger,
	}
}

// PublishPrediction serializes rec and publishes it on TopicPredictions.
func (b *Bus) PublishPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal prediction event: %w", err)
	}

	msg := message.NewMessage(rec.ID, data)
	msg.Metadata.Set("kind", rec.Kind)
	if rec.RequestID != "" {
		msg.Metadata.Set("request_id", rec.RequestID)
	}

	if err := b.pubsub.Publish(TopicPredictions, msg); err != nil {
		return fmt.Errorf("publish prediction event: %w", err)
	}
	return nil
}

// Subscribe returns the message stream for topic. The channel closes when
// ctx is canceled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts the bus down. Safe to call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}

// DecodePrediction parses a message payload.
func DecodePrediction(msg *message.Message) (*models.PredictionRecord, error) {
	var rec models.PredictionRecord
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal prediction event: %w", err)
	}
	return &rec, nil
}
