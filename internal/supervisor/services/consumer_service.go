// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package services

import (
	"context"

	"github.com/thejerf/suture/v4"
)

// EventRunner consumes events until ctx is canceled. Satisfied by
// *events.Consumer.
type EventRunner interface {
	Run(ctx context.Context) error
}

// EventConsumerService supervises the prediction history consumer. A
// subscribe failure is returned so suture restarts it with backoff; a
// closed bus ends the service.
type EventConsumerService struct {
	consumer EventRunner
	name     string
}

// NewEventConsumerService wraps consumer.
func NewEventConsumerService(consumer EventRunner) *EventConsumerService {
	return &EventConsumerService{consumer: consumer, name: "prediction-consumer"}
}

// Serve implements suture.Service.
func (s *EventConsumerService) Serve(ctx context.Context) error {
	err := s.consumer.Run(ctx)
	if err == nil && ctx.Err() == nil {
		// Subscription channel closed: the bus is gone.
		return suture.ErrDoNotRestart
	}
	return err
}

// String implements fmt.Stringer.
func (s *EventConsumerService) String() string {
	return s.name
}
