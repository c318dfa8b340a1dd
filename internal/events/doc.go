// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package events carries served predictions over an in-process Watermill
// GoChannel pub/sub.
//
// The prediction service publishes a JSON PredictionRecord on
// TopicPredictions for every answered request. A Consumer, run under the
// supervisor tree, subscribes to the topic and keeps the most recent records
// in a bounded History ring buffer that backs /api/predict/history.
//
// Publishing never blocks on the consumer: GoChannel delivers each message
// on its own goroutine and drops messages while nobody is subscribed.
package events
