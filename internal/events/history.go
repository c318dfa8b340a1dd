// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package events

import (
	"sync"

	"github.com/tomtom215/airdefence/internal/models"
)

// DefaultHistorySize is used when a non-positive size is configured.
const DefaultHistorySize = 100

// History is a fixed-size ring of the most recent predictions.
type History struct {
	mu    sync.RWMutex
	buf   []models.PredictionRecord
	next  int
	count int
}

// NewHistory creates a ring holding up to size records.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{buf: make([]models.PredictionRecord, size)}
}

// Add records rec, evicting the oldest entry when full.
func (h *History) Add(rec *models.PredictionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf[h.next] = *rec
	h.next = (h.next + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Recent returns up to limit records, newest first.
func (h *History) Recent(limit int) []models.PredictionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := h.count
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.PredictionRecord, n)
	for i := range n {
		idx := (h.next - 1 - i + len(h.buf)) % len(h.buf)
		out[i] = h.buf[idx]
	}
	return out
}

// Len returns the number of stored records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Cap returns the ring size.
func (h *History) Cap() int {
	return len(h.buf)
}
