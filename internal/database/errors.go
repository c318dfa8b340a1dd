// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package database

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is matched by *AmbiguousError.
	ErrAmbiguous = errors.New("ambiguous name")

	// ErrDatasetMissing is returned by LoadCSV when a CSV file is absent.
	ErrDatasetMissing = errors.New("dataset file missing")
)

// NotFoundError names the entity a lookup could not resolve.
type NotFoundError struct {
	Entity string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Entity, e.Name)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousError reports a partial name that matched several rows.
// Matches is sorted.
type AmbiguousError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("Multiple systems match '%s'. Please use exact name: %v", e.Name, e.Matches)
}

// Is makes errors.Is(err, ErrAmbiguous) true.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
