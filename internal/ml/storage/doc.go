// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package storage persists versioned model bundles.
//
// Payloads are gob-encoded, checksummed with SHA-256 and gzip-compressed.
// Each record carries ModelMetadata alongside the compressed payload so a
// store can be listed without decoding models.
//
// # Backends
//
//   - FileStore: one file per version, named {name}_v{version}.gob.gz
//   - BadgerStore: one key per version, model/{name}/{version:010d}
//
// Open selects a backend by name ("file" or "badger").
//
// # Usage
//
//	store, err := storage.Open(storage.BackendFile, "/data/models")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	if err := store.Save(ctx, "airdefence", 3, bundle, meta); err != nil {
//	    return err
//	}
//
//	var loaded ml.Bundle
//	meta, err := store.Load(ctx, "airdefence", 0, &loaded) // 0 = latest
//
// # Thread Safety
//
// Both backends are safe for concurrent use.
package storage
