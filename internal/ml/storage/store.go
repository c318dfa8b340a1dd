// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package storage

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

var (
	// ErrModelNotFound is returned when no stored version matches.
	ErrModelNotFound = errors.New("model not found")

	// ErrChecksumMismatch is returned when a payload fails verification.
	ErrChecksumMismatch = errors.New("model checksum mismatch")
)

// ModelMetadata describes one stored model version.
type ModelMetadata struct {
	// Name is the bundle name.
	Name string `json:"name"`

	// Version is monotonically increasing per name.
	Version int `json:"version"`

	TrainedAt time.Time `json:"trained_at"`
	SavedAt   time.Time `json:"saved_at"`

	// Samples is the number of rows the models were trained on.
	Samples int `json:"samples"`

	// Checksum is the SHA-256 of the uncompressed payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed payload size.
	SizeBytes int64 `json:"size_bytes"`

	TrainingDurationMS int64 `json:"training_duration_ms"`
}

// Store persists versioned models.
type Store interface {
	// Save writes data as the given version.
	Save(ctx context.Context, name string, version int, data any, meta ModelMetadata) error

	// Load decodes a version into target. Version 0 loads the latest.
	Load(ctx context.Context, name string, version int, target any) (*ModelMetadata, error)

	// LatestVersion reports the highest stored version for name.
	LatestVersion(name string) (int, bool)

	// List returns metadata for the latest version of every name.
	List(ctx context.Context) ([]ModelMetadata, error)

	// Delete removes one version.
	Delete(ctx context.Context, name string, version int) error

	// Prune keeps the newest keepVersions versions of name.
	Prune(ctx context.Context, name string, keepVersions int) error

	Close() error
}

// Open returns the named backend rooted at dir. The badger backend keeps its
// files in dir/badger so dir can also hold model_metadata.json.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendBadger:
		return NewBadgerStore(filepath.Join(dir, "badger"))
	default:
		return nil, fmt.Errorf("unknown model store backend %q", backend)
	}
}

// record is the encoded form shared by every backend.
type record struct {
	Metadata       ModelMetadata
	CompressedData []byte
}

// encodeRecord serializes data with metadata. meta is completed with the
// checksum, size, name, version and save time.
//
//nolint:gocritic // meta passed by value so callers keep their copy
func encodeRecord(name string, version int, data any, meta ModelMetadata) ([]byte, ModelMetadata, error) {
	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(data); err != nil {
		return nil, meta, fmt.Errorf("encode model: %w", err)
	}

	hash := sha256.Sum256(raw.Bytes())
	meta.Checksum = hex.EncodeToString(hash[:])

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(raw.Bytes()); err != nil {
		return nil, meta, fmt.Errorf("compress model: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return nil, meta, fmt.Errorf("finalize compression: %w", err)
	}

	meta.SizeBytes = int64(compressed.Len())
	meta.SavedAt = time.Now().UTC()
	meta.Name = name
	meta.Version = version

	var out bytes.Buffer
	if err := gob.NewEncoder(&out).Encode(record{Metadata: meta, CompressedData: compressed.Bytes()}); err != nil {
		return nil, meta, fmt.Errorf("write model record: %w", err)
	}
	return out.Bytes(), meta, nil
}

// decodeMetadata reads only the record header.
func decodeMetadata(r io.Reader) (*ModelMetadata, error) {
	var rec record
	if err := gob.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("read model record: %w", err)
	}
	return &rec.Metadata, nil
}

// decodeRecord verifies and decodes a record into target.
func decodeRecord(r io.Reader, target any) (*ModelMetadata, error) {
	var rec record
	if err := gob.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("read model record: %w", err)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(rec.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("decompress model: %w", err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // close after full read is not actionable

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed data: %w", err)
	}

	hash := sha256.Sum256(raw)
	if sum := hex.EncodeToString(hash[:]); sum != rec.Metadata.Checksum {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, rec.Metadata.Checksum, sum)
	}

	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(target); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return &rec.Metadata, nil
}
