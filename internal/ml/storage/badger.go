// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

const badgerKeyPrefix = "model/"

// BadgerStore keeps model versions in a BadgerDB keyspace.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool

	mu       sync.RWMutex
	versions map[string]int
}

// NewBadgerStore opens a BadgerDB at dir.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger model store: %w", err)
	}
	s, err := NewBadgerStoreFromDB(db)
	if err != nil {
		_ = db.Close() //nolint:errcheck // already failing
		return nil, err
	}
	s.ownsDB = true
	return s, nil
}

// NewBadgerStoreFromDB wraps an already open database. Close leaves db open.
func NewBadgerStoreFromDB(db *badger.DB) (*BadgerStore, error) {
	s := &BadgerStore{db: db, versions: make(map[string]int)}
	all, err := s.scan("")
	if err != nil {
		return nil, fmt.Errorf("scan existing models: %w", err)
	}
	for name, versions := range all {
		s.versions[name] = slices.Max(versions)
	}
	return s, nil
}

func badgerKey(name string, version int) []byte {
	return []byte(fmt.Sprintf("%s%s/%010d", badgerKeyPrefix, name, version))
}

func parseBadgerKey(key []byte) (string, int, bool) {
	rest := strings.TrimPrefix(string(key), badgerKeyPrefix)
	i := strings.LastIndexByte(rest, '/')
	if i <= 0 {
		return "", 0, false
	}
	v, err := strconv.Atoi(rest[i+1:])
	if err != nil {
		return "", 0, false
	}
	return rest[:i], v, true
}

// scan lists versions per name, restricted to name when non-empty.
func (s *BadgerStore) scan(name string) (map[string][]int, error) {
	prefix := []byte(badgerKeyPrefix)
	if name != "" {
		prefix = []byte(badgerKeyPrefix + name + "/")
	}
	out := make(map[string][]int)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n, v, ok := parseBadgerKey(it.Item().Key())
			if ok {
				out[n] = append(out[n], v)
			}
		}
		return nil
	})
	return out, err
}

// Save implements Store.
//
//nolint:gocritic // meta passed by value is acceptable for this write operation
func (s *BadgerStore) Save(ctx context.Context, name string, version int, data any, meta ModelMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf, _, err := encodeRecord(name, version, data, meta)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(name, version), buf)
	}); err != nil {
		return fmt.Errorf("write model record: %w", err)
	}
	if current, ok := s.versions[name]; !ok || version > current {
		s.versions[name] = version
	}
	return nil
}

func (s *BadgerStore) get(name string, version int) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(name, version))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
	}
	return val, err
}

// Load implements Store.
func (s *BadgerStore) Load(ctx context.Context, name string, version int, target any) (*ModelMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if version == 0 {
		var ok bool
		if version, ok = s.versions[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
		}
	}
	val, err := s.get(name, version)
	if err != nil {
		return nil, err
	}
	return decodeRecord(bytes.NewReader(val), target)
}

// LatestVersion implements Store.
func (s *BadgerStore) LatestVersion(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.versions[name]
	return v, ok
}

// List implements Store.
func (s *BadgerStore) List(ctx context.Context) ([]ModelMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ModelMetadata, 0, len(s.versions))
	for name, version := range s.versions {
		val, err := s.get(name, version)
		if err != nil {
			continue
		}
		meta, err := decodeMetadata(bytes.NewReader(val))
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}
	slices.SortFunc(out, func(a, b ModelMetadata) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// Delete implements Store.
func (s *BadgerStore) Delete(ctx context.Context, name string, version int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(name, version); err != nil {
		return err
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerKey(name, version))
	}); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	if s.versions[name] != version {
		return nil
	}
	remaining, err := s.scan(name)
	if err != nil {
		return fmt.Errorf("scan models: %w", err)
	}
	if vs := remaining[name]; len(vs) > 0 {
		s.versions[name] = slices.Max(vs)
	} else {
		delete(s.versions, name)
	}
	return nil
}

// Prune implements Store.
func (s *BadgerStore) Prune(ctx context.Context, name string, keepVersions int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keepVersions = max(keepVersions, 1)
	all, err := s.scan(name)
	if err != nil {
		return fmt.Errorf("scan models: %w", err)
	}
	versions := all[name]
	slices.Sort(versions)
	slices.Reverse(versions)
	stale := versions[min(keepVersions, len(versions)):]
	if len(stale) == 0 {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, v := range stale {
			if err := txn.Delete(badgerKey(name, v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
