// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/thejerf/suture/v4"
	"go.uber.org/goleak"

	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
)

var _ suture.Service = (*ModelReloadService)(nil)

// fakeStore serves a configurable latest version. Only the methods the
// reload service calls do anything.
type fakeStore struct {
	storage.Store

	mu      sync.Mutex
	latest  int
	loadErr error
	loads   int
}

func (f *fakeStore) LatestVersion(string) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.latest > 0
}

func (f *fakeStore) Load(_ context.Context, _ string, version int, target any) (*storage.ModelMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	target.(*ml.Bundle).Version = version
	return &storage.ModelMetadata{Version: version}, nil
}

func (f *fakeStore) setLatest(v int) {
	f.mu.Lock()
	f.latest = v
	f.mu.Unlock()
}

type fakeLoader struct {
	mu      sync.Mutex
	version int
	err     error
}

func (f *fakeLoader) Load(b *ml.Bundle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.version = b.Version
	return nil
}

func (f *fakeLoader) Version() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version
}

func TestModelReloadService_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		svc := NewModelReloadService(&fakeStore{}, &fakeLoader{}, ReloadConfig{}, zerolog.Nop())
		if got := svc.Reload(ctx); got != ReloadMissing {
			t.Errorf("Reload() = %q, want %q", got, ReloadMissing)
		}
	})

	t.Run("loads newer then reports unchanged", func(t *testing.T) {
		store := &fakeStore{latest: 2}
		loader := &fakeLoader{version: 1}
		svc := NewModelReloadService(store, loader, ReloadConfig{}, zerolog.Nop())

		if got := svc.Reload(ctx); got != ReloadLoaded {
			t.Fatalf("Reload() = %q, want %q", got, ReloadLoaded)
		}
		if loader.Version() != 2 {
			t.Errorf("loaded version = %d, want 2", loader.Version())
		}
		if got := svc.Reload(ctx); got != ReloadUnchanged {
			t.Errorf("second Reload() = %q, want %q", got, ReloadUnchanged)
		}
		if store.loads != 1 {
			t.Errorf("store loads = %d, want 1", store.loads)
		}
	})

	t.Run("rejected bundle keeps current", func(t *testing.T) {
		loader := &fakeLoader{version: 1, err: errors.New("bundle has no outcome model")}
		svc := NewModelReloadService(&fakeStore{latest: 2}, loader, ReloadConfig{}, zerolog.Nop())

		if got := svc.Reload(ctx); got != ReloadRejected {
			t.Errorf("Reload() = %q, want %q", got, ReloadRejected)
		}
		if loader.Version() != 1 {
			t.Errorf("version = %d, want 1", loader.Version())
		}
	})
}

func TestModelReloadService_BreakerOpensOnStoreFailures(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{latest: 1, loadErr: errors.New("badger: corrupted value log")}
	svc := NewModelReloadService(store, &fakeLoader{}, ReloadConfig{
		BreakerFailures: 2,
		BreakerTimeout:  time.Hour,
	}, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if got := svc.Reload(ctx); got != ReloadFailed {
			t.Fatalf("attempt %d: Reload() = %q, want %q", i, got, ReloadFailed)
		}
	}
	if svc.BreakerState() != gobreaker.StateOpen {
		t.Fatalf("breaker state = %v, want open", svc.BreakerState())
	}

	// Open breaker short-circuits without touching the store.
	if got := svc.Reload(ctx); got != ReloadFailed {
		t.Errorf("Reload() = %q, want %q", got, ReloadFailed)
	}
	if store.loads != 2 {
		t.Errorf("store loads = %d, want 2", store.loads)
	}
}

func TestModelReloadService_Serve(t *testing.T) {
	t.Run("zero interval loads once and stops", func(t *testing.T) {
		loader := &fakeLoader{}
		svc := NewModelReloadService(&fakeStore{latest: 1}, loader, ReloadConfig{}, zerolog.Nop())

		if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("Serve() = %v, want ErrDoNotRestart", err)
		}
		if loader.Version() != 1 {
			t.Errorf("version = %d, want 1", loader.Version())
		}
	})

	t.Run("polls for newer versions", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		store := &fakeStore{latest: 1}
		loader := &fakeLoader{}
		svc := NewModelReloadService(store, loader, ReloadConfig{Interval: 10 * time.Millisecond}, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- svc.Serve(ctx) }()

		waitVersion(t, loader, 1)
		store.setLatest(3)
		waitVersion(t, loader, 3)

		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	})
}

func waitVersion(t *testing.T, loader *fakeLoader, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for loader.Version() != want {
		if time.Now().After(deadline) {
			t.Fatalf("version = %d, want %d", loader.Version(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
