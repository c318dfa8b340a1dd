// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
)

const fileExt = ".gob.gz"

// FileStore keeps one compressed file per model version.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex

	// latest version per name
	versions map[string]int
}

// NewFileStore creates dir if needed and indexes existing model files.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for model storage
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	s := &FileStore{
		baseDir:  baseDir,
		versions: make(map[string]int),
	}
	files, err := s.scan()
	if err != nil {
		return nil, fmt.Errorf("scan existing models: %w", err)
	}
	for name, versions := range files {
		s.versions[name] = slices.Max(versions)
	}
	return s, nil
}

// scan lists every stored version per name.
func (s *FileStore) scan() (map[string][]int, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]int)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		name, version, ok := parseModelFilename(strings.TrimSuffix(entry.Name(), fileExt))
		if !ok {
			continue
		}
		out[name] = append(out[name], version)
	}
	return out, nil
}

// parseModelFilename splits "airdefence_v12" into ("airdefence", 12).
func parseModelFilename(base string) (string, int, bool) {
	i := strings.LastIndex(base, "_v")
	if i <= 0 {
		return "", 0, false
	}
	v, err := strconv.Atoi(base[i+2:])
	if err != nil || v <= 0 {
		return "", 0, false
	}
	return base[:i], v, true
}

func (s *FileStore) modelPath(name string, version int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_v%d%s", name, version, fileExt))
}

// Save writes the version to a temp file and renames it into place.
//
//nolint:gocritic // meta passed by value is acceptable for this write operation
func (s *FileStore) Save(ctx context.Context, name string, version int, data any, meta ModelMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf, _, err := encodeRecord(name, version, data, meta)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.modelPath(name, version)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o640); err != nil { //nolint:gosec // path built from trusted name
		return fmt.Errorf("write model file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit model file: %w", err)
	}

	if current, ok := s.versions[name]; !ok || version > current {
		s.versions[name] = version
	}
	return nil
}

// Load decodes a version into target; version 0 means latest.
func (s *FileStore) Load(ctx context.Context, name string, version int, target any) (*ModelMetadata, error) {
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

	data, err := os.ReadFile(s.modelPath(name, version))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
	}
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	return decodeRecord(bytes.NewReader(data), target)
}

// LatestVersion implements Store. The directory is rescanned so versions
// saved by another process (the pipeline CLI) are picked up.
func (s *FileStore) LatestVersion(name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if files, err := s.scan(); err == nil {
		if versions := files[name]; len(versions) > 0 {
			s.versions[name] = slices.Max(versions)
		} else {
			delete(s.versions, name)
		}
	}
	v, ok := s.versions[name]
	return v, ok
}

// List implements Store.
func (s *FileStore) List(ctx context.Context) ([]ModelMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ModelMetadata, 0, len(s.versions))
	for name, version := range s.versions {
		f, err := os.Open(s.modelPath(name, version))
		if err != nil {
			continue
		}
		meta, err := decodeMetadata(f)
		_ = f.Close() //nolint:errcheck // read-only file
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}
	slices.SortFunc(out, func(a, b ModelMetadata) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, name string, version int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.modelPath(name, version)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
		}
		return fmt.Errorf("delete model: %w", err)
	}
	if s.versions[name] != version {
		return nil
	}

	files, err := s.scan()
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	if remaining := files[name]; len(remaining) > 0 {
		s.versions[name] = slices.Max(remaining)
	} else {
		delete(s.versions, name)
	}
	return nil
}

// Prune implements Store.
func (s *FileStore) Prune(ctx context.Context, name string, keepVersions int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keepVersions = max(keepVersions, 1)
	files, err := s.scan()
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	versions := files[name]
	slices.Sort(versions)
	slices.Reverse(versions)
	for _, v := range versions[min(keepVersions, len(versions)):] {
		_ = os.Remove(s.modelPath(name, v)) //nolint:errcheck // best-effort cleanup of old versions
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}
