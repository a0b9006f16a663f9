/*
Copyright 2025 The JWST Datamodels Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package datamodel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
)

const (
	// DefaultLockTimeout bounds how long Save waits for the file lock.
	DefaultLockTimeout = 10 * time.Second

	lockRetryDelay = 50 * time.Millisecond
)

// ErrLocked is returned when another writer holds the file lock past the
// lock timeout.
var ErrLocked = errors.New("reference file is locked by another writer")

// FileStore reads and writes model documents on the local filesystem.
type FileStore struct {
	codec       *Codec
	lockTimeout time.Duration
}

// NewFileStore returns a store writing documents in format. A non-positive
// lockTimeout selects DefaultLockTimeout.
func NewFileStore(format Format, lockTimeout time.Duration) *FileStore {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &FileStore{codec: NewCodec(format), lockTimeout: lockTimeout}
}

var defaultStore = NewFileStore(FormatYAML, DefaultLockTimeout)

// Open reads a model document with the default store.
func Open(path string) (Model, error) {
	return defaultStore.Open(path)
}

// Open reads, decodes and validates the model document at path. The model is
// returned as written; DQ masks are not rederived.
func (s *FileStore) Open(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	m, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save validates m and writes it to path. Concurrent writers are serialized
// through an advisory lock on path+".lock"; the document is replaced
// atomically.
func (s *FileStore) Save(ctx context.Context, path string, m Model) error {
	logger := ctrl.LoggerFrom(ctx)

	if err := Validate(m); err != nil {
		return err
	}
	data, err := s.codec.Encode(m)
	if err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()
	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", ErrLocked, path)
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Error(err, "Failed to release reference file lock", "path", path)
		}
	}()

	if err := writeAtomic(path, data); err != nil {
		return err
	}

	logger.V(logging.DEBUG).Info("Saved reference file",
		"path", path,
		"schema", m.SchemaID(),
		"format", s.codec.Format(),
		"bytes", len(data))
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
