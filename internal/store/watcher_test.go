// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/snap-desk/internal/logger"
	"github.com/MKhiriev/snap-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, file string, onChange func()) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(file, 50*time.Millisecond, onChange, logger.Nop())

	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	// let the watch be established before the test writes
	time.Sleep(100 * time.Millisecond)
	return cancel, errc
}

func TestWatcher_ReportsAtomicSave(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileProfileRepository(dir, logger.Nop())

	changed := make(chan struct{}, 10)
	cancel, done := startWatcher(t, repo.Path(), func() { changed <- struct{}{} })
	defer cancel()

	require.NoError(t, repo.Save(context.Background(), models.Config{}))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ConfigFileName)

	var calls atomic.Int32
	cancel, _ := startWatcher(t, file, func() { calls.Add(1) })
	defer cancel()

	for i := range 5 {
		require.NoError(t, os.WriteFile(file, []byte{byte('0' + i)}, 0o600))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	cancel, _ := startWatcher(t, filepath.Join(dir, ConfigFileName), func() { calls.Add(1) })
	defer cancel()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "absent", ConfigFileName), 0, func() {}, logger.Nop())

	err := w.Run(context.Background())

	assert.Error(t, err)
}
