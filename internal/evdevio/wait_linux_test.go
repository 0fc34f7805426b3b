//go:build linux

package evdevio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// findInDir reports dir/event0 as a keyboard once the file exists.
func findInDir(dir string, calls *atomic.Int32) func() (DeviceInfo, error) {
	return func() (DeviceInfo, error) {
		calls.Add(1)
		p := filepath.Join(dir, "event0")
		if _, err := os.Stat(p); err != nil {
			return SelectDevice(nil, DefaultMatch, DefaultSinkName)
		}
		return DeviceInfo{Path: p, Name: "USB Keyboard"}, nil
	}
}

func TestWaitForDeviceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := waitForDevice(ctx, t.TempDir(), findInDir(t.TempDir(), &calls), discard)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWaitForDeviceTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var calls atomic.Int32
	_, err := waitForDevice(ctx, t.TempDir(), findInDir(t.TempDir(), &calls), discard)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForDeviceAlreadyPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event0"), nil, 0o600))

	var calls atomic.Int32
	d, err := waitForDevice(context.Background(), dir, findInDir(dir, &calls), discard)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "event0"), d.Path)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWaitForDeviceAppears(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	type result struct {
		d   DeviceInfo
		err error
	}
	done := make(chan result, 1)
	go func() {
		d, err := waitForDevice(ctx, dir, findInDir(dir, &calls), discard)
		done <- result{d, err}
	}()

	// Wait until the initial scan has happened, so the watch is in place.
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event0"), nil, 0o600))

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, filepath.Join(dir, "event0"), r.d.Path)
	case <-ctx.Done():
		t.Fatal("device was not picked up")
	}
}

func TestWaitForDeviceMissingDir(t *testing.T) {
	var calls atomic.Int32
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := waitForDevice(context.Background(), dir, findInDir(dir, &calls), discard)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSourceNotFound))
	assert.Equal(t, int32(0), calls.Load())
}
