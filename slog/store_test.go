package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/torrench/mock"
	tslog "github.com/fwojciec/torrench/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("logs name, path and bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TorrentStore{
			SaveFn: func(_ context.Context, name string, _ []byte) (string, error) {
				return "/tmp/" + name, nil
			},
		}

		store := tslog.NewLoggingStore(inner, logger)
		path, err := store.Save(context.Background(), "show.torrent", []byte("d4:infodee"))

		require.NoError(t, err)
		assert.Equal(t, "/tmp/show.torrent", path)
		output := buf.String()
		assert.Contains(t, output, "msg=\"save torrent\"")
		assert.Contains(t, output, "name=show.torrent")
		assert.Contains(t, output, "path=/tmp/show.torrent")
		assert.Contains(t, output, "bytes=10")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TorrentStore{
			SaveFn: func(context.Context, string, []byte) (string, error) {
				return "", errors.New("permission denied")
			},
		}

		store := tslog.NewLoggingStore(inner, logger)
		_, err := store.Save(context.Background(), "show.torrent", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"permission denied\"")
	})
}
