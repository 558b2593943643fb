package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/torrench"
	main "github.com/fwojciec/torrench/cmd/torrench"
	"github.com/fwojciec/torrench/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.DownloadsDir = t.TempDir()
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "categories", "history"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, strings.NewReader(""), stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_Categories(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"categories"}, strings.NewReader(""), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "[0] All categories  0_0")
	assert.Contains(t, stdout.String(), "[6] Software  6_0")
}

func TestMain_Run_History(t *testing.T) {
	t.Parallel()

	t.Run("creates the database directory", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.DBPath = filepath.Join(t.TempDir(), "state", "torrench", "history.db")
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"history"}, strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No searches recorded.")
		assert.FileExists(t, m.DBPath)
	})

	t.Run("categories leave the database path untouched", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.DBPath = filepath.Join(t.TempDir(), "state", "history.db")

		err := m.Run(context.Background(), []string{"categories"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Dir(m.DBPath))
	})
}

func TestMain_Run_Search(t *testing.T) {
	t.Parallel()

	t.Run("searches, lists and downloads the selected row", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var pageURL, torrentURL string
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if strings.Contains(url, "/download/") {
					torrentURL = url
					return torrentFile("Show - 02"), nil
				}
				pageURL = url
				return resultsPage("Show - 01", "Show - 02", "Show - 03"), nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		stdin := strings.NewReader("1\nq\n")

		err := m.Run(context.Background(),
			[]string{"--no-history", "search", "--category", "anime", "one", "piece"},
			stdin, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "https://nyaa.si/?f=0&c=1_0&q=one+piece", pageURL)
		assert.Equal(t, "https://nyaa.si/download/1002.torrent", torrentURL)

		output := stdout.String()
		for _, label := range []string{"--0--", "--1--", "--2--"} {
			assert.Contains(t, output, label)
		}
		assert.Contains(t, output, "Downloading: Show - 02")
		assert.Contains(t, output, "(1.0 KiB, 1 file)")
		assert.Contains(t, output, "Bye!")

		data, err := os.ReadFile(filepath.Join(m.DownloadsDir, "Show - 02.torrent"))
		require.NoError(t, err)
		assert.Equal(t, torrentFile("Show - 02"), string(data))
	})

	t.Run("prints no results message and succeeds", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return resultsPage(), nil
			},
		}

		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"--no-history", "search", "-c", "0_0", "nothing"},
			strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results were found for the given query.")
	})

	t.Run("rejects an invalid category selection", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("unexpected fetch")
				return "", nil
			},
		}

		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"--no-history", "search", "show"},
			strings.NewReader("9\n"), &bytes.Buffer{}, stderr)

		assert.Equal(t, torrench.EINVALID, torrench.ErrorCode(err))
		assert.Contains(t, stderr.String(), "out of range")
	})

	t.Run("records searches in history", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return resultsPage("Show - 01"), nil
			},
		}

		err := m.Run(context.Background(),
			[]string{"search", "-c", "anime", "show"},
			strings.NewReader("q\n"), &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		stdout := &bytes.Buffer{}
		err = m.Run(context.Background(), []string{"history"}, strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1_0")
		assert.Contains(t, stdout.String(), "show")
	})
}
