package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/torrench"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ torrench.HistoryService = (*HistoryService)(nil)

// HistoryService implements torrench.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateSearch records a search.
func (s *HistoryService) CreateSearch(ctx context.Context, search *torrench.SearchRecord) error {
	if err := search.Validate(); err != nil {
		return err
	}

	search.ID = uuid.New().String()
	search.SearchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, query, category, results, searched_at)
		VALUES (?, ?, ?, ?, ?)
	`, search.ID, search.Query, search.Category, search.Results, search.SearchedAt.Format(timeFormat))

	return err
}

// FindSearches returns recorded searches, newest first.
func (s *HistoryService) FindSearches(ctx context.Context, filter torrench.HistoryFilter) ([]*torrench.SearchRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, category, results, searched_at FROM searches WHERE 1=1")

	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}

	query.WriteString(" ORDER BY searched_at DESC, rowid DESC")
	args = appendPaging(&query, args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*torrench.SearchRecord
	for rows.Next() {
		var search torrench.SearchRecord
		var searchedAt string

		if err := rows.Scan(&search.ID, &search.Query, &search.Category, &search.Results, &searchedAt); err != nil {
			return nil, err
		}
		if search.SearchedAt, err = parseTime("searched_at", searchedAt); err != nil {
			return nil, err
		}

		searches = append(searches, &search)
	}

	return searches, rows.Err()
}

// CreateDownload records a download.
func (s *HistoryService) CreateDownload(ctx context.Context, download *torrench.Download) error {
	if err := download.Validate(); err != nil {
		return err
	}

	if download.ID == "" {
		download.ID = uuid.New().String()
	}
	if download.DownloadedAt.IsZero() {
		download.DownloadedAt = time.Now()
	}
	download.DownloadedAt = download.DownloadedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO downloads (id, name, source_url, file_path, info_hash, content_hash, size, length, files, downloaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, download.ID, download.Name, download.SourceURL, download.FilePath, download.InfoHash,
		download.ContentHash, download.Size, download.Length, download.Files, download.DownloadedAt.Format(timeFormat))

	return err
}

const downloadColumns = "id, name, source_url, file_path, info_hash, content_hash, size, length, files, downloaded_at"

// FindDownloadByID retrieves a download by ID.
func (s *HistoryService) FindDownloadByID(ctx context.Context, id string) (*torrench.Download, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+downloadColumns+" FROM downloads WHERE id = ?", id)

	download, err := scanDownload(row)
	if err == sql.ErrNoRows {
		return nil, torrench.Errorf(torrench.ENOTFOUND, "download not found")
	}
	if err != nil {
		return nil, err
	}
	return download, nil
}

// FindDownloads returns recorded downloads, newest first.
func (s *HistoryService) FindDownloads(ctx context.Context, filter torrench.HistoryFilter) ([]*torrench.Download, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + downloadColumns + " FROM downloads WHERE 1=1")

	if filter.Query != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Query)
	}

	query.WriteString(" ORDER BY downloaded_at DESC, rowid DESC")
	args = appendPaging(&query, args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downloads []*torrench.Download
	for rows.Next() {
		download, err := scanDownload(rows)
		if err != nil {
			return nil, err
		}
		downloads = append(downloads, download)
	}

	return downloads, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDownload(row scanner) (*torrench.Download, error) {
	var d torrench.Download
	var downloadedAt string

	if err := row.Scan(&d.ID, &d.Name, &d.SourceURL, &d.FilePath, &d.InfoHash,
		&d.ContentHash, &d.Size, &d.Length, &d.Files, &downloadedAt); err != nil {
		return nil, err
	}

	var err error
	if d.DownloadedAt, err = parseTime("downloaded_at", downloadedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
