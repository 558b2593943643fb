package mock

import (
	"context"

	"github.com/fwojciec/torrench"
)

var _ torrench.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of torrench.HistoryService.
type HistoryService struct {
	CreateSearchFn     func(ctx context.Context, search *torrench.SearchRecord) error
	FindSearchesFn     func(ctx context.Context, filter torrench.HistoryFilter) ([]*torrench.SearchRecord, error)
	CreateDownloadFn   func(ctx context.Context, download *torrench.Download) error
	FindDownloadByIDFn func(ctx context.Context, id string) (*torrench.Download, error)
	FindDownloadsFn    func(ctx context.Context, filter torrench.HistoryFilter) ([]*torrench.Download, error)
}

func (s *HistoryService) CreateSearch(ctx context.Context, search *torrench.SearchRecord) error {
	return s.CreateSearchFn(ctx, search)
}

func (s *HistoryService) FindSearches(ctx context.Context, filter torrench.HistoryFilter) ([]*torrench.SearchRecord, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *HistoryService) CreateDownload(ctx context.Context, download *torrench.Download) error {
	return s.CreateDownloadFn(ctx, download)
}

func (s *HistoryService) FindDownloadByID(ctx context.Context, id string) (*torrench.Download, error) {
	return s.FindDownloadByIDFn(ctx, id)
}

func (s *HistoryService) FindDownloads(ctx context.Context, filter torrench.HistoryFilter) ([]*torrench.Download, error) {
	return s.FindDownloadsFn(ctx, filter)
}
