package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/torrench"
	"github.com/fwojciec/torrench/search"
)

const (
	historyTimeFormat = "2006-01-02 15:04"
	historyNameWidth  = 60
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		return fmt.Errorf("history is disabled")
	}

	filter := torrench.HistoryFilter{Limit: c.Limit}
	if c.Query != "" {
		filter.Query = &c.Query
	}

	if c.ID != "" {
		return c.download(deps)
	}
	if c.Downloads {
		return c.downloads(deps, filter)
	}
	return c.searches(deps, filter)
}

func (c *HistoryCmd) searches(deps *Dependencies, filter torrench.HistoryFilter) error {
	searches, err := deps.History.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", torrench.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded. Use 'torrench search' to run one.")
		return nil
	}

	for _, s := range searches {
		fmt.Fprintf(deps.Stdout, "%s  %s  %3d  %s\n",
			s.SearchedAt.In(time.Local).Format(historyTimeFormat), s.Category, s.Results,
			search.TruncateName(s.Query, historyNameWidth))
	}
	return nil
}

func (c *HistoryCmd) downloads(deps *Dependencies, filter torrench.HistoryFilter) error {
	downloads, err := deps.History.FindDownloads(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", torrench.ErrorMessage(err))
		return err
	}

	if len(downloads) == 0 {
		fmt.Fprintln(deps.Stdout, "No downloads recorded.")
		return nil
	}

	for _, d := range downloads {
		fmt.Fprintf(deps.Stdout, "%s  %s  %9s  %s  %s\n",
			d.ID, d.DownloadedAt.In(time.Local).Format(historyTimeFormat), search.FormatBytes(d.Length),
			search.TruncateName(d.Name, historyNameWidth), d.FilePath)
	}
	return nil
}

func (c *HistoryCmd) download(deps *Dependencies) error {
	d, err := deps.History.FindDownloadByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", torrench.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Name:       %s\n", d.Name)
	fmt.Fprintf(deps.Stdout, "Source:     %s\n", d.SourceURL)
	fmt.Fprintf(deps.Stdout, "File:       %s (%s)\n", d.FilePath, search.FormatBytes(d.Size))
	fmt.Fprintf(deps.Stdout, "Content:    %s, %s\n", search.FormatBytes(d.Length), fileCount(d.Files))
	fmt.Fprintf(deps.Stdout, "Info hash:  %s\n", d.InfoHash)
	fmt.Fprintf(deps.Stdout, "Checksum:   %s\n", d.ContentHash)
	fmt.Fprintf(deps.Stdout, "Downloaded: %s\n", d.DownloadedAt.In(time.Local).Format(historyTimeFormat))
	return nil
}
