package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/torrench"
	"github.com/fwojciec/torrench/search"
)

const (
	categoryPrompt = "Select category: "
	indexPrompt    = "(q = exit) Index> "
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()
	p := newPrompter(ctx, deps.Stdin, deps.Stdout)

	category, err := c.category(deps, p)
	if err != nil {
		if torrench.ErrorCode(err) == torrench.EINVALID || torrench.ErrorCode(err) == torrench.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", torrench.ErrorMessage(err))
		}
		return err
	}

	q := torrench.SearchQuery{
		Query:    strings.Join(c.Query, " "),
		Category: category,
		Page:     c.Page,
	}

	rs, err := deps.Searcher.Search(deps.Ctx, q)
	switch torrench.ErrorCode(err) {
	case "":
	case torrench.ENORESULTS:
		c.record(deps, q, 0)
		fmt.Fprintln(deps.Stdout, "No results were found for the given query.")
		return nil
	case torrench.EMALFORMED:
		deps.Logger.Error("search", "query", q.Query, "category", q.Category.Code, "err", err)
		fmt.Fprintln(deps.Stdout, "Something went wrong. Logging and terminating.")
		return err
	case torrench.EINVALID:
		fmt.Fprintf(deps.Stderr, "error: %s\n", torrench.ErrorMessage(err))
		return err
	default:
		return err
	}
	c.record(deps, q, rs.Len())

	fmt.Fprint(deps.Stdout, torrench.FormatResults(rs.Listings))

	return selectLoop(deps, p, rs)
}

// category resolves the --category flag, or prompts for an index.
// Blank input and closed input are both invalid.
func (c *SearchCmd) category(deps *Dependencies, p *prompter) (torrench.Category, error) {
	if c.Category != "" {
		return torrench.CategoryByName(c.Category)
	}

	fmt.Fprint(deps.Stdout, torrench.FormatCategories())
	input, err := p.Prompt(deps.Ctx, categoryPrompt)
	if errors.Is(err, io.EOF) {
		return torrench.Category{}, torrench.Errorf(torrench.EINVALID, "no category selected")
	}
	if err != nil {
		return torrench.Category{}, err
	}
	return torrench.SelectCategory(input)
}

// record stores the search in history. Failures are logged, not returned.
func (c *SearchCmd) record(deps *Dependencies, q torrench.SearchQuery, results int) {
	if deps.History == nil {
		return
	}
	rec := &torrench.SearchRecord{
		Query:    q.Query,
		Category: q.Category.Code,
		Results:  results,
	}
	if err := deps.History.CreateSearch(deps.Ctx, rec); err != nil {
		deps.Logger.Warn("record search", "query", q.Query, "err", err)
	}
}

// selectLoop prompts for listing indexes and downloads each selection until
// the user quits or input ends.
func selectLoop(deps *Dependencies, p *prompter, rs *torrench.ResultSet) error {
	for {
		input, err := p.Prompt(deps.Ctx, indexPrompt)
		if errors.Is(err, io.EOF) || (err == nil && strings.EqualFold(input, "q")) {
			fmt.Fprintln(deps.Stdout, "Bye!")
			return nil
		}
		if err != nil {
			return err
		}

		listing, err := rs.SelectInput(input)
		if err != nil {
			fmt.Fprintln(deps.Stdout, "Invalid index.")
			continue
		}

		fmt.Fprintf(deps.Stdout, "Downloading: %s\n", listing.Name)
		download, err := deps.Downloader.Download(deps.Ctx, listing)
		if err != nil {
			if deps.Ctx.Err() != nil {
				return deps.Ctx.Err()
			}
			deps.Logger.Error("download", "url", listing.DownloadURL, "err", err)
			fmt.Fprintf(deps.Stdout, "Download failed: %s\n", torrench.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "Saved: %s (%s, %s)\n", download.FilePath,
			search.FormatBytes(download.Length), fileCount(download.Files))
	}
}

func fileCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
