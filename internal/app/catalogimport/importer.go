package catalogimport

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

type catalogImporter interface {
	ImportItems(ctx context.Context, entries []domain.CatalogEntry, replace bool) (int, error)
}

// Options controls a single import run.
type Options struct {
	Path    string
	Replace bool // delete existing rows first
	DryRun  bool // parse and report only
}

// Result summarises an import run.
type Result struct {
	Parsed  int
	Written int
	Skipped int
	Issues  []Issue
}

// Importer reads a CSV file and hands the entries to the catalog service.
type Importer struct {
	log     *slog.Logger
	catalog catalogImporter
}

// NewImporter creates an Importer.
func NewImporter(log *slog.Logger, catalog catalogImporter) *Importer {
	return &Importer{log: log.With("component", "catalog_import"), catalog: catalog}
}

// Run imports the file named by opts.Path.
func (im *Importer) Run(ctx context.Context, opts Options) (*Result, error) {
	f, err := os.Open(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.Path, err)
	}

	for _, issue := range parsed.Issues {
		im.log.WarnContext(ctx, "cell coerced to zero", slog.String("issue", issue.String()))
	}

	res := &Result{
		Parsed:  len(parsed.Entries),
		Skipped: parsed.Skipped,
		Issues:  parsed.Issues,
	}

	if opts.DryRun {
		im.log.InfoContext(ctx, "dry run, nothing written", slog.Int("parsed", res.Parsed))
		return res, nil
	}

	written, err := im.catalog.ImportItems(ctx, parsed.Entries, opts.Replace)
	if err != nil {
		return nil, err
	}
	res.Written = written
	return res, nil
}
