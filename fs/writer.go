// Package fs provides file-based storage for scraping reports.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/newsint"
)

// DefaultFilename returns the timestamped report filename used when the
// caller does not specify one, e.g. news_scraping_results_20260102_150405.json.
func DefaultFilename(now time.Time) string {
	return "news_scraping_results_" + now.Format("20060102_150405") + ".json"
}

// Ensure ReportWriter implements newsint.ArticleWriter at compile time.
var _ newsint.ArticleWriter = (*ReportWriter)(nil)

// ReportWriter writes scraping reports as indented JSON files with atomic
// update semantics. The report is written to a temporary file in the target
// directory and renamed into place, so readers never observe a partial file.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter that writes to the given path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Path returns the output path the report is written to.
func (w *ReportWriter) Path() string {
	return w.path
}

// WriteReport serializes the report to disk.
func (w *ReportWriter) WriteReport(ctx context.Context, report *newsint.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if report == nil {
		return newsint.Errorf(newsint.EINVALID, "report is required")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}
