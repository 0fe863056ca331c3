package newsint

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeError records one failed address within a run.
type ScrapeError struct {
	URL       string    `json:"url"`
	Message   string    `json:"error"`
	Kind      string    `json:"error_type"`
	Timestamp time.Time `json:"timestamp"`
}

// RunStats holds counters for one scraping run. It has single-writer
// semantics: exactly one orchestrating goroutine mutates it, and it must
// not be shared across address-processing tasks without external
// synchronization.
type RunStats struct {
	RunID              string        `json:"run_id"`
	TotalRequests      int           `json:"total_requests"`
	SuccessfulRequests int           `json:"successful_requests"`
	FailedRequests     int           `json:"failed_requests"`
	TotalArticles      int           `json:"total_articles"`
	StartTime          time.Time     `json:"start_time"`
	EndTime            time.Time     `json:"end_time"`
	Errors             []ScrapeError `json:"errors"`
}

// NewRunStats starts counters for a new run with a fresh run identifier.
func NewRunStats() RunStats {
	return RunStats{
		RunID:     uuid.NewString(),
		StartTime: time.Now().UTC(),
		Errors:    []ScrapeError{},
	}
}

// RecordFailure appends an error record and bumps the failure counter.
func (s *RunStats) RecordFailure(url string, err error) {
	s.FailedRequests++
	s.Errors = append(s.Errors, ScrapeError{
		URL:       url,
		Message:   ErrorMessage(err),
		Kind:      ErrorCode(err),
		Timestamp: time.Now().UTC(),
	})
}

// SuccessRate returns successful requests as a fraction of total requests,
// or 0 for an empty run.
func (s *RunStats) SuccessRate() float64 {
	if s.TotalRequests == 0 {
		return 0
	}
	return float64(s.SuccessfulRequests) / float64(s.TotalRequests)
}

// ReportMetadata describes a finished run in the exported document.
type ReportMetadata struct {
	ScrapingTimestamp time.Time `json:"scraping_timestamp"`
	TotalArticles     int       `json:"total_articles"`
	Stats             RunStats  `json:"scraping_stats"`
}

// Report is the persisted output document: run metadata plus the full
// article records, serialized verbatim.
type Report struct {
	Metadata ReportMetadata `json:"metadata"`
	Articles []*Article     `json:"articles"`
}

// NewReport assembles the export document for a finished run.
func NewReport(articles []*Article, stats RunStats) *Report {
	if articles == nil {
		articles = []*Article{}
	}
	return &Report{
		Metadata: ReportMetadata{
			ScrapingTimestamp: time.Now().UTC(),
			TotalArticles:     len(articles),
			Stats:             stats,
		},
		Articles: articles,
	}
}
