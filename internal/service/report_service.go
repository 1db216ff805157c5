package service

import (
	"context"
	"fmt"
	"time"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/repository"
)

// ReportService computes sales reports over a date range and renders their
// CSV/PDF exports.
type ReportService struct {
	reportRepo *repository.ReportRepository
	storeCache *cache.StoreCache
}

// NewReportService constructs a ReportService.
func NewReportService(reportRepo *repository.ReportRepository, storeCache *cache.StoreCache) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		storeCache: storeCache,
	}
}

// ReportRange is an optional inclusive date range, YYYY-MM-DD on both ends.
type ReportRange struct {
	StartDate string
	EndDate   string
}

func (r *ReportRange) parse() (start, end *time.Time, err error) {
	if start, err = parseFilterDate(r.StartDate); err != nil {
		return nil, nil, ValidationErrors{"start_date": err.Error()}
	}
	if end, err = parseFilterDate(r.EndDate); err != nil {
		return nil, nil, ValidationErrors{"end_date": err.Error()}
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, ValidationErrors{"end_date": fmt.Sprintf("end_date %s is before start_date %s", r.EndDate, r.StartDate)}
	}
	return start, end, nil
}

// Summary returns the headline totals for the range.
func (s *ReportService) Summary(ctx context.Context, rng *ReportRange) (*repository.ReportSummary, error) {
	start, end, err := rng.parse()
	if err != nil {
		return nil, err
	}

	if s.storeCache != nil {
		var cached repository.ReportSummary
		if s.storeCache.GetReportSummary(ctx, rng.StartDate, rng.EndDate, &cached) {
			return &cached, nil
		}
	}

	summary, err := s.reportRepo.Summary(start, end)
	if err != nil {
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.SetReportSummary(ctx, rng.StartDate, rng.EndDate, summary)
	}
	return summary, nil
}

// ByVariant returns the per-variant sales breakdown for the range.
func (s *ReportService) ByVariant(ctx context.Context, rng *ReportRange) ([]repository.VariantPerformance, error) {
	start, end, err := rng.parse()
	if err != nil {
		return nil, err
	}

	if s.storeCache != nil {
		var cached []repository.VariantPerformance
		if s.storeCache.GetReportByVariant(ctx, rng.StartDate, rng.EndDate, &cached) {
			return cached, nil
		}
	}

	rows, err := s.reportRepo.ByVariant(start, end)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.VariantPerformance{}
	}
	if s.storeCache != nil {
		s.storeCache.SetReportByVariant(ctx, rng.StartDate, rng.EndDate, rows)
	}
	return rows, nil
}

// ExportType selects which report an export covers.
type ExportType string

// ExportFormat selects the file format of an export.
type ExportFormat string

const (
	ExportTypeSummary   ExportType = "summary"
	ExportTypeByVariant ExportType = "by-variant"

	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult is a rendered report file.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders the requested report as a downloadable file.
func (s *ReportService) Export(ctx context.Context, rng *ReportRange, typ ExportType, format ExportFormat) (*ExportResult, error) {
	if typ != ExportTypeSummary && typ != ExportTypeByVariant {
		return nil, ValidationErrors{"type": fmt.Sprintf("invalid export type %q", typ)}
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, ValidationErrors{"format": fmt.Sprintf("invalid export format %q", format)}
	}

	summary, err := s.Summary(ctx, rng)
	if err != nil {
		return nil, err
	}

	var rows []repository.VariantPerformance
	if typ == ExportTypeByVariant {
		if rows, err = s.ByVariant(ctx, rng); err != nil {
			return nil, err
		}
	}

	stamp := time.Now().Format("20060102")
	switch format {
	case ExportFormatCSV:
		data, err := BuildReportCSV(summary, rows, rng)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("laporan-%s-%s.csv", typ, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	default:
		data, err := BuildReportPDF(summary, rows, rng)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("laporan-%s-%s.pdf", typ, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}
}
