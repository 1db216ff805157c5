package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRangeParseRejectsBadDates(t *testing.T) {
	var verrs ValidationErrors

	_, _, err := (&ReportRange{StartDate: "not-a-date"}).parse()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "start_date")

	_, _, err = (&ReportRange{EndDate: "31-12-2026"}).parse()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "end_date")

	_, _, err = (&ReportRange{StartDate: "2026-02-01", EndDate: "2026-01-01"}).parse()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "end_date")
}

func TestReportRangeParseOpenEnds(t *testing.T) {
	start, end, err := (&ReportRange{}).parse()
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)

	start, end, err = (&ReportRange{StartDate: "2026-01-01"}).parse()
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Nil(t, end)
}

func TestByVariantRejectsBadRange(t *testing.T) {
	svc := &ReportService{}

	rows, err := svc.ByVariant(context.Background(), &ReportRange{StartDate: "nope"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Nil(t, rows)
}

func TestExportRejectsUnknownTypeAndFormat(t *testing.T) {
	svc := &ReportService{}
	ctx := context.Background()

	var verrs ValidationErrors

	_, err := svc.Export(ctx, &ReportRange{}, ExportType("weekly"), ExportFormatCSV)
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "type")

	_, err = svc.Export(ctx, &ReportRange{}, ExportTypeSummary, ExportFormat("xlsx"))
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "format")
}
