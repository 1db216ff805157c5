package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpo/preorder_api/internal/repository"
)

func sampleReport() (*repository.ReportSummary, []repository.VariantPerformance) {
	summary := &repository.ReportSummary{
		TotalOrders:  12,
		TotalRevenue: 540000,
		ItemsSold:    31,
	}
	rows := []repository.VariantPerformance{
		{ProductName: "Nasi Ayam", VariantName: strPtr("Pedas"), QtySold: 18},
		{ProductName: "Nasi Ayam", VariantName: strPtr("Original"), QtySold: 9},
		{ProductName: "Topping", VariantName: nil, QtySold: 4},
	}
	return summary, rows
}

func TestBuildReportCSV(t *testing.T) {
	summary, rows := sampleReport()
	rng := &ReportRange{StartDate: "2026-08-01", EndDate: "2026-08-31"}

	data, err := BuildReportCSV(summary, rows, rng)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Laporan Pre-Order"}, records[0])
	assert.Equal(t, []string{"Periode", "2026-08-01 s/d 2026-08-31"}, records[1])
	assert.Contains(t, records, []string{"Ringkasan"})
	assert.Contains(t, records, []string{"Total Pesanan", "12"})
	assert.Contains(t, records, []string{"Total Pendapatan", "Rp 540.000"})
	assert.Contains(t, records, []string{"Performa Varian"})
	assert.Contains(t, records, []string{"Nasi Ayam", "Pedas", "18"})
	assert.Contains(t, records, []string{"Topping", "-", "4"})
}

func TestBuildReportCSVSummaryOnly(t *testing.T) {
	summary, _ := sampleReport()

	data, err := BuildReportCSV(summary, nil, &ReportRange{})
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Periode", "semua waktu"}, records[1])
	assert.NotContains(t, records, []string{"Performa Varian"})
}

func TestBuildReportPDF(t *testing.T) {
	summary, rows := sampleReport()

	data, err := BuildReportPDF(summary, rows, &ReportRange{StartDate: "2026-08-01"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildReportPDFManyRowsPaginates(t *testing.T) {
	summary, _ := sampleReport()
	rows := make([]repository.VariantPerformance, 80)
	for i := range rows {
		rows[i] = repository.VariantPerformance{ProductName: "Nasi Ayam", QtySold: i + 1}
	}

	data, err := BuildReportPDF(summary, rows, &ReportRange{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
