package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/utils"
)

func periodLabel(rng *ReportRange) string {
	switch {
	case rng.StartDate != "" && rng.EndDate != "":
		return fmt.Sprintf("%s s/d %s", rng.StartDate, rng.EndDate)
	case rng.StartDate != "":
		return fmt.Sprintf("mulai %s", rng.StartDate)
	case rng.EndDate != "":
		return fmt.Sprintf("sampai %s", rng.EndDate)
	default:
		return "semua waktu"
	}
}

func variantLabel(row repository.VariantPerformance) string {
	if row.VariantName == nil || *row.VariantName == "" {
		return "-"
	}
	return *row.VariantName
}

// BuildReportCSV renders a report as CSV. The summary block always comes
// first; the variant section is appended when rows are present.
func BuildReportCSV(summary *repository.ReportSummary, rows []repository.VariantPerformance, rng *ReportRange) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Laporan Pre-Order"},
		{"Periode", periodLabel(rng)},
		{},
		{"Ringkasan"},
		{"Total Pesanan", strconv.Itoa(summary.TotalOrders)},
		{"Total Pendapatan", utils.FormatIDR(summary.TotalRevenue)},
		{"Item Terjual", strconv.Itoa(summary.ItemsSold)},
	}

	if len(rows) > 0 {
		records = append(records, []string{}, []string{"Performa Varian"},
			[]string{"Produk", "Varian", "Jumlah Terjual"})
		for _, row := range rows {
			records = append(records, []string{
				row.ProductName,
				variantLabel(row),
				strconv.Itoa(row.QtySold),
			})
		}
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReportPDF renders a report as an A4 PDF with the same layout the
// dashboard shows: title, period, summary block, then the variant table.
func BuildReportPDF(summary *repository.ReportSummary, rows []repository.VariantPerformance, rng *ReportRange) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Laporan Pre-Order", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Periode: %s", periodLabel(rng)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Ringkasan", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	summaryRows := [][2]string{
		{"Total Pesanan", strconv.Itoa(summary.TotalOrders)},
		{"Total Pendapatan", utils.FormatIDR(summary.TotalRevenue)},
		{"Item Terjual", strconv.Itoa(summary.ItemsSold)},
	}
	for _, row := range summaryRows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "R", false, 0, "")
	}

	if len(rows) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Performa Varian", "", 1, "L", false, 0, "")

		writeHeader := func() {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(80, 7, "Produk", "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, "Varian", "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, "Jumlah Terjual", "1", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
		writeHeader()

		for _, row := range rows {
			if pdf.GetY() > 270 {
				pdf.AddPage()
				writeHeader()
			}
			pdf.CellFormat(80, 7, row.ProductName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, variantLabel(row), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, strconv.Itoa(row.QtySold), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
