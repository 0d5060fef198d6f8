package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// BuildPDF renders the report as a single A4 document: a statistics table
// followed by a details table per included collection.
func BuildPDF(snap Snapshot, kind Kind) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "PMS Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Generated on: "+snap.GeneratedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if kind.includeLeads() {
		sectionTitle(pdf, "Lead Statistics")
		drawTable(pdf,
			[]string{"Status", "Count"},
			[]float64{60, 30},
			[][]string{
				{"Not Started", strconv.Itoa(snap.LeadStats.NotStarted)},
				{"In Progress", strconv.Itoa(snap.LeadStats.InProgress)},
				{"Complete", strconv.Itoa(snap.LeadStats.Complete)},
				{"Total", strconv.Itoa(snap.LeadStats.Total())},
			})

		sectionTitle(pdf, "Lead Details")
		rows := make([][]string, 0, len(snap.Leads))
		for _, lead := range snap.Leads {
			rows = append(rows, []string{
				lead.DisplayName(),
				lead.Email,
				lead.Phone,
				string(lead.PropertyType),
				lead.Status.Label(),
			})
		}
		drawTable(pdf,
			[]string{"Name", "Email", "Phone", "Property Type", "Status"},
			[]float64{40, 55, 30, 35, 30},
			rows)
	}

	if kind.includeProperties() {
		sectionTitle(pdf, "Property Statistics")
		drawTable(pdf,
			[]string{"Status", "Count"},
			[]float64{60, 30},
			[][]string{
				{"Available", strconv.Itoa(snap.PropertyStats.Available)},
				{"Under Contract", strconv.Itoa(snap.PropertyStats.UnderContract)},
				{"Sold", strconv.Itoa(snap.PropertyStats.Sold)},
				{"Rented", strconv.Itoa(snap.PropertyStats.Rented)},
				{"Total", strconv.Itoa(snap.PropertyStats.Total())},
			})

		sectionTitle(pdf, "Property Details")
		rows := make([][]string, 0, len(snap.Properties))
		for _, property := range snap.Properties {
			rows = append(rows, []string{
				property.Title,
				string(property.PropertyType),
				formatPrice(property),
				property.City,
				property.Status.Label(),
			})
		}
		drawTable(pdf,
			[]string{"Title", "Type", "Price", "City", "Status"},
			[]float64{60, 28, 32, 35, 35},
			rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
}

func drawTable(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(33, 97, 140)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(33, 37, 41)
	fill := false
	pdf.SetFillColor(240, 240, 240)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
}
