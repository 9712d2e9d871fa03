package report

import (
	"fmt"
	"time"

	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"
	"Powergrid/internal/display"

	"github.com/phpdave11/gofpdf"
)

// Core PDF fonts have no Cyrillic glyphs, so reports use the ISO code.
const currency = "UAH"

type Input struct {
	Project     string             `json:"project"`
	Author      string             `json:"author"`
	Title       string             `json:"title"`
	Notes       string             `json:"notes"`
	Reliability *reliability.Input `json:"reliability,omitempty"`
	Loss        *loss.Input        `json:"loss,omitempty"`
}

// Build lays out a one-page A4 summary. Sections without input are left out.
func Build(in Input, now time.Time) *gofpdf.Fpdf {
	if in.Title == "" {
		in.Title = "Power Transmission Reliability Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	if in.Reliability != nil {
		res := reliability.Calculate(*in.Reliability)
		section(pdf, "Transmission system reliability", [][2]string{
			{"Failure probability of circuit 1 (P0)", fmt.Sprintf("%g", in.Reliability.P0)},
			{"Failure probability of circuit 2 (P1)", fmt.Sprintf("%g", in.Reliability.P1)},
			{"Single-circuit reliability, 1 - P0", display.Percent(res.SingleCircuit)},
			{"Double-circuit reliability, 1 - P0*P1", display.Percent(res.DoubleCircuit)},
		})
	}
	if in.Loss != nil {
		res := loss.Calculate(*in.Loss)
		section(pdf, "Expected loss from supply interruptions", [][2]string{
			{"Failure rate (lambda), 1/yr", fmt.Sprintf("%g", in.Loss.FailureRate)},
			{"Downtime (T), h", fmt.Sprintf("%g", in.Loss.DowntimeH)},
			{"Cost per hour (C), " + currency + "/h", fmt.Sprintf("%g", in.Loss.CostPerHour)},
			{"Expected loss, lambda*T*C", display.Currency(res.Loss, currency)},
		})
	}

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	return pdf
}

func section(pdf *gofpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(110, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}
