// Package report renders fault calculation results as a PDF calculation sheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gofault/internal/cases"
	"github.com/alexiusacademia/gofault/internal/version"
)

// Header describes the calculation sheet
type Header struct {
	Title   string
	Project string
	Author  string
	Notes   string
	Date    time.Time
}

var columns = []struct {
	title string
	width float64
}{
	{"Case", 38}, {"Type", 12}, {"VLL (kV)", 18}, {"Z1 (ohm)", 16}, {"Z2 (ohm)", 16},
	{"Z0 (ohm)", 16}, {"I (kA)", 24}, {"S (MVA)", 28},
}

// Write renders the header and one row per outcome to w. Cases that failed
// validation are listed with their error message.
func Write(w io.Writer, h Header, outcomes []cases.Outcome) error {
	if h.Title == "" {
		h.Title = "Short-Circuit Calculation"
	}
	if h.Date.IsZero() {
		h.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("gofault v%s - page %d", version.Version, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(h.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if h.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", h.Project)))
		pdf.Ln(6)
	}
	if h.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", h.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", h.Date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr("Formulas: LLL I = VLL/(sqrt3·Z1); LL I = sqrt3·VLL/(2·(Z1+Z2)); "+
		"LG I = sqrt3·VLL/(Z1+Z2+Z0); S = sqrt3·VLL·I."), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 230, 245)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, tr(c.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, o := range outcomes {
		pdf.CellFormat(columns[0].width, 6, tr(o.Case.Name), "1", 0, "L", false, 0, "")
		if o.Err != nil {
			rest := 0.0
			for _, c := range columns[1:] {
				rest += c.width
			}
			pdf.SetTextColor(180, 0, 0)
			pdf.CellFormat(rest, 6, tr(o.Err.Error()), "1", 0, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(-1)
			continue
		}
		r := o.Result
		cells := []string{
			r.Type.String(),
			fmt.Sprintf("%.3f", r.Input.LineVoltageKV),
			fmt.Sprintf("%.4f", r.Input.Z1),
			optional(r.Input.Z2),
			optional(r.Input.Z0),
			fmt.Sprintf("%.3f", r.CurrentKA),
			fmt.Sprintf("%.2f", r.PowerMVA),
		}
		for i, text := range cells {
			pdf.CellFormat(columns[i+1].width, 6, text, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if h.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(h.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

func optional(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
