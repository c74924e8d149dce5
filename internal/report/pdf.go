// Package report renders the assessment result as a PDF: brand header,
// overall score, per-section breakdown with weights and contributions,
// optional premium block, and the full questionnaire responses.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/arbor"

	"cyberscore-engine/internal/model"
	"cyberscore-engine/internal/questionnaire"
	"cyberscore-engine/internal/scoring"
)

// Assessment bundles everything the report consumes. The report is a
// read-only consumer of the computed scores; nothing here feeds back into
// scoring.
type Assessment struct {
	Applicant     model.Applicant
	Answers       model.AnswerMap
	SectionScores map[string]float64
	Overall       float64
	Label         string
	Premium       *model.Premium
	Weights       scoring.Weights
}

type Generator struct {
	brandLeft       string
	brandRight      string
	confidentiality string
	log             arbor.ILogger
}

func NewGenerator(brandLeft, brandRight, confidentiality string, log arbor.ILogger) *Generator {
	return &Generator{
		brandLeft:       brandLeft,
		brandRight:      brandRight,
		confidentiality: confidentiality,
		log:             log,
	}
}

// Build renders the assessment to PDF bytes.
func (g *Generator) Build(a *Assessment) ([]byte, error) {
	timestamp := time.Now().Format("2006-01-02 15:04")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetHeaderFunc(func() {
		pdf.SetY(8)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 6, g.brandLeft, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, g.brandRight, "", 0, "R", false, 0, "")
		pdf.Ln(12)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s", timestamp), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, g.confidentiality, "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Cyber Security Assessment Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Overall Score: %.1f / 100 (%s)", a.Overall, a.Label), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	g.writeApplicant(pdf, a.Applicant)
	g.writeSectionTable(pdf, a)
	if a.Premium != nil {
		g.writePremium(pdf, a.Premium)
	}
	g.writeAnswers(pdf, a.Answers)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.log.Error().Err(err).Msg("Failed to generate PDF output")
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}

	g.log.Debug().Int("pdf_size", buf.Len()).Msg("Assessment report generated")
	return buf.Bytes(), nil
}

func (g *Generator) writeApplicant(pdf *fpdf.Fpdf, ap model.Applicant) {
	fields := []struct{ label, value string }{
		{"Legal entity name", ap.CompanyName},
		{"Registered office address", ap.Address},
		{"Website(s) / Domain(s)", ap.Websites},
		{"Description of activity", ap.Activity},
		{"Number of employees", ap.Employees},
		{"Annual turnover", ap.Revenue},
		{"Years in operation", ap.YearsInOperation},
		{"Primary cybersecurity contact", ap.PrimaryContact},
	}

	any := false
	for _, f := range fields {
		if f.value != "" {
			any = true
			break
		}
	}
	if !any {
		return
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Applicant", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", f.label, f.value), "", "L", false)
	}
	pdf.Ln(3)
}

func (g *Generator) writeSectionTable(pdf *fpdf.Fpdf, a *Assessment) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Section Scores", "", 1, "L", false, 0, "")

	colWidths := []float64{20, 90, 25, 20, 25}
	headers := []string{"Section", "Title", "Score", "Weight", "Contribution"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	titles := sectionTitles()

	pdf.SetFont("Helvetica", "", 9)
	var ids []string
	for id := range a.SectionScores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		score := a.SectionScores[id]
		weight := a.Weights[id]
		pdf.CellFormat(colWidths[0], 6, id, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, titles[id], "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%.1f / 100", score), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%.0f%%", weight*100), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%.1f", score*weight), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (g *Generator) writePremium(pdf *fpdf.Fpdf, p *model.Premium) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Premium Quote", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Premium rate: %.2f%% of coverage amount", p.Rate*100), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Coverage amount: %.2f", p.CoverageAmount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Annual premium due: %.2f", p.Amount), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (g *Generator) writeAnswers(pdf *fpdf.Fpdf, answers model.AnswerMap) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Questionnaire Responses", "", 1, "L", false, 0, "")

	for _, section := range questionnaire.Sections() {
		if section.ID == "A" {
			// Applicant block already rendered above.
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s. %s", section.ID, section.Title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, q := range section.Questions {
			a, ok := answers[q.Key]
			if !ok {
				continue
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", q.Prompt, a.Display()), "", "L", false)
		}
		pdf.Ln(2)
	}
}

func sectionTitles() map[string]string {
	titles := make(map[string]string)
	for _, s := range questionnaire.Sections() {
		titles[s.ID] = s.Title
	}
	return titles
}
