package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	careerapimodels "career-coach-backend/models/api/career"
)

// GenerateAnalysisReportPdf формирует PDF с отчётом об оценке резюме.
// Базовые шрифты fpdf покрывают латиницу cp1252, отчёты ИИ приходят
// на английском и испанском
func GenerateAnalysisReportPdf(report careerapimodels.RedactedReport) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateAnalysisReportPdf panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "CV Analysis Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %d / 100 (%s)", report.Score, tr(report.MatchLevel)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(report.Summary), "", "L", false)
	pdf.Ln(3)

	writeSection(pdf, tr, "Breakdown", []string{
		fmt.Sprintf("Hard skills: %d", report.Breakdown.HardSkills),
		fmt.Sprintf("Experience: %d", report.Breakdown.Experience),
		fmt.Sprintf("Languages: %d", report.Breakdown.Languages),
		fmt.Sprintf("Education: %d", report.Breakdown.Education),
		fmt.Sprintf("Soft skills: %d", report.Breakdown.SoftSkills),
		fmt.Sprintf("Format: %d", report.Breakdown.Format),
	})
	writeSection(pdf, tr, "Missing keywords", report.HardSkillsAnalysis.MissingKeywords)
	writeSection(pdf, tr, "Matched keywords", report.HardSkillsAnalysis.MatchedKeywords)
	if report.ExperienceAnalysis.Feedback != "" {
		writeSection(pdf, tr, "Experience", []string{report.ExperienceAnalysis.Feedback})
	}
	if report.SoftSkillsAnalysis.Feedback != "" {
		writeSection(pdf, tr, "Soft skills", []string{report.SoftSkillsAnalysis.Feedback})
	}
	writeSection(pdf, tr, "Formatting issues", report.FormattingAnalysis.Issues)
	writeSection(pdf, tr, "Red flags", report.RedFlags)
	writeSection(pdf, tr, "Improvement plan", report.ImprovementPlan)
	if report.KillerQuestionsCheck != nil {
		verdict := "failed"
		if report.KillerQuestionsCheck.Passed {
			verdict = "passed"
		}
		writeSection(pdf, tr, "Knockout check", []string{
			fmt.Sprintf("%s: %s", verdict, report.KillerQuestionsCheck.Reason),
		})
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.MultiCell(0, 6, tr("- "+line), "", "L", false)
	}
	pdf.Ln(2)
}
