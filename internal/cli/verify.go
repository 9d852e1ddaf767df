package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"thesisledger/internal/models"
	"thesisledger/internal/services"
)

// Verify walks the thesis verification form: a file plus the claimed
// metadata, checked locally before anything is uploaded.
func (a *App) Verify(ctx context.Context) error {
	form := services.VerificationForm{}

	var err error
	if form.FilePath, err = getSimpleText(a.reader, "Thesis file path (.pdf, .doc, .docx)"); err != nil {
		return err
	}
	if form.Title, err = getSimpleText(a.reader, "Title"); err != nil {
		return err
	}
	if form.Author, err = getSimpleText(a.reader, "Author"); err != nil {
		return err
	}
	if form.Department, err = getSimpleText(a.reader, "Department"); err != nil {
		return err
	}
	if form.Institution, err = getSimpleText(a.reader, "Institution"); err != nil {
		return err
	}
	year, err := getSimpleText(a.reader, "Submission year")
	if err != nil {
		return err
	}
	if year != "" {
		if form.SubmissionYear, err = strconv.Atoi(year); err != nil {
			printlnFn(errStyle.Render(fmt.Sprintf("Invalid year %q.", year)))
			return errAborted
		}
	}
	if form.Supervisor, err = getSimpleText(a.reader, "Supervisor (optional)"); err != nil {
		return err
	}
	if form.CoSupervisor, err = getSimpleText(a.reader, "Co-supervisor (optional)"); err != nil {
		return err
	}
	if form.Abstract, err = getMultiline(a.reader, "Abstract (optional)"); err != nil {
		return err
	}
	keywords, err := getSimpleText(a.reader, "Keywords (comma-separated, optional)")
	if err != nil {
		return err
	}
	form.Keywords = splitKeywords(keywords)

	printlnFn("Verifying, this can take a moment...")
	report, err := a.verification.Verify(ctx, form)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

// Lookup searches ledger records directly by hash, title, author, or
// transaction id.
func (a *App) Lookup(ctx context.Context) error {
	var q models.LedgerQuery

	var err error
	if q.Hash, err = getSimpleText(a.reader, "File hash (optional)"); err != nil {
		return err
	}
	if q.Title, err = getSimpleText(a.reader, "Title (optional)"); err != nil {
		return err
	}
	if q.Author, err = getSimpleText(a.reader, "Author (optional)"); err != nil {
		return err
	}
	if q.LedgerTxID, err = getSimpleText(a.reader, "Transaction id (optional)"); err != nil {
		return err
	}

	report, err := a.verification.SearchLedger(ctx, q)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func printReport(r models.VerificationReport) {
	if r.Verified {
		printlnFn(okStyle.Render("VERIFIED: this thesis is recorded on the ledger."))
	} else {
		printlnFn(warnStyle.Render("NOT VERIFIED: no matching ledger record."))
	}
	if r.Message != "" {
		printlnFn(r.Message)
	}

	if p := r.MatchedPaper; p != nil {
		printlnFn(paperCard(*p))
	}
	if r.SimilarityScore > 0 {
		printlnFn(field("Similarity", fmt.Sprintf("%.1f%%", r.SimilarityScore)))
	}
	if r.PlagiarismScore > 0 {
		printlnFn(field("Plagiarism", fmt.Sprintf("%.1f%%", r.PlagiarismScore)))
	}
	for _, m := range r.Matches {
		printlnFn(fmt.Sprintf("  %s %s (%.1f%%)",
			labelStyle.Render("similar:"), matchLabel(m), m.SimilarityScore))
	}

	if r.AIAnalysis != nil {
		ai := r.Analysis()
		printlnFn(titleStyle.Render("AI analysis"))
		printlnFn(field("Score", fmt.Sprintf("%.1f%%", ai.AIDetectionScore)))
		if ai.AIDetectionConclusion != "" {
			printlnFn(field("Conclusion", ai.AIDetectionConclusion))
		}
		for _, ind := range ai.AIDetectionIndicators {
			printlnFn("  - " + ind)
		}
		if ai.MatchedPapersCount > 0 {
			printlnFn(field("Papers compared", strconv.Itoa(ai.MatchedPapersCount)))
		}
	}
}

func matchLabel(m models.PaperMatch) string {
	if m.Author == "" {
		return m.Title
	}
	return strings.TrimSpace(m.Title + " by " + m.Author)
}
