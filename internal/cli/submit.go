package cli

import (
	"context"
	"fmt"
	"strings"

	"thesisledger/internal/services"
)

// Submit walks the thesis submission form and uploads it. The whole flow is
// gated behind an active session.
func (a *App) Submit(ctx context.Context) error {
	return a.gated(ctx, a.submitForm)
}

func (a *App) submitForm(ctx context.Context) error {
	form := services.SubmissionForm{}

	var err error
	if form.ThesisPath, err = getSimpleText(a.reader, "Thesis file path"); err != nil {
		return err
	}
	if form.ValidationDocumentPath, err = getSimpleText(a.reader, "Validation document path"); err != nil {
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
	if form.Supervisor, err = getSimpleText(a.reader, "Supervisor"); err != nil {
		return err
	}
	if form.CoSupervisor, err = getSimpleText(a.reader, "Co-supervisor (optional)"); err != nil {
		return err
	}
	if form.AbstractText, err = getMultiline(a.reader, "Abstract"); err != nil {
		return err
	}
	keywords, err := getSimpleText(a.reader, "Keywords (comma-separated)")
	if err != nil {
		return err
	}
	form.Keywords = splitKeywords(keywords)

	res, err := a.submissions.Submit(ctx, &form, a.identity.Email)
	if err != nil {
		return err
	}

	if res.Message != "" {
		printlnFn(okStyle.Render(res.Message))
	}
	if res.NeedsApproval {
		printlnFn(fmt.Sprintf("Awaiting admin approval: %s",
			progressBar(res.CurrentApprovals, res.TotalAdminsRequired)))
	} else if res.StoredOnLedger {
		printlnFn(okStyle.Render("Thesis recorded on the ledger."))
	}
	return nil
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
