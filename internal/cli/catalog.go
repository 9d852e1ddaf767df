package cli

import (
	"context"
	"fmt"
	"strings"

	"thesisledger/internal/models"
	"thesisledger/internal/services"
)

// Papers shows the full published catalog from the first page.
func (a *App) Papers(ctx context.Context) error {
	a.catalog.ShowAll()
	return a.loadCatalog(ctx)
}

// Search runs a free-text catalog search. An empty query falls back to the
// full listing.
func (a *App) Search(ctx context.Context, args []string) error {
	a.catalog.Search(strings.Join(args, " "))
	return a.loadCatalog(ctx)
}

// Department filters the catalog by department, dropping any active query.
func (a *App) Department(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("usage: dept <name>")
		return nil
	}
	a.catalog.FilterDepartment(strings.Join(args, " "))
	return a.loadCatalog(ctx)
}

func (a *App) NextPage(ctx context.Context) error {
	state, err := a.catalog.NextPage(ctx)
	if err != nil {
		return err
	}
	printCatalog(state)
	return nil
}

func (a *App) PrevPage(ctx context.Context) error {
	state, err := a.catalog.PrevPage(ctx)
	if err != nil {
		return err
	}
	printCatalog(state)
	return nil
}

func (a *App) loadCatalog(ctx context.Context) error {
	state, err := a.catalog.Load(ctx)
	if err != nil {
		return err
	}
	printCatalog(state)
	return nil
}

func printCatalog(state services.CatalogState) {
	if !state.Loaded {
		return
	}
	if len(state.Results.Items) == 0 {
		switch state.Mode {
		case services.ModeSearch:
			printlnFn(fmt.Sprintf("No papers found for %q.", state.Query))
		case services.ModeDepartment:
			printlnFn(fmt.Sprintf("No papers found in department %q.", state.Department))
		default:
			printlnFn("No papers published yet.")
		}
		return
	}

	switch state.Mode {
	case services.ModeSearch:
		printlnFn(titleStyle.Render(fmt.Sprintf("Results for %q", state.Query)))
	case services.ModeDepartment:
		printlnFn(titleStyle.Render(fmt.Sprintf("Department: %s", state.Department)))
	default:
		printlnFn(titleStyle.Render("Published papers"))
	}

	for _, p := range state.Results.Items {
		printlnFn(paperCard(p))
	}

	// Search endpoints return unpaged arrays; only the listing shows pager
	// controls.
	if pg := state.Results.Page; pg != nil {
		printlnFn(labelStyle.Render(fmt.Sprintf(
			"page %d of %d (%d papers), use 'next'/'prev'",
			pg.Number+1, pg.TotalPages, pg.TotalElements)))
	}
}

func paperCard(p models.PublishedPaper) string {
	lines := []string{
		titleStyle.Render(p.Title),
		field("Author", p.Author),
		field("Department", p.Department),
	}
	if p.Institution != "" {
		lines = append(lines, field("Institution", p.Institution))
	}
	if len(p.Keywords) > 0 {
		lines = append(lines, field("Keywords", strings.Join(p.Keywords, ", ")))
	}
	if p.LedgerHash != "" {
		lines = append(lines, field("Ledger hash", hashStyle.Render(p.LedgerHash)))
	}
	if p.LedgerTxID != "" {
		lines = append(lines, field("Tx id", hashStyle.Render(p.LedgerTxID)))
	}
	lines = append(lines, field("Published", formatDate(firstNonEmpty(p.VerifiedAt, p.SubmissionDate, p.CreatedAt))))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
