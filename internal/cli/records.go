package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Records browses the ledger one page at a time; "records 3" jumps to the
// third page.
func (a *App) Records(ctx context.Context, args []string) error {
	return a.gated(ctx, func(ctx context.Context) error {
		page := 0
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid page %q", args[0])
			}
			page = n - 1
		}

		rs, err := a.ledger.Records(ctx, page)
		if err != nil {
			return err
		}
		if len(rs.Items) == 0 {
			printlnFn("No ledger records yet.")
			return nil
		}

		printlnFn(titleStyle.Render("Ledger records"))
		for _, p := range rs.Items {
			printlnFn(paperCard(p))
		}
		if pg := rs.Page; pg != nil {
			printlnFn(labelStyle.Render(fmt.Sprintf(
				"page %d of %d (%d records), use 'records <page>'",
				pg.Number+1, pg.TotalPages, pg.TotalElements)))
		}
		return nil
	})
}

// Stats prints the platform counters.
func (a *App) Stats(ctx context.Context) error {
	return a.gated(ctx, func(ctx context.Context) error {
		stats, err := a.ledger.Stats(ctx)
		if err != nil {
			return err
		}
		printlnFn(titleStyle.Render("Platform statistics"))
		printlnFn(field("Users", strconv.Itoa(stats.TotalUsers)))
		printlnFn(field("Published papers", strconv.Itoa(stats.TotalPapers)))
		printlnFn(field("Pending verifications", strconv.Itoa(stats.PendingVerifications)))
		return nil
	})
}
