package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"thesisledger/internal/models"
	"thesisledger/internal/services"
)

// Pending lists the theses awaiting approval with this admin's stance on
// each.
func (a *App) Pending(ctx context.Context) error {
	return a.gated(ctx, func(ctx context.Context) error {
		items, err := a.review.Refresh(ctx)
		if err != nil {
			return err
		}
		a.printPending(items)
		return nil
	})
}

func (a *App) printPending(items []models.PendingThesis) {
	if len(items) == 0 {
		printlnFn("No theses pending approval.")
		return
	}
	printlnFn(titleStyle.Render(fmt.Sprintf("Pending theses (%d)", len(items))))
	for _, t := range items {
		printlnFn(a.pendingCard(t))
	}
}

func (a *App) pendingCard(t models.PendingThesis) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)),
		field("Author", t.Author),
		field("Department", t.Department),
		field("Uploaded by", t.UploadedBy),
		field("Submitted", formatDate(t.SubmissionDate)),
		field("Approvals", progressBar(t.CurrentApprovals, t.TotalAdminsRequired)),
	}
	if t.ValidationDocumentName != "" {
		lines = append(lines, field("Validation doc", t.ValidationDocumentName))
	}
	switch a.review.StateFor(t, a.identity.Email) {
	case services.StateOwnUpload:
		lines = append(lines, warnStyle.Render("Your upload: awaiting other admins."))
	case services.StateAlreadyApproved:
		lines = append(lines, okStyle.Render(fmt.Sprintf(
			"You approved this thesis. %d more approval(s) needed.", t.Remaining())))
	default:
		lines = append(lines, fmt.Sprintf("Use 'approve %d' or 'reject %d'.", t.ID, t.ID))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) Approve(ctx context.Context, args []string) error {
	return a.gated(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "approve")
		if err != nil {
			return err
		}

		t, ok := a.review.Find(id)
		if !ok {
			// Not cached, likely a stale id. Confirm against a fresh list.
			items, err := a.review.Refresh(ctx)
			if err != nil {
				return err
			}
			a.printPending(items)
			if t, ok = a.review.Find(id); !ok {
				printlnFn(fmt.Sprintf("No pending thesis with id %d.", id))
				return nil
			}
		}
		switch a.review.StateFor(t, a.identity.Email) {
		case services.StateOwnUpload:
			printlnFn(warnStyle.Render("You cannot approve your own upload."))
			return nil
		case services.StateAlreadyApproved:
			printlnFn(warnStyle.Render("You already approved this thesis."))
			return nil
		}

		ok, err = getConfirmation(a.reader, fmt.Sprintf("Approve %q by %s?", t.Title, t.Author))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		out, err := a.review.Approve(ctx, id)
		if err != nil {
			return err
		}
		if out.Message != "" {
			printlnFn(okStyle.Render(out.Message))
		}

		if out.MovedToLedger {
			// Quorum reached: the thesis left the pending list and landed on
			// the ledger, so both views are refreshed.
			printlnFn(okStyle.Render("Quorum reached, thesis recorded on the ledger."))
			if items, err := a.review.Refresh(ctx); err == nil {
				a.printPending(items)
			}
			return a.Records(ctx, nil)
		}

		items, err := a.review.Refresh(ctx)
		if err != nil {
			return err
		}
		a.printPending(items)
		return nil
	})
}

func (a *App) Reject(ctx context.Context, args []string) error {
	return a.gated(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "reject")
		if err != nil {
			return err
		}

		if t, ok := a.review.Find(id); ok && a.review.StateFor(t, a.identity.Email) == services.StateOwnUpload {
			printlnFn(warnStyle.Render("You cannot reject your own upload."))
			return nil
		}

		reason, err := getSimpleText(a.reader, "Rejection reason")
		if err != nil {
			return err
		}
		if err := a.review.Reject(ctx, id, reason); err != nil {
			return err
		}
		printlnFn(okStyle.Render(fmt.Sprintf("Thesis %d rejected.", id)))

		items, err := a.review.Refresh(ctx)
		if err != nil {
			return err
		}
		a.printPending(items)
		return nil
	})
}

// Document fetches a pending thesis's validation document. With a path
// argument the file is downloaded there; without one it is saved under its
// server-side name in the working directory.
func (a *App) Document(ctx context.Context, args []string) error {
	return a.gated(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "doc")
		if err != nil {
			return err
		}

		download := len(args) > 1
		body, name, err := a.api.ValidationDocument(ctx, id, download)
		if err != nil {
			return err
		}
		defer body.Close()

		dest := name
		if download {
			dest = args[1]
		}
		if dest == "" {
			dest = fmt.Sprintf("validation-%d.pdf", id)
		}

		out, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer out.Close()
		n, err := io.Copy(out, body)
		if err != nil {
			return err
		}
		printlnFn(okStyle.Render(fmt.Sprintf("Saved %s (%d bytes).", dest, n)))
		return nil
	})
}

func parseID(args []string, cmd string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s <id>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid thesis id %q", args[0])
	}
	return id, nil
}
