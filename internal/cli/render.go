package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"thesisledger/internal/api"
	"thesisledger/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// renderError maps service and transport errors to a single user-facing line.
func renderError(err error) string {
	var fieldErrs services.FieldErrors
	var dup *api.DuplicateError
	var apiErr *api.APIError
	switch {
	case errors.As(err, &fieldErrs):
		var b strings.Builder
		b.WriteString(errStyle.Render("Please fix the following:"))
		for _, field := range fieldErrs.Fields() {
			b.WriteString(fmt.Sprintf("\n  %s: %s", field, fieldErrs[field]))
		}
		return b.String()
	case errors.As(err, &dup):
		return warnStyle.Render(dup.Error())
	case errors.Is(err, api.ErrUnauthorized):
		return errStyle.Render("Not authorized. Please sign in again.")
	case errors.Is(err, api.ErrUnavailable):
		return errStyle.Render("Server is unavailable. Please try again later.")
	case errors.Is(err, services.ErrSuperseded):
		return ""
	case errors.As(err, &apiErr):
		return errStyle.Render(apiErr.Message)
	default:
		return errStyle.Render(err.Error())
	}
}

// progressBar renders approval progress, e.g. "[##--] 2/4".
func progressBar(current, total int) string {
	if total <= 0 {
		return ""
	}
	if current > total {
		current = total
	}
	bar := strings.Repeat("#", current) + strings.Repeat("-", total-current)
	return fmt.Sprintf("[%s] %d/%d", bar, current, total)
}

// formatDate accepts the timestamp shapes the backend emits and renders a
// short date, falling back to the raw string.
func formatDate(s string) string {
	if s == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

func field(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}
