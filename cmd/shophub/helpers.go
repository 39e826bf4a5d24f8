package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"shophub/cmd/shophub/ui"
)

// userError logs the underlying failure and returns only the generic
// per-call-site message. The transport detail is deliberately dropped from
// what the user sees.
func userError(msg string, err error) error {
	if logger != nil {
		logger.Debug("command failed", zap.Error(err))
	}
	return errors.New(msg)
}

// commandContext returns the context for one command invocation. Individual
// calls are already bounded by the client's fixed timeout; this adds a
// whole-command ceiling for commands that fan out over several queries.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Minute)
}

func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

func formatRating(rate float64, count int) string {
	return fmt.Sprintf("%.1f (%d)", rate, count)
}

// truncate shortens s to at most max runes, ellipsized. Counting runes keeps
// multibyte titles from being cut mid-character.
func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// printTable renders a SimpleTable to stdout, or a muted placeholder when it
// has no rows.
func printTable(t *ui.SimpleTable, styles ui.Styles, empty string) {
	if len(t.Rows) == 0 {
		fmt.Fprintln(os.Stdout, styles.Muted.Render(empty))
		return
	}
	fmt.Fprint(os.Stdout, t.View(styles))
}

func appStyles() ui.Styles {
	return ui.NewStyles(ui.DetectTheme(app.cfg.UI.DarkMode))
}
