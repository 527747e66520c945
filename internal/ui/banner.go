package ui

import (
	"fmt"
	"strings"

	"github.com/mkarsten/fidget/internal/config"
)

// Banner renders the startup summary for the resolved configuration.
func Banner(cfg config.Config, version string) string {
	rows := []struct {
		label string
		value string
	}{
		{"interval", fmt.Sprintf("%s ±%.0f%%", cfg.Interval, cfg.Jitter*100)},
		{"moves/cycle", fmt.Sprintf("%d-%d", cfg.MinMoves, cfg.MaxMoves)},
		{"move delay", cfg.MoveDelay.String()},
		{"move duration", fmt.Sprintf("%s-%s", cfg.MoveDurationMin, cfg.MoveDurationMax)},
		{"press", fmt.Sprintf("%q per %s", cfg.Key, cfg.PressMode)},
		{"margin", fmt.Sprintf("%dpx", cfg.Margin)},
	}
	if cfg.OnlyWhenIdle {
		rows = append(rows, struct{ label, value string }{"only when idle", "≥ " + cfg.IdleThreshold.String()})
	}
	if cfg.DryRun {
		rows = append(rows, struct{ label, value string }{"mode", "dry run"})
	}

	var b strings.Builder
	b.WriteString(Current.Title.Render("fidget " + version))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(Current.Label.Render(fmt.Sprintf("%-14s", row.label)))
		b.WriteString(" ")
		b.WriteString(Current.Value.Render(row.value))
	}
	return Current.Box.Render(b.String())
}

// RenderError renders a fatal configuration error.
func RenderError(err error) string {
	return Current.Error.Render("error: " + err.Error())
}
