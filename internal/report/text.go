package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tracker-tv/actions-lint/models"
)

var severityIcons = map[models.Severity]string{
	models.SeverityError:   "❌",
	models.SeverityWarning: "⚠️",
	models.SeverityInfo:    "ℹ️",
}

var severityColors = map[models.Severity]color.Attribute{
	models.SeverityError:   color.FgRed,
	models.SeverityWarning: color.FgYellow,
	models.SeverityInfo:    color.FgCyan,
}

type textRenderer struct {
	noColor bool
}

func (t *textRenderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if t.noColor {
		c.DisableColor()
	}
	return c
}

func (t *textRenderer) Render(w io.Writer, r *Report) error {
	bold := t.paint(color.Bold)
	dim := t.paint(color.Faint)

	if r.Empty() {
		_, err := fmt.Fprintf(w, "\n%s\n\n", bold.Sprint("✅ All workflows look good!"))
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n\n", bold.Sprint("🔍 Actions Lint Results")); err != nil {
		return err
	}

	for _, file := range r.Files {
		if _, err := fmt.Fprintln(w, bold.Sprint(file.File)); err != nil {
			return err
		}
		for _, f := range file.Findings {
			sev := t.paint(severityColors[f.Severity])
			if _, err := fmt.Fprintf(w, "  %s %s [%s] %s\n",
				dim.Sprintf("%d:", f.Line),
				sev.Sprintf("%s %s", severityIcons[f.Severity], f.Severity),
				f.Rule, f.Message); err != nil {
				return err
			}
			if f.Fix != "" {
				if _, err := fmt.Fprintf(w, "     %s\n", dim.Sprint("💡 "+f.Fix)); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s\n\n", bold.Sprint(r.Summary.String()))
	return err
}
