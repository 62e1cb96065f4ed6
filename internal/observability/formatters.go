// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/engine"
	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted CLI output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintTemplates lists the registered templates
func (p *Printer) PrintTemplates(list []types.TemplateInfo, defaultID string) {
	var sb strings.Builder
	for _, t := range list {
		marker := " "
		if t.ID == defaultID {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-12s %-28s %s\n", marker, t.ID, t.Name, t.Difficulty))
	}
	p.printBox(fmt.Sprintf("TEMPLATES (%d)", len(list)), sb.String())
}

// PrintPortfolio outputs a short summary of a portfolio state
func (p *Printer) PrintPortfolio(st types.PortfolioState) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", st.UserData.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", st.UserData.Title))
	sb.WriteString(fmt.Sprintf("Template: %s\n", st.SelectedTemplate))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Projects: %d   Experience: %d   Education: %d\n",
		len(st.Projects), len(st.Experience), len(st.Education)))

	if len(st.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(st.Skills)))
		count := min(len(st.Skills), maxItemsToShow)
		for _, sk := range st.Skills[:count] {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", sk.Name, sk.Level))
		}
		if len(st.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(st.Skills)-maxItemsToShow))
		}
	}
	p.printBox("PORTFOLIO", sb.String())
}

// PrintEquivalence reports live/static agreement per template. It returns the
// number of templates whose paths disagree.
func (p *Printer) PrintEquivalence(reports []engine.EquivalenceReport) int {
	var sb strings.Builder
	failed := 0
	for _, r := range reports {
		if r.Equal {
			sb.WriteString(fmt.Sprintf("✓ %s\n", r.TemplateID))
			continue
		}
		failed++
		sb.WriteString(fmt.Sprintf("✗ %s\n", r.TemplateID))
		for _, s := range firstN(r.LiveOnly) {
			sb.WriteString(fmt.Sprintf("    live only:   %q\n", s))
		}
		for _, s := range firstN(r.StaticOnly) {
			sb.WriteString(fmt.Sprintf("    static only: %q\n", s))
		}
	}
	sb.WriteString(fmt.Sprintf("\n%d/%d templates equivalent\n", len(reports)-failed, len(reports)))
	p.printBox("RENDERING EQUIVALENCE", sb.String())
	return failed
}

func firstN(items []string) []string {
	if len(items) > maxItemsToShow {
		return items[:maxItemsToShow]
	}
	return items
}

// PrintArchive summarises a packaged archive
func (p *Printer) PrintArchive(a *export.Archive, path string) {
	if a == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:  %s\n", path))
	sb.WriteString(fmt.Sprintf("Size:  %s\n", humanBytes(a.Size)))
	sb.WriteString("Contents:\n")
	for _, f := range a.Files {
		sb.WriteString(fmt.Sprintf("  • %s\n", f))
	}
	p.printBox("EXPORT", sb.String())
}

// PrintProgress writes one progress line
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(pr export.Progress) {
	filled := pr.Percent / 5
	fmt.Fprintf(p.out, "[%s%s] %3d%% %s\n",
		strings.Repeat("█", filled), strings.Repeat("░", 20-filled), pr.Percent, pr.Stage)
}

// PrintValidationErrors lists field errors from schema validation
func (p *Printer) PrintValidationErrors(errs []schemas.FieldError) {
	var sb strings.Builder
	for _, fe := range errs {
		sb.WriteString(fmt.Sprintf("%s: %s\n", fe.Field, fe.Message))
	}
	p.printBox(fmt.Sprintf("VALIDATION FAILED (%d)", len(errs)), sb.String())
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
