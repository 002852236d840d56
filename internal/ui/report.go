package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	updatedHeadlineConstant         = "README updated successfully"
	previewHeadlineConstant         = "README dry run, nothing written"
	unchangedPreviewMessageConstant = "README is already up to date"
	repositoryNameLabelConstant     = "Repo Name   :"
	projectNameLabelConstant        = "Project Name:"
	identifierSourceLabelConstant   = "Source      :"
	labeledValueTemplateConstant    = "%s %s\n"
	headlineColorConstant           = "2"
	labelColorConstant              = "6"
	diffAddedColorConstant          = "2"
	diffRemovedColorConstant        = "1"
	diffAddedPrefixConstant         = "+"
	diffRemovedPrefixConstant       = "-"
	diffLineSeparatorConstant       = "\n"
)

// ReportPrinter writes user-facing summaries.
type ReportPrinter struct {
	writer   io.Writer
	styled   bool
	headline lipgloss.Style
	label    lipgloss.Style
	added    lipgloss.Style
	removed  lipgloss.Style
}

// NewReportPrinter constructs a ReportPrinter. Styling is enabled only when
// writer is a terminal.
func NewReportPrinter(writer io.Writer) *ReportPrinter {
	if writer == nil {
		writer = io.Discard
	}
	return &ReportPrinter{
		writer:   writer,
		styled:   isTerminal(writer),
		headline: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(headlineColorConstant)),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color(labelColorConstant)),
		added:    lipgloss.NewStyle().Foreground(lipgloss.Color(diffAddedColorConstant)),
		removed:  lipgloss.NewStyle().Foreground(lipgloss.Color(diffRemovedColorConstant)),
	}
}

// PrintUpdated reports a written document.
func (printer *ReportPrinter) PrintUpdated(identifier string, title string) {
	fmt.Fprintln(printer.writer, printer.render(printer.headline, updatedHeadlineConstant))
	printer.printNames(identifier, title)
}

// PrintPreview reports a dry run: the diff, or a note when nothing would change.
func (printer *ReportPrinter) PrintPreview(identifier string, title string, diff string) {
	if len(diff) == 0 {
		fmt.Fprintln(printer.writer, unchangedPreviewMessageConstant)
	} else {
		fmt.Fprint(printer.writer, printer.renderDiff(diff))
	}
	fmt.Fprintln(printer.writer, printer.render(printer.headline, previewHeadlineConstant))
	printer.printNames(identifier, title)
}

// PrintResolution reports a resolved name and where it came from.
func (printer *ReportPrinter) PrintResolution(identifier string, source string, title string) {
	printer.printNames(identifier, title)
	printer.printLabeled(identifierSourceLabelConstant, source)
}

// PrintLines writes lines verbatim.
func (printer *ReportPrinter) PrintLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(printer.writer, line)
	}
}

func (printer *ReportPrinter) printNames(identifier string, title string) {
	printer.printLabeled(repositoryNameLabelConstant, identifier)
	printer.printLabeled(projectNameLabelConstant, title)
}

func (printer *ReportPrinter) printLabeled(label string, value string) {
	fmt.Fprintf(printer.writer, labeledValueTemplateConstant, printer.render(printer.label, label), value)
}

func (printer *ReportPrinter) renderDiff(diff string) string {
	if !printer.styled {
		return diff
	}
	diffLines := strings.Split(diff, diffLineSeparatorConstant)
	for lineIndex, diffLine := range diffLines {
		switch {
		case strings.HasPrefix(diffLine, diffAddedPrefixConstant+diffAddedPrefixConstant), strings.HasPrefix(diffLine, diffRemovedPrefixConstant+diffRemovedPrefixConstant):
			continue
		case strings.HasPrefix(diffLine, diffAddedPrefixConstant):
			diffLines[lineIndex] = printer.added.Render(diffLine)
		case strings.HasPrefix(diffLine, diffRemovedPrefixConstant):
			diffLines[lineIndex] = printer.removed.Render(diffLine)
		}
	}
	return strings.Join(diffLines, diffLineSeparatorConstant)
}

func (printer *ReportPrinter) render(style lipgloss.Style, text string) string {
	if !printer.styled {
		return text
	}
	return style.Render(text)
}

func isTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
