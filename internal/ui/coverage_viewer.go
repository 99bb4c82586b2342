package ui

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"coverreport/internal/domain"
)

// CoverageViewer browses per-file coverage in an interactive TUI
type CoverageViewer struct{}

// NewCoverageViewer creates a new CoverageViewer
func NewCoverageViewer() *CoverageViewer {
	return &CoverageViewer{}
}

// View displays the coverage summary until the user quits
func (cv *CoverageViewer) View(summary *domain.CoverageSummary) error {
	if summary == nil || len(summary.Files) == 0 {
		color.Yellow("No coverage data to browse")
		return nil
	}

	byPercent := false
	files := SortFiles(summary.Files, byPercent)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	fill := func() {
		list.Clear()
		for _, file := range files {
			list.AddItem(listItemText(file), "", 0, nil)
		}
	}

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		order := "name"
		if byPercent {
			order = "coverage"
		}
		headerView.SetText(fmt.Sprintf(
			" Coverage %.1f%% of %d statements (mode: %s) | sorted by %s | ↑↓ navigate, [yellow]S[white] sort, Q/Ctrl+C exit ",
			summary.Percent(), summary.Statements, summary.Mode, order))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(files) {
			detailsView.SetText(formatFileDetails(files[index]))
		}
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 's', 'S':
				byPercent = !byPercent
				files = SortFiles(summary.Files, byPercent)
				fill()
				updateHeader()
				updateDetails()
				return nil
			}
		}
		return event
	})

	fill()
	updateHeader()
	updateDetails()

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 2, true).
		AddItem(detailsView, 0, 1, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// SortFiles returns a sorted copy of files, by name or by ascending coverage
func SortFiles(files []domain.FileCoverage, byPercent bool) []domain.FileCoverage {
	sorted := make([]domain.FileCoverage, len(files))
	copy(sorted, files)

	sort.SliceStable(sorted, func(i, j int) bool {
		if byPercent && sorted[i].Percent() != sorted[j].Percent() {
			return sorted[i].Percent() < sorted[j].Percent()
		}
		return sorted[i].FileName < sorted[j].FileName
	})
	return sorted
}

func listItemText(file domain.FileCoverage) string {
	return fmt.Sprintf("[%s]%6.1f%%[white] %s", tagColor(file.Percent()), file.Percent(), file.FileName)
}

func formatFileDetails(file domain.FileCoverage) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]File:[white] %s\n", path.Base(file.FileName))
	fmt.Fprintf(&builder, "[cyan]Package:[white] %s\n\n", path.Dir(file.FileName))
	fmt.Fprintf(&builder, "Statements: %d\n", file.Statements)
	fmt.Fprintf(&builder, "Covered:    %d\n", file.Covered)
	fmt.Fprintf(&builder, "Missed:     %d\n\n", file.Statements-file.Covered)
	fmt.Fprintf(&builder, "[%s]%.1f%%[white] covered\n", tagColor(file.Percent()), file.Percent())

	return builder.String()
}

// tagColor mirrors PercentColor using tview colour tags
func tagColor(pct float64) string {
	switch {
	case pct >= 80:
		return "green"
	case pct >= 50:
		return "yellow"
	default:
		return "red"
	}
}
