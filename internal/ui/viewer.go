package ui

import "coverreport/internal/domain"

// Viewer displays a coverage summary interactively
type Viewer interface {
	View(summary *domain.CoverageSummary) error
}
