package coverage

import (
	"fmt"
	"sort"

	"golang.org/x/tools/cover"

	"coverreport/internal/domain"
)

// Parser reads coverage profiles written by go test -coverprofile
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Summarize parses the profile at path and aggregates statement counts per file
func (p *Parser) Summarize(path string) (*domain.CoverageSummary, error) {
	profiles, err := cover.ParseProfiles(path)
	if err != nil {
		return nil, fmt.Errorf("parse coverage profile: %w", err)
	}

	return Aggregate(profiles), nil
}

// Aggregate folds parsed profiles into a summary sorted by file name.
// Blocks of the same file appearing in several profiles are summed.
func Aggregate(profiles []*cover.Profile) *domain.CoverageSummary {
	summary := &domain.CoverageSummary{}
	byFile := make(map[string]*domain.FileCoverage)

	for _, profile := range profiles {
		if summary.Mode == "" {
			summary.Mode = profile.Mode
		}

		fc, ok := byFile[profile.FileName]
		if !ok {
			fc = &domain.FileCoverage{FileName: profile.FileName}
			byFile[profile.FileName] = fc
		}

		for _, block := range profile.Blocks {
			fc.Statements += block.NumStmt
			if block.Count > 0 {
				fc.Covered += block.NumStmt
			}
		}
	}

	summary.Files = make([]domain.FileCoverage, 0, len(byFile))
	for _, fc := range byFile {
		summary.Files = append(summary.Files, *fc)
		summary.Statements += fc.Statements
		summary.Covered += fc.Covered
	}
	sort.Slice(summary.Files, func(i, j int) bool {
		return summary.Files[i].FileName < summary.Files[j].FileName
	})

	return summary
}
