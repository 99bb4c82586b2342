package domain

// FileCoverage holds statement counts for a single source file
type FileCoverage struct {
	FileName   string
	Statements int
	Covered    int
}

// Percent returns the covered statement ratio in the range 0-100
func (f FileCoverage) Percent() float64 {
	return percent(f.Covered, f.Statements)
}

// CoverageSummary is the parsed content of a coverage profile
type CoverageSummary struct {
	Mode       string
	Files      []FileCoverage
	Statements int
	Covered    int
}

// Percent returns the total covered statement ratio in the range 0-100
func (s *CoverageSummary) Percent() float64 {
	return percent(s.Covered, s.Statements)
}

func percent(covered, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(covered) / float64(total) * 100
}
