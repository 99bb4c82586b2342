package cli

import "coverreport/internal/config"

// Flags holds command-line flags
type Flags struct {
	ImportPath string
	EnvVar     string
	Separator  string
	Profile    string
	GoBinary   string
	HTMLOut    string
	Summary    bool
	View       bool
	EnvFile    string
	Debug      bool
	DebugFile  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ImportPath: f.ImportPath,
		EnvVar:     f.EnvVar,
		Separator:  f.Separator,
		Profile:    f.Profile,
		GoBinary:   f.GoBinary,
		HTMLOut:    f.HTMLOut,
		Summary:    f.Summary,
		View:       f.View,
		EnvFile:    f.EnvFile,
		Debug:      f.Debug,
		DebugFile:  f.DebugFile,
	}
}
