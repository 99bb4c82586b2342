package config

const (
	// DefaultEnvVar is the variable holding the list of workspace roots
	DefaultEnvVar = "GOPATH"
	// DefaultImportPath is the project looked up under <root>/src
	DefaultImportPath = "github.com/rafaeljusto/crawler"
	// DefaultSourceDir is the directory under each workspace root holding sources
	DefaultSourceDir = "src"
	// DefaultProfileFile is the transient coverage profile written by the test step
	DefaultProfileFile = "cover-profile.out"
	// DefaultGoBinary is the toolchain binary
	DefaultGoBinary = "go"
	// DefaultProjectEnvFile is loaded from the project directory when present
	DefaultProjectEnvFile = ".env"
)
