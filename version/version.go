// Package version exposes build metadata injected through -ldflags -X.
package version

import "fmt"

//nolint:gochecknoglobals // Set via ldflags at build time.
var (
	version = "0.1.0-dev"
	name    = "mpadec"
	commit  = "undefined"
	date    = "undefined"
)

// Commit returns the compile time commit.
func Commit() string {
	return commit
}

// Version returns the compile time version.
func Version() string {
	return version
}

// Name returns the compile time name.
func Name() string {
	return name
}

// Date returns the compile time build date.
func Date() string {
	return date
}

// Long returns the version followed by the commit and build date, for --version output.
func Long() string {
	return fmt.Sprintf("%s (%s - %s)", version, commit, date)
}
