package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrBuildFailure is returned when the build system exits with a non-zero status
	// or cannot be started at all.
	ErrBuildFailure = zerr.New("build failed")

	// ErrUnsupportedMode is returned for release installs while release installs are disabled.
	ErrUnsupportedMode = zerr.New("only HEAD installation is supported")

	// ErrMissingVersion is returned for release installs that carry no version.
	ErrMissingVersion = zerr.New("release installation requires a version")

	// ErrMissingPrefix is returned when an install request has no prefix.
	ErrMissingPrefix = zerr.New("install prefix is required")

	// ErrInvalidMode is returned when a mode string is neither "head" nor "release".
	ErrInvalidMode = zerr.New("invalid install mode, expected 'head' or 'release'")

	// ErrMissingFormulaName is returned when a formula file does not declare a name.
	ErrMissingFormulaName = zerr.New("formula name is required")

	// ErrInvalidDependency is returned when a dependency entry has an empty name.
	ErrInvalidDependency = zerr.New("dependency name is required")

	// ErrDuplicateDependency is returned when the same dependency is declared twice.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrConfigReadFailed is returned when the formula file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read formula file")

	// ErrConfigParseFailed is returned when the formula file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse formula file")

	// ErrUnsupportedConfigFormat is returned for formula files that are neither YAML nor TOML.
	ErrUnsupportedConfigFormat = zerr.New("unsupported formula file format")

	// ErrHistoryOpenFailed is returned when the install history database cannot be opened.
	ErrHistoryOpenFailed = zerr.New("failed to open install history")

	// ErrHistoryWriteFailed is returned when an install record cannot be stored.
	ErrHistoryWriteFailed = zerr.New("failed to write install history")

	// ErrHistoryReadFailed is returned when install records cannot be read.
	ErrHistoryReadFailed = zerr.New("failed to read install history")

	// ErrReceiptWriteFailed is returned when the install receipt cannot be written.
	ErrReceiptWriteFailed = zerr.New("failed to write install receipt")
)

// ExitCodeKey is the zerr metadata key carrying the build system's exit status.
const ExitCodeKey = "exit_code"

// ExitCodeOf returns the build exit status attached to err, if any.
func ExitCodeOf(err error) (ExitStatus, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		z, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		switch v := z.Metadata()[ExitCodeKey].(type) {
		case ExitStatus:
			return v, true
		case int:
			return ExitStatus(v), true
		}
	}
	return 0, false
}
