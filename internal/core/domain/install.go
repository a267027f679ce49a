package domain

import "strings"

// Mode selects where the sources of an install come from.
type Mode string

const (
	// ModeHead builds from the latest unreleased state of the head branch.
	ModeHead Mode = "head"
	// ModeRelease builds a tagged release.
	ModeRelease Mode = "release"
)

// HeadVersion is the version marker passed to the build system for head installs.
const HeadVersion = "HEAD"

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeHead:
		return ModeHead, nil
	case ModeRelease, "stable":
		return ModeRelease, nil
	default:
		return "", ErrInvalidMode
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeHead || m == ModeRelease
}

func (m Mode) String() string {
	return string(m)
}

// InstallRequest is a single request to install the formula.
type InstallRequest struct {
	Mode Mode
	// Version is the release tag. It is ignored for head installs.
	Version string
	// Prefix is the install root, passed to the build system unchanged.
	Prefix string
}

// Policy controls which install requests the dispatcher accepts.
type Policy struct {
	// AllowReleaseInstalls permits ModeRelease requests. When false only head
	// installs are accepted.
	AllowReleaseInstalls bool
}

// ExitStatus is the exit status of an external process.
type ExitStatus int

const (
	// ExitSuccess is the status of a process that completed successfully.
	ExitSuccess ExitStatus = 0
	// ExitTerminated is reported when the process was killed or never started.
	ExitTerminated ExitStatus = -1
)

// Success reports whether the status denotes success.
func (s ExitStatus) Success() bool {
	return s == ExitSuccess
}
