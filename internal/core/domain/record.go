package domain

import (
	"time"

	"github.com/google/uuid"
)

// InstallOutcome summarizes how an install attempt ended.
type InstallOutcome string

const (
	// OutcomeSucceeded means the build system exited with status 0.
	OutcomeSucceeded InstallOutcome = "succeeded"
	// OutcomeFailed means the build system ran and failed, or could not be started.
	OutcomeFailed InstallOutcome = "failed"
	// OutcomeRejected means the request was refused before any process was spawned.
	OutcomeRejected InstallOutcome = "rejected"
)

// InstallRecord is an entry of the install history.
type InstallRecord struct {
	ID        string
	Formula   string
	Mode      Mode
	Version   string
	Prefix    string
	Command   string
	Digest    string
	Outcome   InstallOutcome
	ExitCode  ExitStatus
	Error     string
	StartedAt time.Time
	Duration  time.Duration
}

// NewInstallRecord starts a history record for req.
func NewInstallRecord(formula string, req InstallRequest, startedAt time.Time) InstallRecord {
	return InstallRecord{
		ID:        uuid.NewString(),
		Formula:   formula,
		Mode:      req.Mode,
		Version:   req.Version,
		Prefix:    req.Prefix,
		StartedAt: startedAt.UTC(),
	}
}

// Receipt is written into the prefix after a successful install.
type Receipt struct {
	Formula     string    `json:"formula"`
	Mode        Mode      `json:"mode"`
	Version     string    `json:"version"`
	Source      string    `json:"source,omitzero"`
	Command     []string  `json:"command"`
	InstalledAt time.Time `json:"installed_at"`
	Installer   string    `json:"installer,omitzero"`
}
