package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	WebhookSecret       string
	DispatchToken       string

	BranchName string
	CommitSHA  string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	RequestID string
	RunID     string
	GroupKey  string
)

func NewRequestID() RequestID { return RequestID(uuid.NewString()) }

func NewRunID() RunID { return RunID(uuid.NewString()) }

func (x RunID) String() string { return string(x) }

// Validate checks that the run ID is a UUID
func (x RunID) Validate() error {
	if _, err := uuid.Parse(string(x)); err != nil {
		return ErrValidationFailed
	}
	return nil
}

func (x GroupKey) String() string { return string(x) }

// NewGroupKey builds the concurrency group key of a workflow for a branch ref
func NewGroupKey(workflow string, ref string) GroupKey {
	return GroupKey(workflow + "/" + ref)
}

func (x BranchName) String() string { return string(x) }

// Ref returns the fully qualified ref name of the branch
func (x BranchName) Ref() string {
	if strings.HasPrefix(string(x), "refs/heads/") {
		return string(x)
	}
	return "refs/heads/" + string(x)
}

func (x CommitSHA) String() string { return string(x) }

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x DispatchToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DispatchToken) String() string {
	return "***********"
}

// TriggerKind is what caused a Run to be admitted
type TriggerKind string

const (
	TriggerPush     TriggerKind = "push"
	TriggerManual   TriggerKind = "manual"
	TriggerSchedule TriggerKind = "schedule"
)

func (x TriggerKind) Validate() error {
	switch x {
	case TriggerPush, TriggerManual, TriggerSchedule:
		return nil
	}
	return ErrInvalidOption
}

// RunState is a node of the per-Run state machine
type RunState string

const (
	RunStateStarted   RunState = "started"
	RunStatePrepared  RunState = "prepared"
	RunStateGenerated RunState = "generated"
	RunStateNoOp      RunState = "noop"
	RunStatePublished RunState = "published"
	RunStateDone      RunState = "done"
	RunStateFailed    RunState = "failed"
	RunStateCancelled RunState = "cancelled"
)

// Terminal reports whether no further transition is allowed
func (x RunState) Terminal() bool {
	return x == RunStateDone || x == RunStateFailed || x == RunStateCancelled
}

// RunOutcome summarizes how a finished Run ended
type RunOutcome string

const (
	RunOutcomeNoOp      RunOutcome = "noop"
	RunOutcomePublished RunOutcome = "published"
	RunOutcomeFailed    RunOutcome = "failed"
	RunOutcomeCancelled RunOutcome = "cancelled"
)

// Success is true when the Run exits with status 0. A no-op is a success.
func (x RunOutcome) Success() bool {
	return x == RunOutcomeNoOp || x == RunOutcomePublished
}
