package model

import (
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Trigger is an admission request for a new Run
type Trigger struct {
	Kind        types.TriggerKind `json:"kind"`
	Ref         string            `json:"ref"`
	TriggeredBy string            `json:"triggered_by,omitempty"`
	CommitID    types.CommitSHA   `json:"commit_id,omitempty"`
}

func (x *Trigger) Validate() error {
	if err := x.Kind.Validate(); err != nil {
		return goerr.Wrap(err, "invalid trigger kind", goerr.V("kind", x.Kind))
	}
	if x.Ref == "" {
		return goerr.Wrap(types.ErrValidationFailed, "trigger ref is empty")
	}
	return nil
}

// Run is one execution of the publish workflow from trigger to completion
type Run struct {
	ID              types.RunID       `json:"id" firestore:"id"`
	Trigger         types.TriggerKind `json:"trigger" firestore:"trigger"`
	TriggeredBy     string            `json:"triggered_by,omitempty" firestore:"triggered_by"`
	GroupKey        types.GroupKey    `json:"group_key" firestore:"group_key"`
	State           types.RunState    `json:"state" firestore:"state"`
	Outcome         types.RunOutcome  `json:"outcome,omitempty" firestore:"outcome"`
	SourceCommit    types.CommitSHA   `json:"source_commit,omitempty" firestore:"source_commit"`
	BaseCommit      types.CommitSHA   `json:"base_commit,omitempty" firestore:"base_commit"`
	PublishedCommit types.CommitSHA   `json:"published_commit,omitempty" firestore:"published_commit"`
	StartedAt       time.Time         `json:"started_at" firestore:"started_at"`
	FinishedAt      time.Time         `json:"finished_at,omitempty" firestore:"finished_at"`
	Error           string            `json:"error,omitempty" firestore:"error"`
}

// NewRun creates a Run in the started state
func NewRun(trigger Trigger, key types.GroupKey, now time.Time) *Run {
	return &Run{
		ID:          types.NewRunID(),
		Trigger:     trigger.Kind,
		TriggeredBy: trigger.TriggeredBy,
		GroupKey:    key,
		State:       types.RunStateStarted,
		StartedAt:   now,
	}
}

var runTransitions = map[types.RunState][]types.RunState{
	types.RunStateStarted:   {types.RunStatePrepared},
	types.RunStatePrepared:  {types.RunStateGenerated},
	types.RunStateGenerated: {types.RunStateNoOp, types.RunStatePublished},
	types.RunStateNoOp:      {types.RunStateDone},
	types.RunStatePublished: {types.RunStateDone},
}

// CanTransition reports whether moving from one state to another is allowed.
// Failed and cancelled are reachable from every non-terminal state.
func CanTransition(from, to types.RunState) bool {
	if from.Terminal() {
		return false
	}
	if to == types.RunStateFailed || to == types.RunStateCancelled {
		return true
	}
	for _, next := range runTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transit moves the Run to the next state
func (x *Run) Transit(to types.RunState) error {
	if !CanTransition(x.State, to) {
		return goerr.Wrap(types.ErrInvalidStateTransition, "can not move run state",
			goerr.V("run_id", x.ID),
			goerr.V("from", x.State),
			goerr.V("to", to),
		)
	}
	x.State = to
	return nil
}

// Finish records the outcome and moves the Run to its terminal state
func (x *Run) Finish(outcome types.RunOutcome, now time.Time, cause error) error {
	var to types.RunState
	switch outcome {
	case types.RunOutcomeNoOp, types.RunOutcomePublished:
		to = types.RunStateDone
	case types.RunOutcomeFailed:
		to = types.RunStateFailed
	case types.RunOutcomeCancelled:
		to = types.RunStateCancelled
	default:
		return goerr.Wrap(types.ErrInvalidOption, "unknown run outcome", goerr.V("outcome", outcome))
	}

	if err := x.Transit(to); err != nil {
		return err
	}

	x.Outcome = outcome
	x.FinishedAt = now
	if cause != nil {
		x.Error = cause.Error()
	}
	return nil
}

// Copy returns a deep copy of the Run
func (x *Run) Copy() *Run {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

// PublishResult is the outcome of the Publish Gate
type PublishResult struct {
	Changed     bool
	BaseCommit  types.CommitSHA
	NewCommit   types.CommitSHA
	Message     string
	PublishedAt time.Time
}

// RunRecord is a row of the run history table
type RunRecord struct {
	ID              string    `bigquery:"id" json:"id"`
	Timestamp       time.Time `bigquery:"timestamp" json:"timestamp"`
	Trigger         string    `bigquery:"trigger" json:"trigger"`
	TriggeredBy     string    `bigquery:"triggered_by" json:"triggered_by"`
	GroupKey        string    `bigquery:"group_key" json:"group_key"`
	Outcome         string    `bigquery:"outcome" json:"outcome"`
	SourceCommit    string    `bigquery:"source_commit" json:"source_commit"`
	BaseCommit      string    `bigquery:"base_commit" json:"base_commit"`
	PublishedCommit string    `bigquery:"published_commit" json:"published_commit"`
	DurationMS      int64     `bigquery:"duration_ms" json:"duration_ms"`
	Error           string    `bigquery:"error" json:"error"`
}

// NewRunRecord flattens a finished Run into a history row
func NewRunRecord(run *Run) *RunRecord {
	return &RunRecord{
		ID:              run.ID.String(),
		Timestamp:       run.FinishedAt,
		Trigger:         string(run.Trigger),
		TriggeredBy:     run.TriggeredBy,
		GroupKey:        run.GroupKey.String(),
		Outcome:         string(run.Outcome),
		SourceCommit:    run.SourceCommit.String(),
		BaseCommit:      run.BaseCommit.String(),
		PublishedCommit: run.PublishedCommit.String(),
		DurationMS:      run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
		Error:           run.Error,
	}
}

// RunRecordRaw carries the timestamp as micro seconds for the storage write API
type RunRecordRaw struct {
	RunRecord
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}

// GenerateInput is what an index generator receives for one Run
type GenerateInput struct {
	SourceDir  string
	OutputDir  string
	Credential types.GitHubToken
}

func (x *GenerateInput) Validate() error {
	if x.SourceDir == "" {
		return goerr.Wrap(types.ErrValidationFailed, "source dir is empty")
	}
	if x.OutputDir == "" {
		return goerr.Wrap(types.ErrValidationFailed, "output dir is empty")
	}
	return nil
}
