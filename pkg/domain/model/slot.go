package model

import (
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Slot is the lock record of a concurrency group. At most one Run holds it;
// the newest Run waiting for it is recorded as Pending. LatestAt is the
// admission time of the newest Run that ever held it, so an older Run can
// never take the slot after a newer one.
type Slot struct {
	GroupKey   types.GroupKey `json:"group_key" firestore:"group_key"`
	Holder     types.RunID    `json:"holder,omitempty" firestore:"holder"`
	LatestAt   time.Time      `json:"latest_at" firestore:"latest_at"`
	AcquiredAt time.Time      `json:"acquired_at" firestore:"acquired_at"`
	ExpiresAt  time.Time      `json:"expires_at" firestore:"expires_at"`
	Pending    types.RunID    `json:"pending,omitempty" firestore:"pending"`
	PendingAt  time.Time      `json:"pending_at" firestore:"pending_at"`
	TTL        time.Duration  `json:"ttl" firestore:"ttl"`
}

// SlotRequest asks for the slot of a concurrency group on behalf of a Run
type SlotRequest struct {
	GroupKey   types.GroupKey
	RunID      types.RunID
	AdmittedAt time.Time
	Now        time.Time
	TTL        time.Duration
}

func (x *SlotRequest) Validate() error {
	if x.GroupKey == "" {
		return goerr.Wrap(types.ErrValidationFailed, "group key is empty")
	}
	if x.RunID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "run ID is empty")
	}
	if x.TTL <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "slot TTL must be positive", goerr.V("ttl", x.TTL))
	}
	return nil
}

// Held reports whether a live Run holds the slot
func (x *Slot) Held(now time.Time) bool {
	return x.Holder != "" && x.ExpiresAt.After(now)
}

// Superseded reports whether a newer Run is waiting behind the holder
func (x *Slot) Superseded() bool {
	return x.Pending != "" && x.Pending != x.Holder
}

func (x *Slot) pendingLive(now time.Time) bool {
	return x.Pending != "" && x.PendingAt.Add(x.TTL).After(now)
}

// Acquire applies a slot request. It returns ErrSlotBusy when another live
// Run holds the slot (the requester is then registered as Pending), and
// ErrRunSuperseded when a newer Run already waits for it.
func (x *Slot) Acquire(req *SlotRequest) error {
	if x.Holder == req.RunID && x.Held(req.Now) {
		if x.Superseded() {
			return goerr.Wrap(types.ErrRunSuperseded, "slot holder was superseded",
				goerr.V("group_key", req.GroupKey),
				goerr.V("run_id", req.RunID),
				goerr.V("pending", x.Pending),
			)
		}
		return nil
	}

	if x.pendingLive(req.Now) && x.Pending != req.RunID && !req.AdmittedAt.After(x.PendingAt) {
		return goerr.Wrap(types.ErrRunSuperseded, "newer run is waiting for the slot",
			goerr.V("group_key", req.GroupKey),
			goerr.V("run_id", req.RunID),
			goerr.V("pending", x.Pending),
		)
	}

	if req.AdmittedAt.Before(x.LatestAt) {
		return goerr.Wrap(types.ErrRunSuperseded, "newer run already acquired the slot",
			goerr.V("group_key", req.GroupKey),
			goerr.V("run_id", req.RunID),
			goerr.V("holder", x.Holder),
		)
	}

	if x.Held(req.Now) {
		x.Pending = req.RunID
		x.PendingAt = req.AdmittedAt
		x.TTL = req.TTL
		return goerr.Wrap(types.ErrSlotBusy, "slot is held by another run",
			goerr.V("group_key", req.GroupKey),
			goerr.V("holder", x.Holder),
			goerr.V("run_id", req.RunID),
		)
	}

	x.GroupKey = req.GroupKey
	x.Holder = req.RunID
	x.LatestAt = req.AdmittedAt
	x.AcquiredAt = req.Now
	x.ExpiresAt = req.Now.Add(req.TTL)
	x.TTL = req.TTL
	x.Pending = ""
	x.PendingAt = time.Time{}
	return nil
}

// Check returns ErrRunSuperseded unless the Run still holds the slot and no
// newer Run waits for it
func (x *Slot) Check(runID types.RunID, now time.Time) error {
	if x.Holder != runID || !x.Held(now) {
		return goerr.Wrap(types.ErrRunSuperseded, "run does not hold the slot",
			goerr.V("group_key", x.GroupKey),
			goerr.V("run_id", runID),
			goerr.V("holder", x.Holder),
		)
	}
	if x.Superseded() {
		return goerr.Wrap(types.ErrRunSuperseded, "newer run is waiting for the slot",
			goerr.V("group_key", x.GroupKey),
			goerr.V("run_id", runID),
			goerr.V("pending", x.Pending),
		)
	}
	return nil
}

// Release frees the slot if the Run holds it. Pending is kept so the newest
// waiter keeps its priority.
func (x *Slot) Release(runID types.RunID) bool {
	if x.Holder != runID {
		return false
	}
	x.Holder = ""
	x.AcquiredAt = time.Time{}
	x.ExpiresAt = time.Time{}
	return true
}

// Withdraw removes the Run from Pending when it gives up waiting
func (x *Slot) Withdraw(runID types.RunID) bool {
	if x.Pending != runID || runID == "" {
		return false
	}
	x.Pending = ""
	x.PendingAt = time.Time{}
	return true
}
