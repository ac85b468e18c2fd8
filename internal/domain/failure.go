package domain

import "time"

// AttemptStatus classifies the outcome of one generation attempt.
type AttemptStatus string

// Possible attempt outcomes.
const (
	AttemptStatusSuccess        AttemptStatus = "success"
	AttemptStatusPartial        AttemptStatus = "partial"
	AttemptStatusDuplicatesOnly AttemptStatus = "duplicates_only"
	AttemptStatusFailed         AttemptStatus = "failed"
)

// AttemptOutcome records one generation attempt for an objective.
type AttemptOutcome struct {
	Timestamp  time.Time     `json:"timestamp"`
	Requested  int           `json:"requested"`
	Generated  int           `json:"generated"`
	Duplicates int           `json:"duplicates"`
	Status     AttemptStatus `json:"status"`
	Error      string        `json:"error,omitempty"`
}

// FailureRecord is the per-objective attempt trail. It is created lazily
// when the first attempt completes and finalized when the objective's work
// is done; the report file only includes records with shortfalls.
type FailureRecord struct {
	Key        ObjectiveKey     `json:"objective"`
	Target     int              `json:"target"`
	Generated  int              `json:"generated"`
	Duplicates int              `json:"duplicates"`
	Attempts   []AttemptOutcome `json:"attempts"`
}

// Record appends one attempt outcome and folds its counts into the totals.
func (r *FailureRecord) Record(outcome AttemptOutcome) {
	r.Generated += outcome.Generated
	r.Duplicates += outcome.Duplicates
	r.Attempts = append(r.Attempts, outcome)
}

// Failed reports whether the objective fell short of its target or had any
// attempt that did not fully succeed.
func (r *FailureRecord) Failed() bool {
	if r.Generated < r.Target {
		return true
	}
	for _, a := range r.Attempts {
		if a.Status != AttemptStatusSuccess {
			return true
		}
	}
	return false
}
