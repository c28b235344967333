package plan

import "github.com/dieti/studyplan/core"

// Budget rejection/warning reasons. At most one applies per evaluation;
// should a rule change ever make several reachable at once,
// ReasonBelowMinimumPSI wins.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonBelowMinimumPSI Reason = "budget_below_minimum_psi"
	ReasonSoftOverage     Reason = "budget_soft_overage"
	ReasonHardOverage     Reason = "budget_hard_overage"
)

// Policy holds the credit thresholds and free-choice counts in force.
type Policy struct {
	CFUTarget         int
	SoftOverageMax    int
	StandardFreeCount int
	PSIFreeCount      int
}

// DefaultPolicy reads the configured policy values.
func DefaultPolicy() Policy {
	return Policy{
		CFUTarget:         core.Conf.Plan.CFUTarget,
		SoftOverageMax:    core.Conf.Plan.SoftOverageMax,
		StandardFreeCount: core.Conf.Plan.StandardFreeCount,
		PSIFreeCount:      core.Conf.Plan.PSIFreeCount,
	}
}

// FreeChoiceCount is the number of free-choice exams a plan must carry.
func (p Policy) FreeChoiceCount(m Mode) int {
	if m.IsPSI() {
		return p.PSIFreeCount
	}
	return p.StandardFreeCount
}

type Budget struct {
	Total    int    `json:"total"`
	Excess   int    `json:"excess"`
	Blocking bool   `json:"blocking"`
	Reason   Reason `json:"reason,omitempty"`
}

// EvaluateBudget sums the three credit components and classifies the total:
// within target: nominal; over by at most SoftOverageMax: warn, don't block;
// over by more: block. PSI additionally blocks under the target, since it
// must reach the floor through its free-choice exams alone.
func EvaluateBudget(mode Mode, curricularTotal, freeTotal, fixedTotal int, pol Policy) Budget {
	total := curricularTotal + freeTotal + fixedTotal
	excess := total - pol.CFUTarget
	if excess < 0 {
		excess = 0
	}

	b := Budget{Total: total, Excess: excess}
	switch {
	case mode.IsPSI() && total < pol.CFUTarget:
		b.Blocking = true
		b.Reason = ReasonBelowMinimumPSI
	case excess == 0:
	case excess <= pol.SoftOverageMax:
		b.Reason = ReasonSoftOverage
	default:
		b.Blocking = true
		b.Reason = ReasonHardOverage
	}
	return b
}
